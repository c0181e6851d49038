package xcc

import "strconv"

// CoversBool builds an uncolored, all-primary exact cover instance from a
// boolean incidence matrix: row i, column j is true when option i covers
// item j. Items are named "0", "1", ... in column order.
func CoversBool(matrix [][]bool) (*Solver, error) {
	numCols := 0
	for _, row := range matrix {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	primary := make([]string, numCols)
	for j := range primary {
		primary[j] = strconv.Itoa(j)
	}

	options := make([][]string, len(matrix))
	for i, row := range matrix {
		opt := make([]string, 0, len(row))
		for j, covers := range row {
			if covers {
				opt = append(opt, strconv.Itoa(j))
			}
		}
		options[i] = opt
	}
	return Covers(options, primary, nil, false)
}
