package xcc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, sv *Solver) [][]int {
	t.Helper()
	var out [][]int
	for {
		sol, ok := sv.Next()
		if !ok {
			break
		}
		out = append(out, sol)
	}
	return out
}

func TestCoversClassicExample(t *testing.T) {
	options := [][]string{
		{"1", "4", "7"},
		{"1", "4"},
		{"4", "5", "7"},
		{"3", "5", "6"},
		{"2", "3", "6", "7"},
		{"2", "7"},
	}
	sv, err := Covers(options, nil, nil, false)
	require.NoError(t, err)

	got := collect(t, sv)
	assert.Equal(t, [][]int{{1, 3, 5}}, got)
}

func TestCoversColoredExample(t *testing.T) {
	options := [][]string{
		{"p", "q", "x", "y:A"},
		{"p", "r", "x:A", "y"},
		{"p", "x:B"},
		{"q", "x:A"},
		{"r", "y:B"},
	}
	sv, err := Covers(options, []string{"p", "q", "r"}, []string{"x", "y"}, true)
	require.NoError(t, err)

	got := collect(t, sv)
	assert.Equal(t, [][]int{{3, 1}}, got)
}

func TestCoversRepeatedSingleton(t *testing.T) {
	sv, err := Covers([][]string{{"a"}, {"a"}}, []string{"a"}, nil, false)
	require.NoError(t, err)

	got := collect(t, sv)
	assert.Equal(t, [][]int{{0}, {1}}, got)
}

func TestCoversColorConflictOptionRejectedAtNormalization(t *testing.T) {
	_, err := New(
		[][]string{{"p", "x:A"}, {"p", "x:B"}, {"x:A", "x:B"}},
		[]string{"p"}, []string{"x"}, true,
	)
	var dup *DuplicateItemError
	require.ErrorAs(t, err, &dup)

	sv, err := Covers(
		[][]string{{"p", "x:A"}, {"p", "x:B"}},
		[]string{"p"}, []string{"x"}, true,
	)
	require.NoError(t, err)
	got := collect(t, sv)
	assert.Equal(t, [][]int{{0}, {1}}, got)
}

func TestCoversAllPrimaryCoveredByMultipleOptions(t *testing.T) {
	// An option covering every primary item alone is a valid solution
	// alongside any partition formed from the other options.
	sv, err := Covers(
		[][]string{{"a", "b"}, {"a"}, {"b"}},
		[]string{"a", "b"}, nil, false,
	)
	require.NoError(t, err)

	got := collect(t, sv)
	for _, sol := range got {
		sort.Ints(sol)
	}
	want := bruteForceCovers(t, [][]string{{"a", "b"}, {"a"}, {"b"}}, []string{"a", "b"}, nil)
	assert.ElementsMatch(t, want, got)
}

func TestCoversZeroPrimaryZeroOptions(t *testing.T) {
	sv, err := Covers(nil, []string{}, nil, false)
	require.NoError(t, err)
	sol, ok := sv.Next()
	require.True(t, ok)
	assert.Empty(t, sol)

	_, ok = sv.Next()
	assert.False(t, ok)
}

func TestCoversZeroOptionsSomePrimary(t *testing.T) {
	sv, err := Covers(nil, []string{"a"}, nil, false)
	require.NoError(t, err)
	_, ok := sv.Next()
	assert.False(t, ok)
}

func TestCoversColoredAndUncoloredOptionsOnSameSecondaryConflict(t *testing.T) {
	sv, err := Covers(
		[][]string{{"p1", "x:A"}, {"p2", "x"}},
		[]string{"p1", "p2"}, []string{"x"}, true,
	)
	require.NoError(t, err)
	got := collect(t, sv)
	assert.Empty(t, got)
}

func TestCoversUncoloredSecondaryNeverConstrains(t *testing.T) {
	sv, err := Covers(
		[][]string{{"a", "x"}},
		[]string{"a"}, []string{"x"}, false,
	)
	require.NoError(t, err)
	got := collect(t, sv)
	assert.Equal(t, [][]int{{0}}, got)
}

func TestSolverStateRestoredAfterExhaustion(t *testing.T) {
	options := [][]string{
		{"1", "4", "7"},
		{"1", "4"},
		{"4", "5", "7"},
		{"3", "5", "6"},
		{"2", "3", "6", "7"},
		{"2", "7"},
	}
	sv, err := Covers(options, nil, nil, false)
	require.NoError(t, err)

	before := snapshotLens(sv.st)
	collect(t, sv)
	assert.Empty(t, sv.st.trail)
	assert.Equal(t, before, snapshotLens(sv.st))
}

func snapshotLens(st *state) []int {
	out := make([]int, len(st.cellLen))
	copy(out, st.cellLen)
	return out
}

func TestSolverDeterministic(t *testing.T) {
	options := [][]string{
		{"p", "q", "x", "y:A"},
		{"p", "r", "x:A", "y"},
		{"p", "x:B"},
		{"q", "x:A"},
		{"r", "y:B"},
	}

	run := func() [][]int {
		sv, err := Covers(options, []string{"p", "q", "r"}, []string{"x", "y"}, true)
		require.NoError(t, err)
		return collect(t, sv)
	}

	assert.Equal(t, run(), run())
}

// bruteForceCovers enumerates all valid exact covers by brute force over
// subsets of options, for cross-checking the engine on small instances
// with no secondary items.
func bruteForceCovers(t *testing.T, options [][]string, primary, secondary []string) [][]int {
	t.Helper()
	sys, err := New(options, primary, secondary, false)
	require.NoError(t, err)

	n := len(options)
	var solutions [][]int
	for mask := 0; mask < (1 << n); mask++ {
		covered := make(map[int]int)
		var chosen []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			chosen = append(chosen, i)
			for _, occ := range sys.options[i].items {
				covered[occ.item]++
			}
		}
		ok := true
		for item := 0; item < sys.numPrimary; item++ {
			if covered[item] != 1 {
				ok = false
				break
			}
		}
		if ok {
			sort.Ints(chosen)
			solutions = append(solutions, chosen)
		}
	}
	return solutions
}
