package xcc

// frame is one level of the explicit search stack: the item chosen at
// this level, the index of the next candidate option to try in that
// item's active cell array, and the trail mark to roll back to before
// each attempt.
type frame struct {
	item int
	idx  int
	mark int
}

// Solver iterates the solutions of an exact cover with colors instance.
// It holds no goroutines and performs no asynchronous suspension: each
// call to Next resumes the search synchronously from the frame stack
// left behind by the previous call.
type Solver struct {
	sys   *System
	st    *state
	stack []frame
	chosen []int

	started   bool
	exhausted bool
	pending   bool // a solution was just returned; its option is still applied and must be undone before resuming

	stats *Stats
}

// Covers normalizes options, primary, and secondary into a System and
// returns a Solver ready to enumerate its solutions.
func Covers(options [][]string, primary, secondary []string, colored bool) (*Solver, error) {
	sys, err := New(options, primary, secondary, colored)
	if err != nil {
		return nil, err
	}
	return NewSolver(sys), nil
}

// NewSolver builds a Solver over an already-normalized System.
func NewSolver(sys *System) *Solver {
	return &Solver{
		sys: sys,
		st:  newState(sys),
	}
}

// WithStats attaches a Stats recorder to the solver and returns it for
// chaining.
func (sv *Solver) WithStats(stats *Stats) *Solver {
	sv.stats = stats
	return sv
}

// Next returns the next solution, as the list of option indices selected
// to form it, in the order they were chosen. The second return value is
// false once the search space is exhausted, at which point the first
// return value is nil.
func (sv *Solver) Next() ([]int, bool) {
	if sv.exhausted {
		return nil, false
	}

	if !sv.started {
		sv.started = true
		sv.statsInit()
		if sv.sys.numPrimary == 0 {
			sv.exhausted = true
			return []int{}, true
		}
		item, _ := sv.st.selectItem()
		sv.stack = append(sv.stack, frame{item: item, idx: 0, mark: sv.st.mark()})
	} else if sv.pending {
		top := &sv.stack[len(sv.stack)-1]
		sv.st.undoTo(top.mark)
		sv.chosen = sv.chosen[:len(sv.chosen)-1]
		sv.pending = false
	}

	for {
		if len(sv.stack) == 0 {
			sv.exhausted = true
			return nil, false
		}

		top := &sv.stack[len(sv.stack)-1]
		if top.idx >= sv.st.cellLen[top.item] {
			sv.st.undoTo(top.mark)
			sv.stack = sv.stack[:len(sv.stack)-1]
			if len(sv.stack) == 0 {
				sv.exhausted = true
				return nil, false
			}
			parent := &sv.stack[len(sv.stack)-1]
			sv.st.undoTo(parent.mark)
			sv.chosen = sv.chosen[:len(sv.chosen)-1]
			sv.statsBacktrack()
			continue
		}

		o := sv.st.cellOpt[top.item][top.idx].opt
		mark := top.mark
		top.idx++

		if !sv.st.applyOption(o) {
			sv.st.undoTo(mark)
			continue
		}

		sv.chosen = append(sv.chosen, o)
		sv.statsChoose(top.item, o)

		if sv.st.primaryLen == 0 {
			sol := make([]int, len(sv.chosen))
			copy(sol, sv.chosen)
			sv.pending = true
			sv.statsSolution()
			return sol, true
		}

		next, _ := sv.st.selectItem()
		sv.stack = append(sv.stack, frame{item: next, idx: 0, mark: sv.st.mark()})
	}
}
