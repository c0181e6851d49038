package xcc

import "log"

// Stats collects search diagnostics and, when Debug or Progress is set,
// writes trace output through the standard log package — mirroring the
// teacher's ExactCoverStats/Debug/Progress convention for Algorithm C.
type Stats struct {
	// Nodes counts the options successfully applied during the search.
	Nodes int
	// Solutions counts solutions produced so far.
	Solutions int
	// MaxLevel is the largest number of options chosen at once, i.e. the
	// deepest level at which an option was successfully applied.
	MaxLevel int

	// Debug, when true, logs every choose/backtrack/solution event.
	Debug bool
	// Progress, when true, logs a line every Delta nodes.
	Progress bool
	// Delta is the node interval between progress lines. Zero disables
	// progress logging even if Progress is true.
	Delta int
	// Verbosity raises the detail of Debug output; 0 is the default
	// per-choice trace, >0 additionally logs backtracks.
	Verbosity int
}

func (sv *Solver) statsInit() {
	if sv.stats == nil {
		return
	}
	if sv.stats.Debug {
		log.Printf("xcc: search started, %d primary item(s)", sv.sys.numPrimary)
	}
}

func (sv *Solver) statsChoose(item, option int) {
	if sv.stats == nil {
		return
	}
	sv.stats.Nodes++
	if level := len(sv.stack); level > sv.stats.MaxLevel {
		sv.stats.MaxLevel = level
	}
	if sv.stats.Debug {
		log.Printf("xcc: level %d, item %s, chose option %d", len(sv.stack), sv.sys.ItemName(item), option)
	}
	if sv.stats.Progress && sv.stats.Delta > 0 && sv.stats.Nodes%sv.stats.Delta == 0 {
		log.Printf("xcc: progress, %d nodes, %d solution(s) so far", sv.stats.Nodes, sv.stats.Solutions)
	}
}

func (sv *Solver) statsBacktrack() {
	if sv.stats == nil {
		return
	}
	if sv.stats.Debug && sv.stats.Verbosity > 0 {
		log.Printf("xcc: backtrack, level %d", len(sv.stack))
	}
}

func (sv *Solver) statsSolution() {
	if sv.stats == nil {
		return
	}
	sv.stats.Solutions++
	if sv.stats.Debug {
		log.Printf("xcc: solution %d found, %d option(s)", sv.stats.Solutions, len(sv.chosen))
	}
}
