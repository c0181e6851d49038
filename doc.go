// Package xcc solves the exact cover with colors (XCC) problem using
// Knuth's Algorithm C (TAOCP 7.2.2.1), implemented on dancing cells —
// contiguous, swap-based per-item option arrays — rather than the
// classical dancing-links doubly linked structure.
//
// A universe of primary items must each be covered exactly once by a
// selected set of options; secondary items may be covered at most once,
// or any number of times provided every covering option agrees on a
// color. Solutions are produced lazily: each call to (*Solver).Next
// resumes the search from where it left off and returns the next
// solution, or reports that the search space is exhausted.
package xcc
