package xcc

import "fmt"

// EmptyPrimaryError reports a primary item that appears in no option.
// When at least one option is supplied, this is surfaced rather than
// silently producing zero solutions, since it usually indicates a mistake
// in the input; an instance with zero options is not an error.
type EmptyPrimaryError struct {
	Item string
}

func (e *EmptyPrimaryError) Error() string {
	return fmt.Sprintf("xcc: primary item %q appears in no option", e.Item)
}

// DuplicateItemError reports an option that lists the same item twice.
type DuplicateItemError struct {
	Option int
	Item   string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("xcc: option %d lists item %q more than once", e.Option, e.Item)
}

// ColorOnPrimaryError reports a color label attached to a primary item.
type ColorOnPrimaryError struct {
	Option int
	Item   string
}

func (e *ColorOnPrimaryError) Error() string {
	return fmt.Sprintf("xcc: option %d attaches a color to primary item %q", e.Option, e.Item)
}

// UnknownItemError reports a token that is neither a declared primary nor
// a declared secondary item. Only possible when explicit item lists are
// supplied to New.
type UnknownItemError struct {
	Option int
	Token  string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("xcc: option %d references %q, which is not a declared item", e.Option, e.Token)
}
