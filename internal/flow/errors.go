package flow

import "fmt"

// OutOfRangeError reports a persona lookup driven by an answer index that
// doesn't land inside the persona catalog, or an answer recorded against a
// question position that doesn't exist.
type OutOfRangeError struct {
	Index int
	Size  int
	What  string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Size)
}

// InvalidTransitionError reports a scripted operation invoked from the
// wrong screen. Free navigation never produces it.
type InvalidTransitionError struct {
	From Screen
	Op   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Op, e.From)
}
