package sat

import "errors"

// ErrStorageExhausted is returned by ClauseKey.retoken when the token space
// of a clause slot has been used up. The clause database handles it by
// retiring that slot for good, so it never reaches callers of the solver.
// The atom count is not checked against any limit.
var ErrStorageExhausted = errors.New("sat: clause storage exhausted")

// ErrNotRootLevel is returned by AddClause when it is called above decision
// level 0.
var ErrNotRootLevel = errors.New("sat: operation requires decision level 0")

// ErrQueueConflict names an enqueue at level 0 that contradicts an existing
// assignment. No operation returns it: such a conflict puts the solver in
// the Unsatisfiable state instead.
var ErrQueueConflict = errors.New("sat: conflicting enqueue at level 0")
