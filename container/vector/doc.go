// Package vector provides Vector, a growable contiguous sequence with value
// semantics, built on an exclusively owned arrayptr.ArrayPtr.
//
// Copies are explicit and deep (Clone, Assign). Moves (Move, MoveFrom)
// transfer the storage and leave the source empty with zero capacity.
// Appending doubles capacity when full, starting from 1, so n calls to
// PushBack reallocate O(log n) times. Reserve and Resize grow to exactly the
// requested capacity instead.
//
// Get, Set and Ref are unchecked like indexing a slice; At is the checked
// counterpart and returns an error wrapping ErrOutOfRange. Invalid Insert,
// Erase and PopBack calls are programming errors and panic.
//
// Positions (Begin, End, the results of Insert and Erase) and the views
// returned by Slice and Ref are invalidated by any operation that reallocates
// or shifts storage: PushBack past capacity, Insert, Erase, Resize past
// capacity, Swap, Move, MoveFrom and Assign.
//
// A Vector is not safe for concurrent mutation; Pool is.
package vector
