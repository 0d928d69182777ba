// Package arrayptr provides ArrayPtr, a move-only handle that exclusively
// owns one contiguous block of elements.
//
// An ArrayPtr never copies its block. Ownership leaves a handle only through
// Move, MoveFrom, Swap or Release, and the handle it leaves is empty
// afterwards. Knowing how many of the allocated elements are meaningful is
// the owner's job; ArrayPtr only knows how many were allocated.
//
// Indexed access is unchecked beyond what the Go runtime does for slices.
package arrayptr
