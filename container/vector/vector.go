package vector

import (
	"fmt"
	"iter"

	"github.com/Fishytek/Vector/container/arrayptr"
)

// Vector is a contiguous sequence of T with size <= capacity.
// Slots below Len hold live elements; slots in [Len, Cap) are allocated
// but logically absent. The zero value is an empty vector ready for use.
type Vector[T any] struct {
	size     int
	capacity int
	data     arrayptr.ArrayPtr[T]
}

// ReserveHint asks WithReserve for capacity without elements.
type ReserveHint struct {
	Capacity int
}

// Reserve returns a ReserveHint for the given capacity.
func Reserve(capacity int) ReserveHint {
	return ReserveHint{Capacity: capacity}
}

// New returns an empty vector that has not allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of count zero values with capacity count.
func WithSize[T any](count int) *Vector[T] {
	return allocate[T](count, count)
}

// Filled returns a vector of count copies of value with capacity count.
func Filled[T any](count int, value T) *Vector[T] {
	v := allocate[T](count, count)
	raw := v.data.Raw()
	for i := range raw {
		raw[i] = value
	}

	return v
}

// Of returns a vector holding a copy of items, in order, with capacity
// len(items).
func Of[T any](items ...T) *Vector[T] {
	v := allocate[T](len(items), len(items))
	copy(v.data.Raw(), items)

	return v
}

// WithReserve returns an empty vector with capacity h.Capacity.
func WithReserve[T any](h ReserveHint) *Vector[T] {
	return allocate[T](0, h.Capacity)
}

// Move returns a vector owning src's storage. src is left empty with zero
// capacity.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.MoveFrom(src)

	return v
}

func allocate[T any](size, capacity int) *Vector[T] {
	if capacity <= 0 {
		return &Vector[T]{}
	}

	v := &Vector[T]{size: size, capacity: capacity}
	v.data.MoveFrom(arrayptr.New[T](capacity))

	return v
}

// Clone returns a deep copy of v with the same length and capacity.
// Elements are copied by assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	c := allocate[T](v.size, v.capacity)
	copy(c.data.Raw(), v.Slice())

	return c
}

// Assign replaces the contents of v with a deep copy of src.
// The copy is built before v is touched.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}

	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// MoveFrom frees v's storage and takes over src's. src is left empty with
// zero capacity.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}

	v.data.MoveFrom(&src.data)
	v.size, src.size = src.size, 0
	v.capacity, src.capacity = src.capacity, 0
}

// Swap exchanges the contents of v and other without allocating.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.data.Swap(&other.data)
}

// Free drops the storage. v is empty with zero capacity afterwards and may
// be reused.
func (v *Vector[T]) Free() {
	v.data.Free()
	v.size = 0
	v.capacity = 0
}

// PushBack appends value, doubling capacity first when v is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.grow()
	}

	v.data.Set(v.size, value)
	v.size++
}

// PopBack removes the last element. Capacity is kept.
// It panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}

	v.size--

	var zero T
	v.data.Set(v.size, zero)
}

// Reserve grows capacity to exactly n when n exceeds the current capacity.
// It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.reallocate(n)
	}
}

// Insert places value at position pos, shifting later elements right, and
// returns the position of the inserted element. pos == Len() appends.
// It panics if pos is outside [0, Len()].
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: Insert position %d out of range [0, %d]", pos, v.size))
	}

	if v.size == v.capacity {
		v.grow()
	}

	raw := v.data.Raw()
	copy(raw[pos+1:v.size+1], raw[pos:v.size])
	raw[pos] = value
	v.size++

	return pos
}

// Erase removes the element at pos, shifting later elements left, and
// returns the position now holding the element that followed it. That is
// End() when the last element was erased.
// It panics if pos is outside [0, Len()).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: Erase position %d out of range [0, %d)", pos, v.size))
	}

	raw := v.data.Raw()
	copy(raw[pos:v.size-1], raw[pos+1:v.size])
	v.size--

	var zero T
	raw[v.size] = zero

	return pos
}

// Clear removes all elements and keeps the storage for reuse.
func (v *Vector[T]) Clear() {
	clear(v.Slice())
	v.size = 0
}

// Resize sets the length to n. Shrinking keeps capacity. Growing within
// capacity zero-fills the exposed slots; growing past capacity allocates
// exactly n slots. A negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}

	switch {
	case n <= v.size:
		clear(v.data.Raw()[n:v.size])
	case n <= v.capacity:
		clear(v.data.Raw()[v.size:n])
	default:
		v.reallocate(n)
	}

	v.size = n
}

// grow applies the append growth policy: max(1, 2*capacity).
func (v *Vector[T]) grow() {
	next := v.capacity * 2
	if next == 0 {
		next = 1
	}

	v.reallocate(next)
}

// reallocate moves the live elements into a fresh block of exactly capacity
// slots. The old block is only released once the new one is filled.
func (v *Vector[T]) reallocate(capacity int) {
	next := arrayptr.New[T](capacity)
	copy(next.Raw(), v.Slice())
	v.data.MoveFrom(next)
	v.capacity = capacity
}

// Get returns the element at index i without checking i against Len.
func (v *Vector[T]) Get(i int) T {
	return v.data.Get(i)
}

// Set stores value at index i without checking i against Len.
func (v *Vector[T]) Set(i int, value T) {
	v.data.Set(i, value)
}

// Ref returns a pointer to the element at index i without checking i
// against Len.
func (v *Vector[T]) Ref(i int) *T {
	return v.data.Ref(i)
}

// At returns a pointer to the element at index i, or an error wrapping
// ErrOutOfRange if i is outside [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}

	return v.data.Ref(i), nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns a view of the live elements. Writes through the view reach
// v; appending to it never overwrites v's spare capacity.
func (v *Vector[T]) Slice() []T {
	return v.data.Raw()[:v.size:v.size]
}

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Get(i)) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.Get(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.Get(i)) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}
