package arrayptr

// noCopy makes go vet's copylocks check reject ArrayPtr values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ArrayPtr owns a single heap-allocated block of T, or nothing.
// The zero value is an empty handle ready for use.
type ArrayPtr[T any] struct {
	_ noCopy

	raw []T
}

// New allocates a block of count zero-valued elements.
// A count <= 0 returns an empty handle without allocating.
func New[T any](count int) *ArrayPtr[T] {
	if count <= 0 {
		return &ArrayPtr[T]{}
	}

	return &ArrayPtr[T]{raw: make([]T, count)}
}

// Adopt takes ownership of raw. The caller must not use raw afterwards.
func Adopt[T any](raw []T) *ArrayPtr[T] {
	return &ArrayPtr[T]{raw: raw}
}

// Move returns a new handle owning src's block and leaves src empty.
func Move[T any](src *ArrayPtr[T]) *ArrayPtr[T] {
	p := &ArrayPtr[T]{}
	p.MoveFrom(src)

	return p
}

// MoveFrom frees the block held by p, then takes over src's block.
// src is empty afterwards. Moving a handle into itself does nothing.
func (p *ArrayPtr[T]) MoveFrom(src *ArrayPtr[T]) {
	if p == src {
		return
	}

	p.Free()
	p.raw = src.raw
	src.raw = nil
}

// Get returns the element at index i.
func (p *ArrayPtr[T]) Get(i int) T {
	return p.raw[i]
}

// Set stores v at index i.
func (p *ArrayPtr[T]) Set(i int, v T) {
	p.raw[i] = v
}

// Ref returns a pointer to the element at index i. The pointer refers to the
// current block and goes stale once the block is freed or handed over.
func (p *ArrayPtr[T]) Ref(i int) *T {
	return &p.raw[i]
}

// Raw returns the owned block without giving up ownership.
func (p *ArrayPtr[T]) Raw() []T {
	return p.raw
}

// Len returns the number of allocated elements, 0 when empty.
func (p *ArrayPtr[T]) Len() int {
	return len(p.raw)
}

// Valid reports whether p currently owns a block.
func (p *ArrayPtr[T]) Valid() bool {
	return p.raw != nil
}

// Release hands the block to the caller and leaves p empty.
// A later Free on p is a no-op.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.raw = nil

	return raw
}

// Swap exchanges the blocks owned by p and other.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
}

// Free drops the owned block. Elements are cleared first so that anything
// they reference can be collected even if a stale view of the block survives.
func (p *ArrayPtr[T]) Free() {
	if p.raw == nil {
		return
	}

	clear(p.raw)
	p.raw = nil
}
