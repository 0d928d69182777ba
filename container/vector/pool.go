package vector

import "sync"

// Pool provides sync.Pool-based Vector reuse to reduce GC pressure
// in hot loops.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T]()
			},
		},
	}
}

// Get returns an empty Vector with at least the requested capacity.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(capacity int) *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	v.Clear()
	v.Reserve(capacity)

	return v
}

// Put returns a Vector to the pool for reuse.
// The caller must not use the vector after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}

	v.Clear()
	p.pool.Put(v)
}
