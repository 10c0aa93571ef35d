package array

import "sync"

// Pool provides sync.Pool-based reuse of rank-1 scratch arrays, so per-frame
// work does not allocate.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Real{}
			},
		},
	}
}

// Get returns a zeroed rank-1 array of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Real {
	a := p.pool.Get().(*Real)
	a.resize(length)
	return a
}

// Put returns an array to the pool for reuse.
// The caller must not use the array after calling Put.
func (p *Pool) Put(a *Real) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
