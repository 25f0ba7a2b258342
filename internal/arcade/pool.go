package arcade

import "errors"

// ErrPoolExhausted is raised when a spawn finds no dead member.
var ErrPoolExhausted = errors.New("arcade: object pool exhausted")

// Pool is a fixed-capacity arena of T with a free list. Members are dead
// until acquired and go back to the free list when released.
type Pool[T any] struct {
	items []T
	alive []bool
	free  []int // stack of dead indices
}

// NewPool creates a pool with the given capacity, all members dead.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		items: make([]T, capacity),
		alive: make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
	// Push in reverse so index 0 is handed out first.
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Live returns the number of live members.
func (p *Pool[T]) Live() int {
	return len(p.items) - len(p.free)
}

// Acquire pops a dead member, marks it live and returns its index and a
// pointer to it. ok is false when every member is live.
func (p *Pool[T]) Acquire() (idx int, item *T, ok bool) {
	n := len(p.free)
	if n == 0 {
		return -1, nil, false
	}
	idx = p.free[n-1]
	p.free = p.free[:n-1]
	p.alive[idx] = true
	return idx, &p.items[idx], true
}

// Release returns a live member to the free list. Releasing a dead or
// out-of-range index is a no-op.
func (p *Pool[T]) Release(idx int) {
	if idx < 0 || idx >= len(p.items) || !p.alive[idx] {
		return
	}
	p.alive[idx] = false
	p.free = append(p.free, idx)
}

// EachLive calls fn for every live member in index order. fn may release
// the member it is given.
func (p *Pool[T]) EachLive(fn func(idx int, item *T)) {
	for i := range p.items {
		if p.alive[i] {
			fn(i, &p.items[i])
		}
	}
}
