//go:build clausepool

package sat

import "sync"

var pool8 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 8)
		return &s
	},
}

var pool64 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 64)
		return &s
	},
}

var pool256 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 256)
		return &s
	},
}

var poolHuge = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 512)
		return &s
	},
}

func poolFor(n int) *sync.Pool {
	switch {
	case n <= 8:
		return &pool8
	case n <= 64:
		return &pool64
	case n <= 256:
		return &pool256
	default:
		return &poolHuge
	}
}

// acquireLiterals borrows a reusable slice from the pool sized for n
// literals, reducing allocator pressure on the long-clause hot path
// learnt clauses are created on.
func acquireLiterals(n int) []Literal {
	p := poolFor(n)
	ref := p.Get().(*[]Literal)
	return (*ref)[:0]
}

// releaseLiterals returns lits to the pool matching its capacity.
func releaseLiterals(lits []Literal) {
	c := cap(lits)
	p := poolFor(c)
	lits = lits[:0]
	p.Put(&lits)
}
