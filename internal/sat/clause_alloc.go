//go:build !clausepool

package sat

// acquireLiterals returns a fresh, empty slice with at least capacity n.
// The default build simply allocates; see clause_allocpool.go for the
// sync.Pool-backed variant enabled by the clausepool build tag.
func acquireLiterals(n int) []Literal {
	return make([]Literal, 0, n)
}

// releaseLiterals is a no-op in the default build.
func releaseLiterals(lits []Literal) {}
