package sat

import "fmt"

// ClauseKind tags the provenance/storage shape of a clause key.
type ClauseKind uint8

const (
	// OriginalUnit is a unit clause present in the input formula.
	OriginalUnit ClauseKind = iota
	// Original is a non-unit, non-binary clause present in the input formula.
	Original
	// Binary is a two-literal clause, original or learnt (binary clauses are
	// never distinguished by provenance once created, only by source on the
	// Clause itself).
	Binary
	// Addition is a learnt clause of three or more literals.
	Addition
	// AdditionUnit is a learnt clause that collapsed to a single literal.
	AdditionUnit
)

func (k ClauseKind) String() string {
	switch k {
	case OriginalUnit:
		return "OriginalUnit"
	case Original:
		return "Original"
	case Binary:
		return "Binary"
	case Addition:
		return "Addition"
	case AdditionUnit:
		return "AdditionUnit"
	default:
		return "Unknown"
	}
}

// token lets a recycled storage slot re-issue a key that compares unequal to
// any key previously handed out for that slot (invariant 5).
type token uint16

// ClauseKey stably identifies a clause independently of where (or whether)
// it is currently stored. Keys are never reused within a solve except via
// retoken, which bumps the token on deletion/recycling.
type ClauseKey struct {
	kind  ClauseKind
	index int
	tok   token
}

// Index returns the position of the key's slot within its kind's store.
func (k ClauseKey) Index() int {
	return k.index
}

// Kind returns the key's provenance/storage tag.
func (k ClauseKey) Kind() ClauseKind {
	return k.kind
}

func (k ClauseKey) String() string {
	return fmt.Sprintf("%s(%d,%d)", k.kind, k.index, k.tok)
}

// retoken returns a new key for the same slot that compares unequal to k,
// or ErrStorageExhausted if the token space for this slot has been used up.
// Only Addition/AdditionUnit keys are retokenable: the other kinds occupy
// permanent, never-recycled slots.
func (k ClauseKey) retoken() (ClauseKey, error) {
	if k.kind != Addition && k.kind != AdditionUnit {
		return ClauseKey{}, fmt.Errorf("sat: keys of kind %s have a unique token", k.kind)
	}
	if k.tok == ^token(0) {
		return ClauseKey{}, ErrStorageExhausted
	}
	k.tok++
	return k, nil
}
