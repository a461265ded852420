package sat

// pureLiteralElimination fixes every currently-unassigned atom that appears
// with only one polarity across the live binary and long clauses. Doing so
// satisfies every clause that mentions it without constraining the rest of
// the search, so the pass is safe to re-run at the start of every Solve
// call: atoms already on the trail are skipped, and clauses added since the
// last call are picked up fresh. Gated by Config.Preprocessing, off by
// default per spec's Open Question guidance on optional preprocessing.
func (s *Solver) pureLiteralElimination() bool {
	seenPos := make([]bool, s.NumVariables())
	seenNeg := make([]bool, s.NumVariables())

	scan := func(lits []Literal) {
		for _, l := range lits {
			if l.IsPositive() {
				seenPos[l.Atom()] = true
			} else {
				seenNeg[l.Atom()] = true
			}
		}
	}
	for _, key := range s.clauses.iterateBinary() {
		if c, ok := s.clauses.Get(key); ok {
			scan(c.literals)
		}
	}
	for _, key := range s.clauses.iterateLong() {
		if c, ok := s.clauses.Get(key); ok {
			scan(c.literals)
		}
	}

	for a := Atom(1); int(a) < s.NumVariables(); a++ {
		if s.Value(a) != Unknown {
			continue
		}
		pos, neg := seenPos[a], seenNeg[a]
		if pos == neg {
			continue // appears with both polarities, or not at all
		}

		lit := NegativeLiteral(a)
		if pos {
			lit = PositiveLiteral(a)
		}
		key := s.clauses.appendUnit(lit, SourcePure)
		if !s.enqueue(lit, pureReason) {
			s.fail()
			return false
		}
		s.fireUnitFixed(lit, key)
	}
	return true
}
