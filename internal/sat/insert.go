package sat

// AddClause adds an original clause to the problem. It must be called at
// decision level 0. The clause is simplified against the seen-literal and
// fixed-value rules before storage: a tautology is discarded, duplicate
// literals are collapsed, and literals already fixed false at level 0 are
// dropped. Grounded on the teacher's NewClause(s, lits, false) path.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return ErrNotRootLevel
	}
	if s.state == Unsatisfiable {
		return nil
	}

	lits = append([]Literal(nil), lits...)
	size := len(lits)
	seen := make(map[Literal]struct{}, size)

	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[lits[i].Opposite()]; ok {
			return nil // tautology, discard
		}
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[lits[i]] = struct{}{}

		switch s.LitValue(lits[i]) {
		case True:
			return nil // already satisfied at the root level
		case False:
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}
	}
	lits = lits[:size]

	switch len(lits) {
	case 0:
		s.fail()
		return nil
	case 1:
		key := s.clauses.appendUnit(lits[0], SourceOriginal)
		if !s.enqueue(lits[0], propagationReason(key)) {
			s.fail()
		}
		s.fireUnitFixed(lits[0], key)
	case 2:
		c := newBinaryClause(lits[0], lits[1], SourceOriginal)
		key := s.clauses.appendBinary(c)
		s.watchBinary(c.literals[0].Opposite(), c.literals[1], key)
		s.watchBinary(c.literals[1].Opposite(), c.literals[0], key)
		s.fireOriginalClause(c, key)
	default:
		c := newLongClause(lits, SourceOriginal)
		key := s.clauses.appendLong(c, false)
		s.watchLong(key, c.literals[0].Opposite(), c.literals[1])
		s.watchLong(key, c.literals[1].Opposite(), c.literals[0])
		s.fireOriginalClause(c, key)
	}

	return nil
}

// recordLearnt stores the clause produced by conflict analysis, selects its
// second watch (the literal assigned at the highest decision level below the
// asserting one, so that backjumping leaves it correctly watched), enqueues
// the asserting literal, and fires the derived-clause callback. Grounded on
// the teacher's NewClause(s, lits, true) + Solver.record.
func (s *Solver) recordLearnt(lits []Literal, lbd int, premises []ClauseKey) ClauseKey {
	switch len(lits) {
	case 1:
		key := s.clauses.appendUnit(lits[0], SourceResolution)
		s.enqueue(lits[0], propagationReason(key))
		s.fireUnitFixed(lits[0], key)
		return key
	case 2:
		c := newBinaryClause(lits[0], lits[1], SourceResolution)
		c.lbd = lbd
		key := s.clauses.appendBinary(c)
		s.watchBinary(c.literals[0].Opposite(), c.literals[1], key)
		s.watchBinary(c.literals[1].Opposite(), c.literals[0], key)
		s.enqueue(c.literals[0], propagationReason(key))
		s.fireDerivedClause(c, key, premises)
		return key
	default:
		c := newLongClause(lits, SourceResolution)
		c.lbd = lbd
		maxLevel, wl := -1, 1
		for i := 1; i < len(c.literals); i++ {
			if lvl := s.level[c.literals[i].Atom()]; lvl > maxLevel {
				maxLevel, wl = lvl, i
			}
		}
		c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]

		key := s.clauses.appendLong(c, true)
		s.watchLong(key, c.literals[0].Opposite(), c.literals[1])
		s.watchLong(key, c.literals[1].Opposite(), c.literals[0])
		s.enqueue(c.literals[0], propagationReason(key))
		s.fireDerivedClause(c, key, premises)
		return key
	}
}

// fail marks the solver permanently unsatisfiable due to a root-level
// conflict, e.g. an empty clause or two contradicting units.
func (s *Solver) fail() {
	s.state = Unsatisfiable
}
