package sat

// bumpClauseActivity increases a learnt clause's activity, rescaling every
// learnt clause's activity if it overflows. Grounded on the teacher's
// BumpClaActivity.
func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity <= 1e100 {
		return
	}
	s.clauseInc *= 1e-100
	for _, key := range s.clauses.iterateLearntLong() {
		if lc, ok := s.clauses.Get(key); ok {
			lc.activity *= 1e-100
		}
	}
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.config.ClauseDecay
}

// explainReason returns, into dst, the antecedent literals of the
// propagation that produced reason r. Decisions, assumptions, and pure
// literals have no antecedents. Unit-clause reasons have no antecedents
// either: the clause already holds unconditionally.
func (s *Solver) explainReason(r Reason, dst []Literal) []Literal {
	if r.Kind != ReasonPropagation {
		return dst[:0]
	}
	switch r.Clause.Kind() {
	case OriginalUnit, AdditionUnit:
		return dst[:0]
	default:
		c, ok := s.clauses.Get(r.Clause)
		if !ok {
			return dst[:0]
		}
		return c.explainAssign(s, dst)
	}
}

func (s *Solver) explainConflictClause(key ClauseKey, dst []Literal) []Literal {
	c, ok := s.clauses.Get(key)
	if !ok {
		return dst[:0]
	}
	return c.explainConflict(s, dst)
}

// analyze walks the trail backward from a conflicting clause to derive a new
// asserting clause, following the First-UIP rule (or, with
// Config.StoppingCriteria = NoStoppingCriteria, resolving until no
// current-level literal remains). It returns the learnt literals (the
// asserting literal first), the backjump level, the clause's LBD, and the
// keys of every clause resolved against (for proof logging).
//
// Grounded on the teacher's Solver.analyze: the seenVar set and
// nImplicationPoints counter are kept verbatim; Reason/ClauseKey indirection,
// premise recording, and the stopping-criteria switch are new.
func (s *Solver) analyze(conflict ClauseKey) (learnt []Literal, backtrackLevel, lbd int, premises []ClauseKey) {
	s.tmpLearnts = append(s.tmpLearnts[:0], 0) // placeholder for the FUIP
	s.seenVar.Clear()
	premises = append(premises[:0:0], conflict)

	nImplicationPoints := 0
	backtrackLevel = 0
	nextIdx := len(s.trail) - 1

	reasonLits := s.explainConflictClause(conflict, s.tmpReason)
	l := Literal(-1)

	for {
		for _, q := range reasonLits {
			a := q.Atom()
			if s.seenVar.Contains(int(a)) {
				continue
			}
			s.seenVar.Add(int(a))
			if s.config.VSIDSVariant == MiniSAT {
				s.order.bump(a)
			}

			if s.level[a] == s.decisionLevel() {
				nImplicationPoints++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lvl := s.level[a]; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		// Advance to the next seen literal on the trail.
		var a Atom
		for {
			l = s.trail[nextIdx]
			nextIdx--
			a = l.Atom()
			if s.seenVar.Contains(int(a)) {
				break
			}
		}
		nImplicationPoints--

		reason := s.reason[a]
		switch s.config.StoppingCriteria {
		case NoStoppingCriteria:
			if reason.IsFree() {
				goto done
			}
		default: // FirstUIP
			if nImplicationPoints <= 0 {
				goto done
			}
		}

		if reason.Kind == ReasonPropagation {
			premises = append(premises, reason.Clause)
		}
		reasonLits = s.explainReason(reason, s.tmpReason)
	}
done:

	s.tmpLearnts[0] = l.Opposite()
	learnt = s.tmpLearnts

	if s.config.Minimize {
		learnt = s.minimize(learnt)
	}

	if s.config.VSIDSVariant == Chaff {
		for _, lit := range learnt {
			s.order.bump(lit.Atom())
		}
	}

	lbd = computeLBD(s, learnt)
	return learnt, backtrackLevel, lbd, premises
}

// minimize removes literals from a learnt clause whose negation is already
// implied by the other literals' reasons (recursive self-subsumption via
// BCP). Disabled by default (Config.Minimize); grounded on spec's
// RecursiveBCP minimization criterion.
func (s *Solver) minimize(learnt []Literal) []Literal {
	k := 1
	for i := 1; i < len(learnt); i++ {
		if !s.redundant(learnt[i]) {
			learnt[k] = learnt[i]
			k++
		}
	}
	return learnt[:k]
}

// redundant reports whether lit's negation is implied by literals already
// marked seen, by recursively following propagation reasons.
func (s *Solver) redundant(lit Literal) bool {
	r := s.reason[lit.Atom()]
	if r.Kind != ReasonPropagation {
		return false
	}

	stack := []Literal{lit}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		reason := s.reason[cur.Atom()]
		if reason.Kind != ReasonPropagation {
			return false
		}

		antecedents := s.explainReason(reason, nil)
		for _, a := range antecedents {
			atom := a.Atom()
			if s.level[atom] == 0 || s.seenVar.Contains(int(atom)) {
				continue
			}
			if s.reason[atom].Kind != ReasonPropagation {
				return false
			}
			s.seenVar.Add(int(atom))
			stack = append(stack, a)
		}
	}
	return true
}
