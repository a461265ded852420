package sat

import "sort"

// reduceDB protects every learnt clause with LBD at or below Config.LBDBound
// (its glue is already low enough to be worth keeping regardless of
// activity), then discards the worse half of the remainder, ranked by
// (LBD, activity) so that low-glue clauses are kept regardless of how
// recently they were bumped. Locked clauses (currently serving as a
// propagation reason) are always kept. Grounded on the teacher's ReduceDB,
// generalized from activity-only sorting to (LBD, activity) per spec 4.6.
func (s *Solver) reduceDB() {
	keys := s.clauses.iterateLearntLong()
	if len(keys) == 0 {
		return
	}

	type scored struct {
		key ClauseKey
		c   *Clause
	}
	remainder := make([]scored, 0, len(keys))
	for _, k := range keys {
		c, ok := s.clauses.Get(k)
		if !ok || c.lbd <= s.config.LBDBound {
			continue
		}
		remainder = append(remainder, scored{key: k, c: c})
	}

	sort.Slice(remainder, func(i, j int) bool {
		if remainder[i].c.lbd != remainder[j].c.lbd {
			return remainder[i].c.lbd > remainder[j].c.lbd
		}
		return remainder[i].c.activity < remainder[j].c.activity
	})

	limit := len(remainder) / 2
	for i := 0; i < limit; i++ {
		c, key := remainder[i].c, remainder[i].key
		if c.locked(s, key) {
			continue
		}
		s.removeClause(key, c)
	}
}

// removeClause unwatches and deletes a stored binary or long clause,
// notifying callbacks.
func (s *Solver) removeClause(key ClauseKey, c *Clause) {
	switch key.Kind() {
	case Binary:
		s.unwatchBinary(key, c.literals[0].Opposite())
		s.unwatchBinary(key, c.literals[1].Opposite())
	default:
		s.unwatchLong(key, c.literals[0].Opposite())
		s.unwatchLong(key, c.literals[1].Opposite())
	}
	s.clauses.delete(key)
	s.fireClauseDeleted(key)
}

// promoteToBinary moves a long clause that Simplify has just shrunk to two
// literals into the binary store, where it belongs for the rest of the
// solve: binary clauses propagate through the cheaper watchersBinary sweep
// instead of the long-clause replacement search.
func (s *Solver) promoteToBinary(key ClauseKey, c *Clause) {
	s.unwatchLong(key, c.literals[0].Opposite())
	s.unwatchLong(key, c.literals[1].Opposite())

	newKey := s.clauses.promoteToBinary(key)
	s.watchBinary(c.literals[0].Opposite(), c.literals[1], newKey)
	s.watchBinary(c.literals[1].Opposite(), c.literals[0], newKey)
}
