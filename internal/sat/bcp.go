package sat

// Propagate drains the propagation queue, applying unit consequences along
// the watch lists until a fixpoint is reached or a conflict is found.
// Grounded on the teacher's Solver.Propagate, split into an explicit
// binary/long sweep per spec 4.2.
func (s *Solver) Propagate() (conflict ClauseKey, hasConflict bool) {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		if key, ok := s.propagateBinary(l); ok {
			s.propQueue.Clear()
			return key, true
		}
		if key, ok := s.propagateLong(l); ok {
			s.propQueue.Clear()
			return key, true
		}
	}
	return ClauseKey{}, false
}

// propagateBinary runs the binary sweep for l, a literal just made true, over
// the binary clauses in which l's complement has just become false.
func (s *Solver) propagateBinary(l Literal) (ClauseKey, bool) {
	for _, w := range s.watchersBinary[l] {
		switch s.LitValue(w.other) {
		case False:
			return w.key, true
		case True:
			continue
		default:
			s.enqueue(w.other, propagationReason(w.key))
		}
	}
	return ClauseKey{}, false
}

// propagateLong runs the long sweep for l, a literal just made true, over the
// long clauses watching l's complement, which has just become false. It follows
// the teacher's trick of swapping the live watch list out into a scratch
// buffer up front so that clauses can freely move themselves into other
// literals' lists while this list is being walked.
func (s *Solver) propagateLong(l Literal) (ClauseKey, bool) {
	s.tmpWatchers = append(s.tmpWatchers[:0], s.watchersLong[l]...)
	s.watchersLong[l] = s.watchersLong[l][:0]

	for i, w := range s.tmpWatchers {
		if s.LitValue(w.guard) == True {
			s.watchersLong[l] = append(s.watchersLong[l], w)
			continue
		}

		c, ok := s.clauses.Get(w.key)
		if !ok {
			continue // stale watch entry for a clause that was deleted
		}

		if c.propagateLong(s, w.key, l) {
			continue
		}

		// Conflict: re-attach the untouched remainder of this literal's
		// watch list and abandon the sweep.
		s.watchersLong[l] = append(s.watchersLong[l], s.tmpWatchers[i+1:]...)
		return w.key, true
	}

	return ClauseKey{}, false
}
