package sat

// Value returns the current truth value of atom a.
func (s *Solver) Value(a Atom) LBool {
	return s.assigns[PositiveLiteral(a)]
}

// LitValue returns the current truth value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// NumVariables returns the number of atoms declared so far.
func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

// NumAssigns returns the number of atoms currently on the trail.
func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// AddVariable declares a new atom and returns its id. Atom 0 is reserved by
// NewSolver, which fixes it true at level 0 before any caller-visible atom is
// declared.
func (s *Solver) AddVariable() Atom {
	a := Atom(s.NumVariables())

	s.assigns = append(s.assigns, Unknown, Unknown)
	s.level = append(s.level, -1)
	s.reason = append(s.reason, Reason{})
	s.watchersBinary = append(s.watchersBinary, nil, nil)
	s.watchersLong = append(s.watchersLong, nil, nil)
	s.seenVar.Expand()
	s.order.addVariable()

	return a
}

// enqueue assigns l true with the given reason. It reports false if l's
// atom is already bound to the opposite value (a conflict), and true
// otherwise (including when l was already bound true).
func (s *Solver) enqueue(l Literal, reason Reason) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		a := l.Atom()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[a] = s.decisionLevel()
		s.reason[a] = reason
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// undoOne unassigns the most recently assigned trail literal.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	a := l.Atom()

	s.order.undo(a, s.Value(a))
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[a] = Reason{}
	s.level[a] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// assume opens a new decision level and enqueues l as its free choice.
func (s *Solver) assume(l Literal, reason Reason) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	for s.lbdSeen.Cap() <= s.decisionLevel() {
		s.lbdSeen.Expand()
	}
	return s.enqueue(l, reason)
}

// cancel closes the current decision level, undoing every literal assigned
// since it was opened.
func (s *Solver) cancel() {
	n := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; n > 0; n-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// cancelUntil closes decision levels down to (and not including) level.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}
