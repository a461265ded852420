package sat

// PushAssumption appends literal l to the assumptions Solve will try to
// satisfy before making any free decision. Assumptions persist across Solve
// calls until ClearAssumptions is called. Grounded on
// operator-framework-operator-lifecycle-manager's solver package shape for
// assumption-driven solving, adapted to this engine's trail.
func (s *Solver) PushAssumption(l Literal) {
	s.assumptions = append(s.assumptions, l)
}

// ClearAssumptions discards every pushed assumption and any recorded
// failure from a previous Solve.
func (s *Solver) ClearAssumptions() {
	s.assumptions = s.assumptions[:0]
	s.failedAssumptions = s.failedAssumptions[:0]
}

// FailedAssumptions returns the subset of pushed assumptions implicated in
// the most recent Solve call that returned False, or an empty slice if the
// last Solve did not fail under assumptions. Grounded on OLM's lit_mapping.go Conflicts
// extraction (walking a conflict's premises back to the literals a caller
// supplied), adapted to StackedAssumptions decision levels.
func (s *Solver) FailedAssumptions() []Literal {
	return s.failedAssumptions
}

// applyAssumptions opens one decision level per pushed assumption
// (StackedAssumptions) or a single shared level (FlatAssumptions), per
// Config.AssumptionMode. It stops and returns false at the first assumption
// that conflicts with the current assignment, having marked in seenVar every
// atom implicated in that conflict so the caller can call
// recordFailedAssumptions immediately afterward.
func (s *Solver) applyAssumptions() bool {
	if len(s.assumptions) == 0 {
		return true
	}

	s.seenVar.Clear()

	if s.config.AssumptionMode == FlatAssumptions {
		s.trailLim = append(s.trailLim, len(s.trail))
		for s.lbdSeen.Cap() <= s.decisionLevel() {
			s.lbdSeen.Expand()
		}
		for _, lit := range s.assumptions {
			s.seenVar.Add(int(lit.Atom()))
			if !s.enqueue(lit, assumptionReason) {
				return false
			}
		}
		return true
	}

	for s.decisionLevel() < len(s.assumptions) {
		lit := s.assumptions[s.decisionLevel()]
		s.seenVar.Add(int(lit.Atom()))
		if !s.assume(lit, assumptionReason) {
			return false
		}
		if conflict, hasConflict := s.Propagate(); hasConflict {
			for _, l := range s.explainConflictClause(conflict, s.tmpReason) {
				s.seenVar.Add(int(l.Atom()))
			}
			return false
		}
	}
	return true
}

// assumptionLevels reports how many decision levels are currently occupied
// by assumptions, per the active AssumptionMode.
func (s *Solver) assumptionLevels() int {
	if len(s.assumptions) == 0 {
		return 0
	}
	if s.config.AssumptionMode == FlatAssumptions {
		return 1
	}
	return len(s.assumptions)
}

// recordFailedAssumptions captures, from the atoms touched while analyzing a
// conflict discovered at or below the assumption levels, which pushed
// assumptions participated in it.
func (s *Solver) recordFailedAssumptions() {
	s.failedAssumptions = s.failedAssumptions[:0]
	for _, lit := range s.assumptions {
		if s.seenVar.Contains(int(lit.Atom())) {
			s.failedAssumptions = append(s.failedAssumptions, lit)
		}
	}
}
