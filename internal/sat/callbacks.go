package sat

// Callbacks lets a caller observe proof-relevant solver events without the
// core depending on any particular consumer (a FRAT writer, a UI, a test).
// Every field is optional; callbacks run synchronously on the goroutine
// calling Solve, in the order the events occur, and must not call back into
// the solver. Grounded on the Rust original's dispatch/delta event taxonomy
// (otter_lib/src/dispatch), translated from a channel of tagged enums into a
// struct of optional function fields, which is the idiomatic Go shape for
// "maybe notify me" hooks.
type Callbacks struct {
	// OnOriginalClause fires once per binary or long clause accepted by
	// AddClause (after simplification), before the clause is otherwise used.
	// An original unit clause is reported through OnUnitFixed instead.
	OnOriginalClause func(lits []Literal, key ClauseKey)

	// OnDerivedClause fires once per clause of two or more literals learnt by
	// conflict analysis; a learnt unit is reported through OnUnitFixed
	// instead. premises lists, in resolution order, the clause keys resolved
	// against to produce lits.
	OnDerivedClause func(lits []Literal, key ClauseKey, premises []ClauseKey)

	// OnClauseDeleted fires when a stored binary or long clause is removed:
	// a learnt clause dropped by the reduction scheduler, or any clause that
	// Simplify finds satisfied at the root level. Binary promotion does not
	// fire it.
	OnClauseDeleted func(key ClauseKey)

	// OnUnitFixed fires whenever a literal is permanently fixed at level 0,
	// whether from an original unit, a collapsed learnt clause, or
	// pure-literal elimination.
	OnUnitFixed func(lit Literal, key ClauseKey)

	// OnUnsatisfiable fires once, when Solve meets a conflict at decision
	// level 0, with the premises of the final empty-clause derivation (the
	// key of that conflicting clause). It does not fire when AddClause or
	// pure-literal elimination makes the solver unsatisfiable, nor when Solve
	// fails only under assumptions.
	OnUnsatisfiable func(core []ClauseKey)

	// OnTerminate is polled once per search iteration; returning true asks
	// the solver to stop and report Unknown, per the cooperative
	// cancellation model.
	OnTerminate func() bool
}

func (s *Solver) fireOriginalClause(c *Clause, key ClauseKey) {
	if s.callbacks.OnOriginalClause != nil {
		s.callbacks.OnOriginalClause(c.Literals(), key)
	}
}

func (s *Solver) fireDerivedClause(c *Clause, key ClauseKey, premises []ClauseKey) {
	if s.callbacks.OnDerivedClause != nil {
		s.callbacks.OnDerivedClause(c.Literals(), key, premises)
	}
}

func (s *Solver) fireClauseDeleted(key ClauseKey) {
	if s.callbacks.OnClauseDeleted != nil {
		s.callbacks.OnClauseDeleted(key)
	}
}

func (s *Solver) fireUnitFixed(lit Literal, key ClauseKey) {
	if s.callbacks.OnUnitFixed != nil {
		s.callbacks.OnUnitFixed(lit, key)
	}
}

func (s *Solver) fireUnsatisfiable(core []ClauseKey) {
	if s.callbacks.OnUnsatisfiable != nil {
		s.callbacks.OnUnsatisfiable(core)
	}
}

func (s *Solver) terminateRequested() bool {
	return s.callbacks.OnTerminate != nil && s.callbacks.OnTerminate()
}
