package sat

import "testing"

// newAtoms declares n fresh atoms on s and returns them, for tests that want
// to build clauses without worrying about the reserved atom 0.
func newAtoms(s *Solver, n int) []Atom {
	atoms := make([]Atom, n)
	for i := range atoms {
		atoms[i] = s.AddVariable()
	}
	return atoms
}

func TestSolve_satisfiable(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 3)

	clauses := [][]Literal{
		{PositiveLiteral(a[0]), PositiveLiteral(a[1])},
		{NegativeLiteral(a[0]), PositiveLiteral(a[2])},
		{NegativeLiteral(a[1]), NegativeLiteral(a[2])},
	}
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != True {
		t.Fatalf("Solve() = %s, want true", got)
	}

	model := s.Model()
	for _, c := range clauses {
		satisfied := false
		for _, lit := range c {
			v := model[lit.Atom()]
			if (v && lit.IsPositive()) || (!v && !lit.IsPositive()) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			t.Errorf("clause %v not satisfied by model %v", c, model)
		}
	}
}

func TestSolve_unsatisfiable_conflictingUnits(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)

	if err := s.AddClause([]Literal{PositiveLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	if got := s.Solve(); got != False {
		t.Fatalf("Solve() = %s, want false", got)
	}
}

func TestSolve_unsatisfiable_requiresConflictAnalysis(t *testing.T) {
	// A minimal instance that cannot be resolved by unit propagation alone:
	// every clause has at least two live literals until a decision is made.
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 2)
	x, y := a[0], a[1]

	clauses := [][]Literal{
		{PositiveLiteral(x), PositiveLiteral(y)},
		{PositiveLiteral(x), NegativeLiteral(y)},
		{NegativeLiteral(x), PositiveLiteral(y)},
		{NegativeLiteral(x), NegativeLiteral(y)},
	}
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != False {
		t.Fatalf("Solve() = %s, want false", got)
	}
	if core := s.UnsatCore(); len(core) == 0 {
		t.Errorf("UnsatCore() is empty for an unsatisfiable instance")
	}
}

// pigeonholeClauses returns the standard pigeonhole encoding for the given
// numbers of pigeons and holes (unsatisfiable whenever pigeons > holes):
// pigeon i occupies some hole, and no two pigeons share a hole.
func pigeonholeClauses(pigeons, holes int, atom func(p, h int) Atom) [][]Literal {
	var clauses [][]Literal
	for p := 0; p < pigeons; p++ {
		c := make([]Literal, holes)
		for h := 0; h < holes; h++ {
			c[h] = PositiveLiteral(atom(p, h))
		}
		clauses = append(clauses, c)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				clauses = append(clauses, []Literal{
					NegativeLiteral(atom(p1, h)),
					NegativeLiteral(atom(p2, h)),
				})
			}
		}
	}
	return clauses
}

func TestSolve_pigeonhole_unsat(t *testing.T) {
	const pigeons, holes = 5, 4

	s := NewSolver(DefaultConfig, Callbacks{})
	vars := make([][]Atom, pigeons)
	for p := range vars {
		vars[p] = newAtoms(s, holes)
	}
	atom := func(p, h int) Atom { return vars[p][h] }

	for _, c := range pigeonholeClauses(pigeons, holes, atom) {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != False {
		t.Fatalf("Solve() on a %d-pigeon/%d-hole instance = %s, want false", pigeons, holes, got)
	}
}

func TestSolve_pigeonhole_oneMoreHoleThanPigeons_sat(t *testing.T) {
	const pigeons, holes = 3, 4

	s := NewSolver(DefaultConfig, Callbacks{})
	vars := make([][]Atom, pigeons)
	for p := range vars {
		vars[p] = newAtoms(s, holes)
	}
	atom := func(p, h int) Atom { return vars[p][h] }

	for _, c := range pigeonholeClauses(pigeons, holes, atom) {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != True {
		t.Fatalf("Solve() on a %d-pigeon/%d-hole instance = %s, want true", pigeons, holes, got)
	}
}

func TestAddClause_tautologyIsDiscarded(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)

	before := s.NumConstraints()
	if err := s.AddClause([]Literal{PositiveLiteral(a[0]), NegativeLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if got := s.NumConstraints(); got != before {
		t.Errorf("NumConstraints() = %d after adding a tautology, want unchanged %d", got, before)
	}
}

func TestAddClause_emptyClauseIsUnsat(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})

	if err := s.AddClause(nil); err != nil {
		t.Fatalf("AddClause(nil): %s", err)
	}
	if got := s.Solve(); got != False {
		t.Fatalf("Solve() after an empty clause = %s, want false", got)
	}
}

func TestAddClause_rejectsNonRootLevel(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)
	s.assume(PositiveLiteral(a[0]), decisionReason)

	if err := s.AddClause([]Literal{PositiveLiteral(a[0])}); err != ErrNotRootLevel {
		t.Errorf("AddClause() at decision level %d = %v, want ErrNotRootLevel", s.decisionLevel(), err)
	}
}

func TestSimplify_promotesLongClauseThatCollapsesToTwoLiterals(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 3)

	long := []Literal{PositiveLiteral(a[0]), PositiveLiteral(a[1]), PositiveLiteral(a[2])}
	if err := s.AddClause(long); err != nil {
		t.Fatalf("AddClause(%v): %s", long, err)
	}
	beforeLong := len(s.clauses.iterateLong())
	beforeBinary := len(s.clauses.iterateBinary())

	if err := s.AddClause([]Literal{NegativeLiteral(a[2])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if !s.Simplify() {
		t.Fatalf("Simplify() = false, want true")
	}

	if got := len(s.clauses.iterateLong()); got != beforeLong-1 {
		t.Errorf("iterateLong() count = %d after Simplify, want %d (the 3-literal clause promoted away)", got, beforeLong-1)
	}
	if got := len(s.clauses.iterateBinary()); got != beforeBinary+1 {
		t.Errorf("iterateBinary() count = %d after Simplify, want %d (the promoted clause)", got, beforeBinary+1)
	}

	if got := s.Solve(); got != True {
		t.Fatalf("Solve() after promotion = %s, want true", got)
	}
	if s.Value(a[2]) != False {
		t.Fatalf("Value(x2) = %s, want false", s.Value(a[2]))
	}
	if model := s.Model(); !model[a[0]] && !model[a[1]] {
		t.Errorf("neither x0 nor x1 is true, but the promoted binary clause requires one of them")
	}
}

func TestAssumptions_failedAssumptionsReported(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)

	if err := s.AddClause([]Literal{NegativeLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	s.PushAssumption(PositiveLiteral(a[0]))
	if got := s.Solve(); got != False {
		t.Fatalf("Solve() with a contradicted assumption = %s, want false", got)
	}

	failed := s.FailedAssumptions()
	if len(failed) != 1 || failed[0] != PositiveLiteral(a[0]) {
		t.Errorf("FailedAssumptions() = %v, want [%v]", failed, PositiveLiteral(a[0]))
	}
}

func TestAssumptions_satisfiableUnderAssumption(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 2)

	if err := s.AddClause([]Literal{NegativeLiteral(a[0]), PositiveLiteral(a[1])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	s.PushAssumption(PositiveLiteral(a[0]))
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() under a satisfiable assumption = %s, want true", got)
	}
	if model := s.Model(); !model[a[1]] {
		t.Errorf("assumption x0 did not propagate to x1 := true, model = %v", model)
	}
}

func TestSolve_reusableAcrossClearedAssumptions(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)
	if err := s.AddClause([]Literal{NegativeLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	s.PushAssumption(PositiveLiteral(a[0]))
	if got := s.Solve(); got != False {
		t.Fatalf("Solve() with a contradicted assumption = %s, want false", got)
	}

	s.ClearAssumptions()
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() after clearing the bad assumption = %s, want true", got)
	}
}

func TestSolve_respectsMaxConflicts(t *testing.T) {
	cfg := DefaultConfig
	cfg.MaxConflicts = 0
	cfg.EnableRestarts = false

	s := NewSolver(cfg, Callbacks{})
	a := newAtoms(s, 2)
	x, y := a[0], a[1]
	clauses := [][]Literal{
		{PositiveLiteral(x), PositiveLiteral(y)},
		{PositiveLiteral(x), NegativeLiteral(y)},
		{NegativeLiteral(x), PositiveLiteral(y)},
		{NegativeLiteral(x), NegativeLiteral(y)},
	}
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != Unknown {
		t.Fatalf("Solve() with MaxConflicts=0 = %s, want unknown", got)
	}
}

func TestSolve_callbacksObserveOriginalAndDerivedClauses(t *testing.T) {
	const pigeons, holes = 4, 3

	var originals, derived int
	cb := Callbacks{
		OnOriginalClause: func(lits []Literal, key ClauseKey) { originals++ },
		OnDerivedClause:  func(lits []Literal, key ClauseKey, premises []ClauseKey) { derived++ },
	}

	s := NewSolver(DefaultConfig, cb)
	vars := make([][]Atom, pigeons)
	for p := range vars {
		vars[p] = newAtoms(s, holes)
	}
	atom := func(p, h int) Atom { return vars[p][h] }

	clauses := pigeonholeClauses(pigeons, holes, atom)
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != False {
		t.Fatalf("Solve() on a %d-pigeon/%d-hole instance = %s, want false", pigeons, holes, got)
	}

	if originals != len(clauses) {
		t.Errorf("OnOriginalClause fired %d times, want %d", originals, len(clauses))
	}
	if derived == 0 {
		t.Errorf("OnDerivedClause never fired for an instance that requires conflict analysis")
	}
}

func TestSolve_terminateCallbackStopsSearch(t *testing.T) {
	const pigeons, holes = 6, 5

	calls := 0
	cb := Callbacks{OnTerminate: func() bool {
		calls++
		return calls > 2
	}}

	s := NewSolver(DefaultConfig, cb)
	vars := make([][]Atom, pigeons)
	for p := range vars {
		vars[p] = newAtoms(s, holes)
	}
	atom := func(p, h int) Atom { return vars[p][h] }

	for _, c := range pigeonholeClauses(pigeons, holes, atom) {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != Unknown {
		t.Fatalf("Solve() with a tripped terminate callback = %s, want unknown", got)
	}
}
