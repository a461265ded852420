package sat

import "time"

// SolverState names where a Solver sits in its lifecycle, made explicit here
// as spec's {Configuration, Input, Solving, Satisfiable, Unsatisfiable}
// state machine. The teacher tracks the same information implicitly via an
// `unsat bool` and decision-level checks.
type SolverState uint8

const (
	Configuration SolverState = iota
	Input
	Solving
	Satisfiable
	Unsatisfiable
)

func (st SolverState) String() string {
	switch st {
	case Configuration:
		return "Configuration"
	case Input:
		return "Input"
	case Solving:
		return "Solving"
	case Satisfiable:
		return "Satisfiable"
	case Unsatisfiable:
		return "Unsatisfiable"
	default:
		return "Unknown"
	}
}

// Solver owns every piece of state a CDCL search needs: the clause
// database, watch lists, trail, activity ordering, schedulers, and optional
// proof callbacks. It is not safe for concurrent use, per spec's
// single-threaded cooperative concurrency model.
type Solver struct {
	config    Config
	callbacks Callbacks
	state     SolverState

	clauses *ClauseDatabase

	assigns []LBool
	level   []int
	reason  []Reason

	trail    []Literal
	trailLim []int

	propQueue      *Queue[Literal]
	watchersBinary [][]binWatch
	watchersLong   [][]longWatch

	order *VarOrder

	clauseInc float64

	restarts  *restartScheduler
	reduction *reductionScheduler

	assumptions       []Literal
	failedAssumptions []Literal

	seenVar *ResetSet
	lbdSeen *ResetSet

	tmpLearnts  []Literal
	tmpReason   []Literal
	tmpWatchers []longWatch

	model []bool

	unsatPremises []ClauseKey

	TotalConflicts int64
	TotalRestarts  int64
	TotalDecisions int64
	startTime      time.Time
}

// NewSolver returns a Solver configured per cfg, with atom 0 already
// declared and permanently fixed true (spec's reserved sentinel atom).
func NewSolver(cfg Config, callbacks Callbacks) *Solver {
	s := &Solver{
		config:    cfg,
		callbacks: callbacks,
		state:     Configuration,
		clauses:   newClauseDatabase(),
		propQueue: NewQueue[Literal](128),
		seenVar:   &ResetSet{},
		lbdSeen:   &ResetSet{},
		clauseInc: 1,
	}
	s.order = newVarOrder(cfg)
	s.restarts = newRestartScheduler(cfg)
	s.reduction = newReductionScheduler(cfg)

	s.AddVariable() // atom 0, reserved
	key := s.clauses.appendUnit(PositiveLiteral(ReservedAtom), SourceOriginal)
	s.enqueue(PositiveLiteral(ReservedAtom), propagationReason(key))

	s.state = Input
	return s
}

func (s *Solver) NumConstraints() int {
	return len(s.clauses.iterateLong()) + len(s.clauses.iterateBinary()) + len(s.clauses.iterateUnits())
}

func (s *Solver) shouldStop() bool {
	if s.config.MaxConflicts >= 0 && s.TotalConflicts >= s.config.MaxConflicts {
		return true
	}
	if s.config.Timeout >= 0 && time.Since(s.startTime) >= s.config.Timeout {
		return true
	}
	return s.terminateRequested()
}

// Simplify removes clauses satisfied at the root level. It does nothing and
// returns false above decision level 0. It first propagates any pending
// literals itself, and returns false if that finds a conflict.
func (s *Solver) Simplify() bool {
	if s.decisionLevel() != 0 {
		return false
	}
	if s.state == Unsatisfiable {
		return false
	}
	if _, conflict := s.Propagate(); conflict {
		s.fail()
		return false
	}

	for _, key := range s.clauses.iterateLong() {
		c, ok := s.clauses.Get(key)
		if !ok {
			continue
		}
		if c.simplify(s) {
			s.removeClause(key, c)
			continue
		}
		// A long clause's watched literals are never themselves false once
		// Propagate has reached a fixpoint, so simplify can only shrink a
		// surviving clause down to its two watched literals, never below.
		if len(c.literals) == 2 {
			s.promoteToBinary(key, c)
		}
	}
	for _, key := range s.clauses.iterateBinary() {
		c, ok := s.clauses.Get(key)
		if !ok {
			continue
		}
		if c.simplify(s) {
			s.removeClause(key, c)
		}
	}

	return true
}

// failWithPremises marks the solver permanently unsatisfiable, records
// premises as the unsat core, and fires the OnUnsatisfiable callback with
// them.
func (s *Solver) failWithPremises(premises []ClauseKey) {
	s.state = Unsatisfiable
	s.unsatPremises = premises
	s.fireUnsatisfiable(premises)
}

// Solve runs CDCL search to completion (or until a configured stop
// condition fires) and returns True, False, or Unknown. Grounded on the
// teacher's Solver.Solve/Search, restructured around the explicit
// restart/reduction schedulers and the Reason/ClauseKey indirection.
func (s *Solver) Solve() LBool {
	if s.state == Unsatisfiable {
		return False
	}

	s.state = Solving
	s.startTime = time.Now()
	s.failedAssumptions = s.failedAssumptions[:0]
	defer s.cancelUntil(0)

	if s.config.Preprocessing && !s.pureLiteralElimination() {
		return False
	}

	if !s.applyAssumptions() {
		s.recordFailedAssumptions()
		return False
	}

	for {
		conflict, hasConflict := s.Propagate()
		if hasConflict {
			s.TotalConflicts++

			if s.decisionLevel() <= s.assumptionLevels() {
				s.seenVar.Clear()
				for _, lit := range s.explainConflictClause(conflict, s.tmpReason) {
					s.seenVar.Add(int(lit.Atom()))
				}
				s.recordFailedAssumptions()
				if s.decisionLevel() > 0 {
					return False // refuted under the assumptions only
				}
				s.failWithPremises([]ClauseKey{conflict})
				return False
			}

			learnt, backtrackLevel, lbd, premises := s.analyze(conflict)
			if backtrackLevel < s.assumptionLevels() {
				backtrackLevel = s.assumptionLevels()
			}
			s.cancelUntil(backtrackLevel)
			s.recordLearnt(learnt, lbd, premises)

			s.decayClauseActivity()
			s.order.decayScores()
			s.restarts.recordConflict(lbd)
			continue
		}

		if s.decisionLevel() == 0 {
			s.Simplify()
		}

		if s.reduction.shouldReduce(s.TotalConflicts) {
			s.reduceDB()
		}

		if s.NumAssigns() == s.NumVariables() {
			s.saveModel()
			s.state = Satisfiable
			return True
		}

		if s.shouldStop() {
			return Unknown
		}

		if s.restarts.shouldRestart() {
			s.TotalRestarts++
			s.cancelUntil(s.assumptionLevels())
			continue
		}

		lit, ok := s.order.decideLiteral(s)
		if !ok {
			s.saveModel()
			s.state = Satisfiable
			return True
		}
		s.TotalDecisions++
		s.assume(lit, decisionReason)
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for a := range model {
		model[a] = s.Value(Atom(a)) == True
	}
	s.model = model
}

// Model returns the satisfying assignment found by the last successful
// Solve call, indexed by Atom. It is nil unless the last Solve returned
// True.
func (s *Solver) Model() []bool {
	return s.model
}

// UnsatCore returns the premises recorded when Solve met a conflict at
// decision level 0: the key of that conflicting clause only. The clauses it
// was derived from are not traced back. It is nil when Solve has met no such
// conflict, including when AddClause or pure-literal elimination made the
// solver unsatisfiable.
func (s *Solver) UnsatCore() []ClauseKey {
	return s.unsatPremises
}
