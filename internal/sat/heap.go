package sat

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// VarOrder maintains the VSIDS-style activity ordering used to pick the next
// decision atom. Grounded on the teacher's VarOrder, rebuilt with a single
// consistent method set (the teacher's ordering.go and solver.go disagreed on
// method names) and generalized to carry an Atom instead of a bare int, a
// configurable VSIDS bump variant, and phase/polarity/random-decision biasing
// per spec 4.5.
type VarOrder struct {
	order *yagh.IntMap[float64]

	scores   []float64
	scoreInc float64
	decay    float64
	variant  VSIDSVariant

	phases      []LBool
	phaseSaving bool
	polarityLean float64

	randomBias float64
	rng        *rand.Rand
}

// newVarOrder returns an empty VarOrder configured per cfg.
func newVarOrder(cfg Config) *VarOrder {
	return &VarOrder{
		order:        yagh.New[float64](0),
		scoreInc:     1,
		decay:        cfg.VariableDecay,
		variant:      cfg.VSIDSVariant,
		phaseSaving:  cfg.PhaseSaving,
		polarityLean: cfg.PolarityLean,
		randomBias:   cfg.RandomDecisionBias,
		rng:          rand.New(rand.NewSource(1)),
	}
}

// addVariable registers a new atom with zero activity and an initial phase
// chosen from the configured polarity lean.
func (vo *VarOrder) addVariable() {
	a := len(vo.phases)
	initPhase := vo.rng.Float64() < vo.polarityLean

	vo.scores = append(vo.scores, 0)
	vo.phases = append(vo.phases, Lift(initPhase))
	vo.order.GrowBy(1)
	vo.order.Put(a, 0)
}

// bump increases a's activity following the configured VSIDS variant and
// reinserts it into the heap if it is still a candidate.
func (vo *VarOrder) bump(a Atom) {
	switch vo.variant {
	case Chaff:
		vo.scores[a] = vo.scores[a]*0.5 + vo.scoreInc
	default: // MiniSAT
		vo.scores[a] += vo.scoreInc
	}
	if vo.order.Contains(int(a)) {
		vo.order.Put(int(a), -vo.scores[a])
	}
	if vo.scores[a] > 1e100 {
		vo.rescale()
	}
}

// decayScores ages the global score increment, making future bumps relatively
// larger than past ones.
func (vo *VarOrder) decayScores() {
	vo.scoreInc /= vo.decay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

func (vo *VarOrder) rescale() {
	vo.scoreInc *= 1e-100
	for a, sc := range vo.scores {
		vo.scores[a] = sc * 1e-100
		if vo.order.Contains(a) {
			vo.order.Put(a, -vo.scores[a])
		}
	}
}

// undo returns a to the candidate heap, recording its last value for phase
// saving if enabled. Called when a is unassigned by backtracking.
func (vo *VarOrder) undo(a Atom, val LBool) {
	if vo.phaseSaving {
		vo.phases[a] = val
	}
	vo.order.Put(int(a), -vo.scores[a])
}

// selectAtom pops the highest-activity unassigned atom, skipping stale heap
// entries for atoms that a caller already fixed some other way.
func (vo *VarOrder) selectAtom(s *Solver) (Atom, bool) {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			return 0, false
		}
		a := Atom(next.Elem)
		if s.Value(a) != Unknown {
			continue
		}
		return a, true
	}
}

// decideLiteral selects the next decision literal, applying phase saving /
// polarity lean and an optional random polarity flip per RandomDecisionBias.
func (vo *VarOrder) decideLiteral(s *Solver) (Literal, bool) {
	a, ok := vo.selectAtom(s)
	if !ok {
		return 0, false
	}

	positive := vo.phases[a] != False
	if vo.randomBias > 0 && vo.rng.Float64() < vo.randomBias {
		positive = vo.rng.Float64() < 0.5
	}
	if positive {
		return PositiveLiteral(a), true
	}
	return NegativeLiteral(a), true
}
