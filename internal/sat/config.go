package sat

import "time"

// StoppingCriteria selects when conflict analysis stops resolving.
type StoppingCriteria uint8

const (
	// FirstUIP stops as soon as exactly one current-level literal remains.
	FirstUIP StoppingCriteria = iota
	// NoStoppingCriteria resolves until no current-level literal remains
	// (spec's "None").
	NoStoppingCriteria
)

func (s StoppingCriteria) String() string {
	if s == NoStoppingCriteria {
		return "None"
	}
	return "FirstUIP"
}

// VSIDSVariant selects which atoms get their activity bumped after a
// conflict.
type VSIDSVariant uint8

const (
	// MiniSAT bumps every atom appearing in any clause resolved during the
	// analysis of the conflict.
	MiniSAT VSIDSVariant = iota
	// Chaff bumps only the atoms appearing in the resulting learnt clause.
	Chaff
)

func (v VSIDSVariant) String() string {
	if v == Chaff {
		return "Chaff"
	}
	return "MiniSAT"
}

// AssumptionMode controls how Solve opens decision levels for the pushed
// assumptions.
type AssumptionMode uint8

const (
	// StackedAssumptions opens one decision level per assumption, enabling
	// precise failed-assumption extraction.
	StackedAssumptions AssumptionMode = iota
	// FlatAssumptions enqueues all assumptions at a single decision level.
	FlatAssumptions
)

// Config collects every tunable the solver loop, schedulers, and decision
// policy consult. Grounded on the teacher's Options struct, extended with
// the knobs spec.md's CLI surface (§6) and decision/scheduler sections
// (§4.5, §4.6) name.
type Config struct {
	ClauseDecay   float64
	VariableDecay float64

	// PolarityLean is the probability ([0,1]) that an undecided atom with no
	// saved phase is decided true.
	PolarityLean float64
	// RandomDecisionBias is the probability ([0,1]) that a decision's
	// polarity is chosen uniformly at random instead of via phase/lean.
	RandomDecisionBias float64
	PhaseSaving        bool
	VSIDSVariant       VSIDSVariant

	StoppingCriteria StoppingCriteria
	// Minimize enables recursive-BCP self-subsumption minimization of the
	// learnt clause. Off by default per spec's Open Question guidance.
	Minimize bool

	EnableRestarts bool
	LubyUnit       int64

	EnableReduction bool
	ReductionConflictInterval int64
	LBDBound                  int

	AssumptionMode AssumptionMode

	MaxConflicts int64 // <0 disables the limit
	Timeout      time.Duration // <0 disables the limit

	// Preprocessing enables pure-literal elimination at the start of each
	// Solve call.
	Preprocessing bool
}

// DefaultConfig mirrors the teacher's DefaultOptions, extended with the new
// knobs at the values the original source (otter_lib/src/config/defaults.rs)
// uses.
var DefaultConfig = Config{
	ClauseDecay:               0.999,
	VariableDecay:             0.95,
	PolarityLean:              0.0,
	RandomDecisionBias:        0.0,
	PhaseSaving:               false,
	VSIDSVariant:              MiniSAT,
	StoppingCriteria:          FirstUIP,
	Minimize:                  false,
	EnableRestarts:            true,
	LubyUnit:                  128,
	EnableReduction:           true,
	ReductionConflictInterval: 2000,
	LBDBound:                  2,
	AssumptionMode:            StackedAssumptions,
	MaxConflicts:              -1,
	Timeout:                   -1,
	Preprocessing:             false,
}
