package sat

// Luby generates the Luby restart sequence (https://oeis.org/A182105), scaled
// by a unit so that restart k occurs after unit*Luby() more conflicts.
// Translated from original_source/otter_lib/src/generic/luby.rs's Iterator
// into a Go-shaped stateful generator (Next() replacing Rust's next()).
type Luby struct {
	curr int64
	next int64
}

// newLuby returns a Luby generator positioned before the first term.
func newLuby() *Luby {
	return &Luby{}
}

// Next returns the next term of the sequence: 1, 1, 2, 1, 1, 2, 4, 1, ...
func (l *Luby) Next() int64 {
	if l.curr&(-l.curr) == l.next {
		l.curr++
		l.next = 1
	} else {
		l.next += l.next
	}
	return l.next
}

// EMA is an exponential moving average, used to track the mean LBD of
// recently learnt clauses for the Glucose-style restart trigger. Grounded on
// the teacher's sat/avg.go.
type EMA struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) EMA {
	return EMA{decay: decay}
}

func (e *EMA) Add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *EMA) Value() float64 {
	return e.value
}

// restartScheduler decides when Search should abandon the current run of
// decisions and restart from level 0. It combines a Luby-scaled conflict
// budget with a Glucose-style "recent LBD average well above the global
// average" early trigger, corroborated by other_examples' Luby-sequence
// restart cadence pattern.
type restartScheduler struct {
	enabled     bool
	unit        int64
	luby        *Luby
	budget      int64
	conflicts   int64
	recentLBD   EMA
	globalLBD   EMA
}

func newRestartScheduler(cfg Config) *restartScheduler {
	r := &restartScheduler{
		enabled:   cfg.EnableRestarts,
		unit:      cfg.LubyUnit,
		luby:      newLuby(),
		recentLBD: newEMA(0.03),
		globalLBD: newEMA(1e-5),
	}
	r.budget = r.unit * r.luby.Next()
	return r
}

// recordConflict updates the LBD averages and the conflict budget countdown
// after a conflict has been analyzed.
func (r *restartScheduler) recordConflict(lbd int) {
	r.conflicts++
	r.recentLBD.Add(float64(lbd))
	r.globalLBD.Add(float64(lbd))
}

// shouldRestart reports whether the scheduler wants a restart now, and resets
// its internal state if so.
func (r *restartScheduler) shouldRestart() bool {
	if !r.enabled {
		return false
	}
	if r.conflicts < r.budget && r.recentLBD.Value() <= 1.25*r.globalLBD.Value() {
		return false
	}
	r.conflicts = 0
	r.budget = r.unit * r.luby.Next()
	return true
}

// reductionScheduler decides when to run ReduceDB, based on a fixed
// conflict interval. Grounded on the teacher's Search (nLearnts growth
// schedule), generalized into its own component per spec 4.6.
type reductionScheduler struct {
	enabled       bool
	interval      int64
	lastReduction int64
}

func newReductionScheduler(cfg Config) *reductionScheduler {
	return &reductionScheduler{
		enabled:  cfg.EnableReduction,
		interval: cfg.ReductionConflictInterval,
	}
}

func (r *reductionScheduler) shouldReduce(totalConflicts int64) bool {
	if !r.enabled {
		return false
	}
	if totalConflicts-r.lastReduction < r.interval {
		return false
	}
	r.lastReduction = totalConflicts
	return true
}
