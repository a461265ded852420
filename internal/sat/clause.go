package sat

import "strings"

// ClauseSource records why a clause exists, per spec's data model.
type ClauseSource uint8

const (
	// SourceOriginal is a clause present in the input formula.
	SourceOriginal ClauseSource = iota
	// SourceBCP is a unit clause derived purely from unit propagation over
	// originals. No code path in this package creates a clause with this
	// source.
	SourceBCP
	// SourceResolution is a clause learnt by conflict analysis.
	SourceResolution
	// SourcePure is a unit fixed by pure-literal elimination.
	SourcePure
)

// Clause is the shared representation for binary and long clauses. Unit
// clauses never need this representation (see unitRecord in clausedb.go):
// modelling all three lengths with one tagged type, per the "polymorphism
// over clauses" design note, would force every read to branch on length for
// no benefit, since units carry no watches at all.
//
// literals[0] and literals[1] are always the two watched positions for long
// clauses. Binary clauses use both positions as their only two literals and
// are never re-watched.
type Clause struct {
	literals []Literal
	source   ClauseSource

	// Long-clause bookkeeping (zero value is harmless for binary clauses).
	activity float64
	lbd      int
	// prevPos caches where the last replacement watch was found, so the
	// next search resumes there instead of rescanning from literals[2].
	prevPos int

	deleted bool

	// tok matches the ClauseKey.tok that currently owns this slot. It is
	// bumped whenever the slot is recycled so that a stale key (one handed
	// out before the recycle) is rejected by ClauseDatabase.Get.
	tok token
}

func newLongClause(literals []Literal, source ClauseSource) *Clause {
	c := &Clause{
		literals: append(acquireLiterals(len(literals)), literals...),
		source:   source,
		prevPos:  2,
	}
	return c
}

func newBinaryClause(a, b Literal, source ClauseSource) *Clause {
	return &Clause{literals: []Literal{a, b}, source: source}
}

// Literals returns the clause's current literals. Callers (proof writers,
// iterate_*) must not retain the returned slice past the callback or
// iteration step that produced it.
func (c *Clause) Literals() []Literal {
	return c.literals
}

func (c *Clause) Len() int {
	return len(c.literals)
}

func (c *Clause) IsLearnt() bool {
	return c.source == SourceResolution
}

func (c *Clause) Source() ClauseSource {
	return c.source
}

func (c *Clause) LBD() int {
	return c.lbd
}

// locked reports whether c is currently serving as the reason for one of
// its own literals, which protects it from reduction.
func (c *Clause) locked(s *Solver, key ClauseKey) bool {
	a := c.literals[0].Atom()
	r := s.reason[a]
	return r.Kind == ReasonPropagation && r.Clause == key
}

// simplify drops literals false at the root level and reports whether the
// clause is already satisfied (and can be removed).
func (c *Clause) simplify(s *Solver) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.LitValue(lit) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// propagateLong handles BCP for a long (>=3 literal) clause whose watched
// literal l.Opposite() has just become false (l itself was just made true).
// It returns true if the clause remains
// satisfiable-or-pending (no action needed beyond the watch move performed
// inside), and false if the clause is now conflicting.
//
// Grounded on the teacher's Clause.Propagate, generalized to move watches by
// ClauseKey (the caller re-registers c's key, not a pointer) and to resume
// the replacement search from prevPos.
func (c *Clause) propagateLong(s *Solver, key ClauseKey, l Literal) (satisfiedOrPending bool) {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if s.LitValue(c.literals[0]) == True {
		s.watchLong(key, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.watchLong(key, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos && i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.watchLong(key, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	// No replacement: literals[0] must become true if it can.
	s.watchLong(key, l, c.literals[0])
	return s.enqueue(c.literals[0], propagationReason(key))
}

// explainAssign returns the antecedent literals (complements of the
// clause's other literals) that forced the clause's one true literal, bumping
// the clause's activity if it is a learnt clause being resolved again. For a
// long clause that literal is c.literals[0]; a binary clause may have
// propagated either of its two literals.
func (c *Clause) explainAssign(s *Solver, dst []Literal) []Literal {
	dst = dst[:0]
	for _, lit := range c.literals {
		if s.LitValue(lit) == True {
			continue
		}
		dst = append(dst, lit.Opposite())
	}
	if c.IsLearnt() {
		s.bumpClauseActivity(c)
	}
	return dst
}

// explainConflict returns every literal's complement, i.e. the clause
// viewed as a set of reasons the conflict occurred.
func (c *Clause) explainConflict(s *Solver, dst []Literal) []Literal {
	dst = dst[:0]
	for _, lit := range c.literals {
		dst = append(dst, lit.Opposite())
	}
	if c.IsLearnt() {
		s.bumpClauseActivity(c)
	}
	return dst
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "[]"
	}
	sb := strings.Builder{}
	sb.WriteByte('[')
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// computeLBD computes the literal-block-distance (number of distinct
// decision levels represented among the clause's literals) for the learnt
// clause c, using levels as they stand right after analysis (before
// backjumping).
func computeLBD(s *Solver, literals []Literal) int {
	s.lbdSeen.Clear()
	n := 0
	for _, lit := range literals {
		lvl := s.level[lit.Atom()]
		if lvl == 0 {
			continue
		}
		if !s.lbdSeen.Contains(lvl) {
			s.lbdSeen.Add(lvl)
			n++
		}
	}
	return n
}
