package sat

// ReasonKind classifies why a literal appears on the trail.
type ReasonKind uint8

const (
	// ReasonDecision marks a free choice made by the decision policy.
	ReasonDecision ReasonKind = iota
	// ReasonAssumption marks a literal pushed by the assumption layer.
	ReasonAssumption
	// ReasonPure marks a literal fixed by pure-literal elimination.
	ReasonPure
	// ReasonPropagation marks a literal forced by a clause becoming unit.
	ReasonPropagation
)

// Reason records why a trail literal was assigned. Propagation reasons carry
// the clause key that forced the assignment; the reason graph (literal ->
// clause -> literals) is reconstructed on demand by following that key
// rather than via back-pointers, per the "implicit reason graph" design
// note.
type Reason struct {
	Kind  ReasonKind
	Clause ClauseKey
}

var decisionReason = Reason{Kind: ReasonDecision}
var assumptionReason = Reason{Kind: ReasonAssumption}
var pureReason = Reason{Kind: ReasonPure}

func propagationReason(k ClauseKey) Reason {
	return Reason{Kind: ReasonPropagation, Clause: k}
}

// IsFree reports whether the reason is a free choice (decision or
// assumption), i.e. not implied by any clause.
func (r Reason) IsFree() bool {
	return r.Kind == ReasonDecision || r.Kind == ReasonAssumption
}
