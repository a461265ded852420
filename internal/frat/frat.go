// Package frat formats an FRAT proof trace from the core solver's callback
// events. FRAT ("Forward Resolution Asymmetric Tautology") proofs record
// original clauses ('o'), derived clauses ('a', with the premises resolved
// to produce them), deletions ('d'), and the final active clause set ('f'),
// each keyed by a stable integer clause id. This Writer emits 'o', 'a' and
// 'd' records; it writes no 'f' records.
//
// Grounded on original_source/otter_cli/src/records/frat.rs's
// build_frat_writer/Transcriber shape: a Dispatch consumer that is a no-op
// when no output path is configured, here expressed as a Writer wired
// through internal/sat.Callbacks instead of a Rust channel dispatcher.
package frat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vespidsat/vespid/internal/sat"
)

// Writer formats FRAT records to an underlying io.Writer. A nil *Writer is
// valid and every method becomes a no-op, matching the teacher's "no path
// configured" behavior.
type Writer struct {
	w    *bufio.Writer
	ids  map[sat.ClauseKey]int64
	next int64
}

// Create opens path for writing and returns a Writer over it. Passing an
// empty path returns a nil *Writer whose methods are no-ops.
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// New returns a Writer formatting records to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), ids: map[sat.ClauseKey]int64{}}
}

func (fw *Writer) idFor(key sat.ClauseKey) int64 {
	if id, ok := fw.ids[key]; ok {
		return id
	}
	fw.next++
	fw.ids[key] = fw.next
	return fw.next
}

func formatLiterals(lits []sat.Literal) string {
	s := ""
	for _, l := range lits {
		n := int(l.Atom()) + 1
		if !l.IsPositive() {
			n = -n
		}
		s += fmt.Sprintf("%d ", n)
	}
	return s
}

// Original records an input clause.
func (fw *Writer) Original(lits []sat.Literal, key sat.ClauseKey) {
	if fw == nil {
		return
	}
	fmt.Fprintf(fw.w, "o %d %s0\n", fw.idFor(key), formatLiterals(lits))
}

// Addition records a derived clause together with the ids of the clauses
// resolved to produce it.
func (fw *Writer) Addition(lits []sat.Literal, key sat.ClauseKey, premises []sat.ClauseKey) {
	if fw == nil {
		return
	}
	fmt.Fprintf(fw.w, "a %d %s0 ", fw.idFor(key), formatLiterals(lits))
	for _, p := range premises {
		fmt.Fprintf(fw.w, "%d ", fw.idFor(p))
	}
	fw.w.WriteString("0\n")
}

// UnitFixed records a literal fixed at level 0 as a unit clause: an addition
// ('a') record for a learnt unit, an original ('o') record for any other.
func (fw *Writer) UnitFixed(lit sat.Literal, key sat.ClauseKey) {
	if fw == nil {
		return
	}
	tag := "o"
	if key.Kind() == sat.AdditionUnit {
		tag = "a"
	}
	fmt.Fprintf(fw.w, "%s %d %s0\n", tag, fw.idFor(key), formatLiterals([]sat.Literal{lit}))
}

// Deletion records that a clause is no longer part of the active database.
func (fw *Writer) Deletion(key sat.ClauseKey) {
	if fw == nil {
		return
	}
	if id, ok := fw.ids[key]; ok {
		fmt.Fprintf(fw.w, "d %d\n", id)
	}
}

// Unsatisfiable records the derivation of the empty clause from the
// refutation's final premises. Per the FRAT convention, the last record of
// an unsatisfiable proof is an addition of the empty clause, not a
// finalisation record: 'f' only declares which clauses are still live when
// the proof checker exits, and this Writer emits none.
func (fw *Writer) Unsatisfiable(core []sat.ClauseKey) {
	if fw == nil {
		return
	}
	fw.next++
	fmt.Fprintf(fw.w, "a %d 0 ", fw.next)
	for _, k := range core {
		fmt.Fprintf(fw.w, "%d ", fw.idFor(k))
	}
	fw.w.WriteString("0\n")
}

// Flush flushes buffered output. It must be called before the process exits.
func (fw *Writer) Flush() error {
	if fw == nil {
		return nil
	}
	return fw.w.Flush()
}

// Callbacks returns a sat.Callbacks wired to emit FRAT records for the
// events spec's proof-logging section names. Safe to call on a nil Writer:
// the returned callbacks are all no-ops.
func (fw *Writer) Callbacks() sat.Callbacks {
	return sat.Callbacks{
		OnOriginalClause: fw.Original,
		OnDerivedClause:  fw.Addition,
		OnClauseDeleted:  fw.Deletion,
		OnUnitFixed:      fw.UnitFixed,
		OnUnsatisfiable:  fw.Unsatisfiable,
	}
}
