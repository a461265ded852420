package frat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vespidsat/vespid/internal/sat"
)

func TestWriter_nilIsNoOp(t *testing.T) {
	var fw *Writer
	fw.Original(nil, sat.ClauseKey{})
	fw.Addition(nil, sat.ClauseKey{}, nil)
	fw.Deletion(sat.ClauseKey{})
	fw.UnitFixed(0, sat.ClauseKey{})
	fw.Unsatisfiable(nil)
	if err := fw.Flush(); err != nil {
		t.Errorf("Flush() on nil Writer: %s", err)
	}
}

func TestCreate_emptyPath(t *testing.T) {
	fw, err := Create("")
	if err != nil {
		t.Fatalf("Create(\"\"): unexpected error: %s", err)
	}
	if fw != nil {
		t.Errorf("Create(\"\") = %v, want nil", fw)
	}
}

func TestWriter_recordsTrace(t *testing.T) {
	var buf bytes.Buffer
	fw := New(&buf)

	s := sat.NewSolver(sat.DefaultConfig, fw.Callbacks())

	a := s.AddVariable()
	b := s.AddVariable()
	c := s.AddVariable()

	if err := s.AddClause([]sat.Literal{sat.PositiveLiteral(a), sat.PositiveLiteral(b)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if err := s.AddClause([]sat.Literal{sat.NegativeLiteral(a), sat.PositiveLiteral(c)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	if err := fw.Flush(); err != nil {
		t.Fatalf("Flush(): %s", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, want 2:\n%s", len(lines), out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "o ") {
			t.Errorf("record %q: want an original ('o') record", l)
		}
	}
}

func TestWriter_unsatisfiableEmitsEmptyClauseAddition(t *testing.T) {
	var buf bytes.Buffer
	fw := New(&buf)

	s := sat.NewSolver(sat.DefaultConfig, fw.Callbacks())
	x := s.AddVariable()
	y := s.AddVariable()

	// Every 2-SAT clause over {x, y}: unsatisfiable only once a decision
	// forces a conflict, exercising Solve's failWithPremises path (the one
	// that actually fires OnUnsatisfiable) rather than AddClause's
	// immediate-conflict shortcut.
	clauses := [][]sat.Literal{
		{sat.PositiveLiteral(x), sat.PositiveLiteral(y)},
		{sat.PositiveLiteral(x), sat.NegativeLiteral(y)},
		{sat.NegativeLiteral(x), sat.PositiveLiteral(y)},
		{sat.NegativeLiteral(x), sat.NegativeLiteral(y)},
	}
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}

	if got := s.Solve(); got != sat.False {
		t.Fatalf("Solve() = %s, want false", got)
	}
	if err := fw.Flush(); err != nil {
		t.Fatalf("Flush(): %s", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "a ") {
		t.Fatalf("last record %q, want an addition ('a') record for the empty clause", last)
	}
	if strings.HasPrefix(last, "f ") {
		t.Errorf("last record %q uses a finalisation ('f') record instead of the empty-clause addition", last)
	}
}

func TestWriter_deletionReferencesIssuedID(t *testing.T) {
	var buf bytes.Buffer
	fw := New(&buf)

	s := sat.NewSolver(sat.DefaultConfig, fw.Callbacks())
	a := s.AddVariable()
	b := s.AddVariable()

	if err := s.AddClause([]sat.Literal{sat.PositiveLiteral(a), sat.PositiveLiteral(b)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	// Deleting a key frat never saw an Original/Addition record for must not
	// emit a dangling reference.
	fw.Deletion(sat.ClauseKey{})
	if err := fw.Flush(); err != nil {
		t.Fatalf("Flush(): %s", err)
	}
	if strings.Contains(buf.String(), "d ") {
		t.Errorf("Deletion() of an unknown key emitted a record: %q", buf.String())
	}
}
