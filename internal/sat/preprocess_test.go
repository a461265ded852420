package sat

import "testing"

func TestPureLiteralElimination_fixesOnlyOnePolarityAtoms(t *testing.T) {
	cfg := DefaultConfig
	cfg.Preprocessing = true
	s := NewSolver(cfg, Callbacks{})
	a := newAtoms(s, 3)

	// x0 appears only positively, x1 only negatively, x2 both ways.
	clauses := [][]Literal{
		{PositiveLiteral(a[0]), PositiveLiteral(a[2])},
		{PositiveLiteral(a[0]), NegativeLiteral(a[1])},
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
	if v := s.Value(a[0]); v != True {
		t.Errorf("Value(x0) = %s, want true (pure positive)", v)
	}
	if v := s.Value(a[1]); v != False {
		t.Errorf("Value(x1) = %s, want false (pure negative)", v)
	}
}

func TestPureLiteralElimination_disabledByDefault(t *testing.T) {
	s := NewSolver(DefaultConfig, Callbacks{})
	a := newAtoms(s, 1)

	if err := s.AddClause([]Literal{PositiveLiteral(a[0])}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if s.config.Preprocessing {
		t.Fatalf("DefaultConfig.Preprocessing = true, want false")
	}
}
