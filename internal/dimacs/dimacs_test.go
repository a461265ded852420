package dimacs

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vespidsat/vespid/internal/sat"
)

// instance is a Builder test double that records what it was told rather
// than solving anything.
type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) AddVariable() sat.Atom {
	a := sat.Atom(i.Variables)
	i.Variables++
	return a
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

const testCNF = `c a tiny three-variable instance
p cnf 3 2
1 2 3 0
-1 -2 0
`

var wantInstance = instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.PositiveLiteral(1), sat.PositiveLiteral(2)},
		{sat.NegativeLiteral(0), sat.NegativeLiteral(1)},
	},
}

func TestRead(t *testing.T) {
	got := instance{}
	if err := Read(strings.NewReader(testCNF), &got); err != nil {
		t.Fatalf("Read(): unexpected error: %s", err)
	}
	if diff := cmp.Diff(wantInstance, got); diff != "" {
		t.Errorf("Read(): mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.cnf")
	if err := os.WriteFile(path, []byte(testCNF), 0o644); err != nil {
		t.Fatal(err)
	}

	got := instance{}
	if err := Load(path, false, &got); err != nil {
		t.Fatalf("Load(): unexpected error: %s", err)
	}
	if diff := cmp.Diff(wantInstance, got); diff != "" {
		t.Errorf("Load(): mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_gzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(testCNF)); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "instance.cnf.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got := instance{}
	if err := Load(path, true, &got); err != nil {
		t.Fatalf("Load(): unexpected error: %s", err)
	}
	if diff := cmp.Diff(wantInstance, got); diff != "" {
		t.Errorf("Load(): mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_noFile(t *testing.T) {
	got := instance{}
	if err := Load(filepath.Join(t.TempDir(), "missing.cnf"), false, &got); err == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoad_gzipOnPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.cnf")
	if err := os.WriteFile(path, []byte(testCNF), 0o644); err != nil {
		t.Fatal(err)
	}

	got := instance{}
	if err := Load(path, true, &got); err == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestWriteRead_roundTrip(t *testing.T) {
	nVars := 3
	clauses := [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.NegativeLiteral(0), sat.PositiveLiteral(2)},
	}

	var buf bytes.Buffer
	if err := Write(&buf, nVars, clauses); err != nil {
		t.Fatalf("Write(): unexpected error: %s", err)
	}

	got := instance{}
	if err := Read(&buf, &got); err != nil {
		t.Fatalf("Read(): unexpected error: %s", err)
	}
	if got.Variables != nVars {
		t.Errorf("Variables = %d, want %d", got.Variables, nVars)
	}
	if diff := cmp.Diff(clauses, got.Clauses); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
