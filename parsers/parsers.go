// Package parsers loads DIMACS CNF instances for the CLI, on top of the
// external github.com/rhartert/dimacs builder-style parser. Grounded on the
// teacher's parsers/parsers.go, extended with transparent .xz decompression
// via github.com/ulikunitz/xz alongside the existing gzip support.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"
	"github.com/ulikunitz/xz"

	"github.com/vespidsat/vespid/internal/sat"
)

// SATSolver is the subset of *sat.Solver the loader needs.
type SATSolver interface {
	AddVariable() sat.Atom
	AddClause([]sat.Literal) error
}

func openDecompressed(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		return readCloser{Reader: gz, closer: file}, nil
	case strings.HasSuffix(filename, ".xz"):
		xr, err := xz.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		return readCloser{Reader: xr, closer: file}, nil
	default:
		return file, nil
	}
}

// readCloser pairs a decompressing io.Reader with the underlying file it
// must close.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r readCloser) Close() error {
	return r.closer.Close()
}

// LoadDIMACS parses the DIMACS CNF file at filename, transparently
// decompressing .gz or .xz content based on the file extension, and
// declares its variables and clauses into solver.
func LoadDIMACS(filename string, solver SATSolver) error {
	r, err := openDecompressed(filename)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder adapts SATSolver to the external dimacs.Builder interface.
type builder struct {
	solver SATSolver
	atoms  []sat.Atom
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.atoms = make([]sat.Atom, nVars)
	for i := range b.atoms {
		b.atoms[i] = b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(b.atoms[-l-1])
		} else {
			clause[i] = sat.PositiveLiteral(b.atoms[l-1])
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
