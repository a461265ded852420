// Package dimacs provides a hand-rolled DIMACS CNF reader and writer,
// exercised by its own tests (including a write-then-read round trip); no
// other package in the module imports it. Grounded on the teacher's
// internal/dimacs/dimacs.go (header parsing, c-comment skipping, gzip
// passthrough).
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vespidsat/vespid/internal/sat"
)

// Builder receives the declarations parsed from a DIMACS CNF stream. It is
// implemented by *sat.Solver, and by lightweight test doubles that record
// the instance instead of solving it.
type Builder interface {
	AddVariable() sat.Atom
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// Load parses the DIMACS CNF file at filename (optionally gzip-compressed)
// and declares its variables and clauses into b.
func Load(filename string, gzipped bool, b Builder) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	return Read(r, b)
}

// Read parses a DIMACS CNF stream and declares its variables and clauses
// into b.
func Read(r io.Reader, b Builder) error {
	scanner := bufio.NewScanner(r)

	nVars := 0
	nClauses := 0

	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("header line not found")
		}
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 || parts[0] != "p" || parts[1] != "cnf" {
			return fmt.Errorf("malformed or unsupported header: %q", line)
		}
		var err error
		nVars, err = strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("could not parse header: %w", err)
		}
		nClauses, err = strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("could not parse header: %w", err)
		}
		break
	}

	atoms := make([]sat.Atom, nVars)
	for i := range atoms {
		atoms[i] = b.AddVariable()
	}

	litBuffer := make([]sat.Literal, 0, 32)
	for nClauses > 0 && scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}

		litBuffer = litBuffer[:0]
		parts := strings.Fields(line)
		for _, p := range parts {
			l, err := strconv.Atoi(p)
			if err != nil {
				return err
			}
			switch {
			case l < 0:
				litBuffer = append(litBuffer, sat.NegativeLiteral(atoms[-l-1]))
			case l > 0:
				litBuffer = append(litBuffer, sat.PositiveLiteral(atoms[l-1]))
			default:
				// drop the trailing 0 terminator
			}
		}

		if err := b.AddClause(litBuffer); err != nil {
			return err
		}
		nClauses--
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// Write emits a DIMACS CNF representation of clauses over nVars variables.
// Used by the round-trip test.
func Write(w io.Writer, nVars int, clauses [][]sat.Literal) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", nVars, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		for _, lit := range c {
			n := int(lit.Atom()) + 1
			if !lit.IsPositive() {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
