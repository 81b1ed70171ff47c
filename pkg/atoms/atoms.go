// Package atoms reads labelled coordinates, one atom per line,
//   symbol x y z [anything else]
// Lines with fewer than four fields are skipped. A coordinate that is not
// a finite number stops the whole read. We return an error with the line number
// and nothing else, so nobody gets a picture with half the molecule.
package atoms

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/andrew-torda/atomview/pkg/zwrap"
	"gonum.org/v1/gonum/spatial/r3"
)

const nField = 4 // symbol, x, y, z

// Atom is one record from the file. Symbol is the element name as
// written, so "Cl" and "cl" are different.
type Atom struct {
	Symbol string
	Pos    r3.Vec
}

// Stats counts what happened while reading.
type Stats struct {
	NLine  int // lines seen
	NAtom  int // records kept
	NShort int // lines with fewer than four fields
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines, %d atoms, %d short lines skipped", s.NLine, s.NAtom, s.NShort)
}

// Loader wraps a scanner and remembers the statistics.
type Loader struct {
	scnr  *bufio.Scanner
	Stats Stats
}

// NewLoader gives us a Loader reading from r.
func NewLoader(r io.Reader) *Loader {
	return &Loader{scnr: bufio.NewScanner(r)}
}

// parseLine works on the bytes in the scanner's buffer. ok is false if
// the line is too short to be an atom.
func parseLine(line []byte) (a Atom, ok bool, err error) {
	f := bytes.Fields(line)
	if len(f) < nField {
		return a, false, nil
	}
	var xyz [3]float64
	for i := range xyz {
		if xyz[i], err = strconv.ParseFloat(string(f[i+1]), 64); err != nil {
			return a, false, fmt.Errorf("coordinate %d: %q is not a number", i+1, f[i+1])
		}
		if math.IsNaN(xyz[i]) || math.IsInf(xyz[i], 0) {
			return a, false, fmt.Errorf("coordinate %d: %q is not finite", i+1, f[i+1])
		}
	}
	a.Symbol = string(f[0])
	a.Pos = r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return a, true, nil
}

// Load reads to the end of input and returns atoms in file order.
func (l *Loader) Load() ([]Atom, error) {
	var ret []Atom
	for l.scnr.Scan() {
		l.Stats.NLine++
		a, ok, err := parseLine(l.scnr.Bytes())
		if err != nil {
			return nil, newReadError(l.Stats.NLine, l.scnr.Text(), err.Error())
		}
		if !ok {
			l.Stats.NShort++
			continue
		}
		ret = append(ret, a)
		l.Stats.NAtom++
	}
	if err := l.scnr.Err(); err != nil {
		rerr := newReadError(l.Stats.NLine+1, "", err.Error())
		rerr.Err = err
		return nil, rerr
	}
	return ret, nil
}

// Load is the simple interface when you do not care about statistics.
func Load(r io.Reader) ([]Atom, error) {
	return NewLoader(r).Load()
}

// ReadFile opens fname, which may be gzipped, and reads it.
// The file is closed on every path out of here.
func ReadFile(fname string) ([]Atom, Stats, error) {
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening coordinates: %w", err)
	}
	defer rdr.Close()
	l := NewLoader(rdr)
	atoms, err := l.Load()
	if err != nil {
		return nil, l.Stats, fmt.Errorf("%s: %w", fname, err)
	}
	return atoms, l.Stats, nil
}

// Format writes atoms in the form we read them. Numbers use the shortest
// representation which parses back to the same float64.
func Format(w io.Writer, atoms []Atom) error {
	bw := bufio.NewWriter(w)
	for _, a := range atoms {
		bw.WriteString(a.Symbol)
		for _, x := range [3]float64{a.Pos.X, a.Pos.Y, a.Pos.Z} {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
