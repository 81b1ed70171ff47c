package attrib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/colornames"
)

const cmmtChar = '#'

// cmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character, remove leading and trailing white space and
// jump over lines which are then empty. It counts lines for error messages.
type cmmtScanner struct {
	*bufio.Scanner
	n int
}

// cBytes returns the next line with something on it, or nil at the end.
// Like the scanner's Bytes(), the slice is only good until the next call.
func (s *cmmtScanner) cBytes() []byte {
	for s.Scan() {
		s.n++
		b := s.Bytes()
		if i := bytes.IndexByte(b, cmmtChar); i >= 0 {
			b = b[:i]
		}
		if b = bytes.TrimSpace(b); len(b) > 0 {
			return b
		}
	}
	return nil
}

// ReadTable reads extra or replacement entries. Each line is
//   symbol colour size
// and a size of "-" keeps the size we already have. Sizes must be
// finite, positive and at most MaxSize. Colours must be SVG colour names.
func ReadTable(r io.Reader) (*Table, error) {
	colors := make(map[string]string)
	sizes := make(map[string]float64)
	s := cmmtScanner{Scanner: bufio.NewScanner(r)}
	for b := s.cBytes(); b != nil; b = s.cBytes() {
		f := bytes.Fields(b)
		if len(f) != 3 {
			return nil, fmt.Errorf("table line %d: want symbol colour size, got %q", s.n, b)
		}
		sym, cname := string(f[0]), string(f[1])
		if _, ok := colornames.Map[cname]; !ok {
			return nil, fmt.Errorf("table line %d: unknown colour %q", s.n, cname)
		}
		colors[sym] = cname
		if string(f[2]) == "-" {
			continue
		}
		sz, err := strconv.ParseFloat(string(f[2]), 64)
		if err != nil || !(sz > 0 && sz <= MaxSize) {
			return nil, fmt.Errorf("table line %d: bad size %q", s.n, f[2])
		}
		sizes[sym] = sz
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return newTable(colors, sizes), nil
}

// ReadTableFile is ReadTable on a named file.
func ReadTableFile(fname string) (*Table, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	t, err := ReadTable(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return t, nil
}
