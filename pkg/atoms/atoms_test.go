package atoms_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/andrew-torda/atomview/pkg/atoms"
	"github.com/andrew-torda/atomview/pkg/brokenio"
	"github.com/andrew-torda/atomview/pkg/common"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

const water = `H 0.0 0.0 0.0
O 1.0 0.0 0.0
H -1.0 0.0 0.0
`

func TestLoadOrder(t *testing.T) {
	got, err := Load(strings.NewReader(water))
	if err != nil {
		t.Fatal(err)
	}
	want := []Atom{
		{"H", r3.Vec{X: 0, Y: 0, Z: 0}},
		{"O", r3.Vec{X: 1, Y: 0, Z: 0}},
		{"H", r3.Vec{X: -1, Y: 0, Z: 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

var shorttests = []struct {
	name string
	in   string
}{
	{"empty", ""},
	{"blank lines", "\n\n   \n"},
	{"one field", "H\n"},
	{"three fields", "H 1.0 2.0\n"},
	{"three numbers", "1 2 3\n"},
	{"tabs", "C\t1\t2\n"},
}

func TestShortLines(t *testing.T) {
	for _, tt := range shorttests {
		l := NewLoader(strings.NewReader(tt.in))
		got, err := l.Load()
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: got %d atoms wanted none", tt.name, len(got))
		}
		if l.Stats.NAtom != 0 || l.Stats.NShort != l.Stats.NLine {
			t.Errorf("%s: stats %v", tt.name, l.Stats)
		}
	}
}

func TestExtraFields(t *testing.T) {
	in := "O 0.000 -0.064 0.000 3.440\nCl 1 2 3 junk more junk\n"
	got, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Atom{
		{"O", r3.Vec{X: 0, Y: -0.064, Z: 0}},
		{"Cl", r3.Vec{X: 1, Y: 2, Z: 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMixed(t *testing.T) {
	in := "comment line\nH 1 2 3\n\nN 4 5\nS 6 7 8\n"
	l := NewLoader(strings.NewReader(in))
	got, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Symbol != "H" || got[1].Symbol != "S" {
		t.Errorf("got %v", got)
	}
	want := Stats{NLine: 5, NAtom: 2, NShort: 3}
	if l.Stats != want {
		t.Errorf("got stats %v wanted %v", l.Stats, want)
	}
}

var badtests = []struct {
	in    string
	nLine int
}{
	{"H a 0.0 0.0\n", 1},
	{"H 0 0 0\nO 1.0 zz 0.0\n", 2},
	{"H 0 0 0\n\nshort\nC 1 2 3,\n", 4},
	{"H nan 0 0\n", 1},
	{"H 0 NaN 0\n", 1},
	{"H 0 inf 0\n", 1},
	{"O 0 0 +Inf\n", 1},
	{"H 0 0 0\nC -Infinity 1 2\n", 2},
	{"H 1e400 0 0\n", 1},
}

func TestBadNumber(t *testing.T) {
	for _, tt := range badtests {
		got, err := Load(strings.NewReader(tt.in))
		if err == nil {
			t.Fatalf("%q: expected an error", tt.in)
		}
		if got != nil {
			t.Errorf("%q: got partial result %v", tt.in, got)
		}
		var rerr *ReadError
		if !errors.As(err, &rerr) {
			t.Fatalf("%q: error %v is not a ReadError", tt.in, err)
		}
		if rerr.N != tt.nLine {
			t.Errorf("%q: error on line %d wanted %d", tt.in, rerr.N, tt.nLine)
		}
	}
}

func TestLongLineInError(t *testing.T) {
	in := "X y 0 0 " + strings.Repeat("pad ", 40) + "\n"
	_, err := Load(strings.NewReader(in))
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatal("expected ReadError, got", err)
	}
	if len(rerr.Inline) > 70 {
		t.Errorf("saved line is %d long", len(rerr.Inline))
	}
}

// Cutting a long line must not leave half a character behind.
func TestLongLineRunes(t *testing.T) {
	for _, pad := range []string{"ü", "日", "😀", "aü"} {
		in := "X y 0 0 " + strings.Repeat(pad, 40) + "\n"
		_, err := Load(strings.NewReader(in))
		var rerr *ReadError
		if !errors.As(err, &rerr) {
			t.Fatal("expected ReadError, got", err)
		}
		if len(rerr.Inline) > 70 || len(rerr.Inline) < 70-utf8.UTFMax {
			t.Errorf("pad %q: saved line is %d long", pad, len(rerr.Inline))
		}
		if !utf8.ValidString(rerr.Inline) || !utf8.ValidString(rerr.Error()) {
			t.Errorf("pad %q: broken utf-8 in %q", pad, rerr.Inline)
		}
		if !strings.HasPrefix(in, rerr.Inline) {
			t.Errorf("pad %q: %q is not the start of the line", pad, rerr.Inline)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	atoms := []Atom{
		{"H", r3.Vec{X: 0.1, Y: -0.2, Z: 1e-7}},
		{"Cl", r3.Vec{X: 123456.789, Y: 1.0 / 3.0, Z: -0}},
		{"Xx", r3.Vec{X: 2.5e10, Y: -7, Z: 0.816}},
	}
	var buf bytes.Buffer
	if err := Format(&buf, atoms); err != nil {
		t.Fatal(err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(atoms, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	fname, err := common.WrtTemp(water)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	got, stats, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || stats.NAtom != 3 {
		t.Errorf("got %d atoms, stats %v", len(got), stats)
	}
}

func TestReadFileGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(water))
	zw.Close()
	fname := filepath.Join(t.TempDir(), "points.txt.gz")
	if err := os.WriteFile(fname, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	got, _, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Load(strings.NewReader(water))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("gzip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "points_with_symbols.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("wanted ErrNotExist, got %v", err)
	}
}

func TestReadFileBad(t *testing.T) {
	fname, err := common.WrtTemp("H 0 0 0\nO x 0 0\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	got, stats, err := ReadFile(fname)
	if err == nil || got != nil {
		t.Fatalf("got %v, err %v", got, err)
	}
	if stats.NLine != 2 {
		t.Errorf("stopped after %d lines", stats.NLine)
	}
	if !strings.Contains(err.Error(), fname) {
		t.Errorf("error %q does not name the file", err)
	}
}

// Reading errors and damaged input must give an error and no atoms.
func TestBrokenReader(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("Cl 1.25 -2.5 3.75 3.16\n")
	}
	in := buf.String()

	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	rdr.SetFailAfter(len(in) / 2)
	got, err := Load(rdr)
	if !errors.Is(err, brokenio.ErrBroken) || got != nil {
		t.Errorf("fail half way: got %d atoms, err %v", len(got), err)
	}
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Errorf("want a ReadError, got %T", err)
	}

	rdr = brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	rdr.SetProbTrash(1)
	if got, err := Load(rdr); err == nil || got != nil {
		t.Errorf("trashed input: got %d atoms, err %v", len(got), err)
	}

	rdr = brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	rdr.SetProbZeroFile(1)
	if got, err := Load(rdr); err != nil || len(got) != 0 {
		t.Errorf("empty file: got %d atoms, err %v", len(got), err)
	}
}
