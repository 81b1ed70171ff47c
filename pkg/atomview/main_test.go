package atomview_test

import (
	"errors"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/atomview/pkg/atomview"
	"github.com/andrew-torda/atomview/pkg/render"
	"github.com/andrew-torda/atomview/pkg/watch"
)

const water = "H 0 0 0\nO 1 0 0\nH -1 0 0\n"

func writeFile(t *testing.T, dir, name, s string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "w.txt", water)
	tbl := writeFile(t, dir, "tbl", "H pink 120\n")
	out := filepath.Join(dir, "w.png")
	flags := CmdFlag{OutPNG: out, Table: tbl, Width: 300, Height: 200}
	if err := Mymain(&flags, in, nil); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("picture is %v", b)
	}
}

func TestDisplay(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "w.txt", water)
	var called bool
	show := func(s *render.Scene, w *watch.Watcher, l *log.Logger) error {
		called = true
		if w == nil {
			t.Error("asked to watch but no watcher")
		}
		if wd, ht := s.Size(); wd != DfltWidth || ht != DfltHeight {
			t.Errorf("scene is %d x %d", wd, ht)
		}
		if s.Title() != render.DfltTitle {
			t.Errorf("title %q", s.Title())
		}
		return nil
	}
	if err := Mymain(&CmdFlag{Watch: true}, in, show); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("display was not called")
	}
}

// The log file is written while we run and let go of when we return.
func TestLogClosed(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "w.txt", water)
	logname := filepath.Join(dir, "log")
	var saved *log.Logger
	show := func(s *render.Scene, w *watch.Watcher, l *log.Logger) error {
		saved = l
		l.Println("showing")
		return nil
	}
	if err := Mymain(&CmdFlag{Log: logname}, in, show); err != nil {
		t.Fatal(err)
	}
	saved.Println("too late")
	b, err := os.ReadFile(logname)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, "w.txt") || !strings.Contains(s, "showing") {
		t.Errorf("log missing lines: %q", s)
	}
	if strings.Contains(s, "too late") {
		t.Errorf("log file still open after return: %q", s)
	}
}

func TestDefaultName(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	err = Mymain(&CmdFlag{OutPNG: "x.png"}, "", nil)
	if !errors.Is(err, fs.ErrNotExist) || !strings.Contains(err.Error(), "points_with_symbols.txt") {
		t.Errorf("got %v", err)
	}
	writeFile(t, dir, "points_with_symbols.txt", water)
	if err := Mymain(&CmdFlag{OutPNG: "x.png"}, "", nil); err != nil {
		t.Error(err)
	}
}

func TestFailures(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "H a 0.0 0.0\n")
	good := writeFile(t, dir, "good.txt", water)
	out := filepath.Join(dir, "x.png")
	never := func(*render.Scene, *watch.Watcher, *log.Logger) error {
		t.Error("display called after a failure")
		return nil
	}
	for _, tt := range []struct {
		flags CmdFlag
		in    string
		msg   string
	}{
		{CmdFlag{}, filepath.Join(dir, "missing.txt"), "missing.txt"},
		{CmdFlag{}, bad, "line 1"},
		{CmdFlag{Table: filepath.Join(dir, "notable")}, good, "notable"},
		{CmdFlag{Width: -3}, good, "size"},
		{CmdFlag{OutPNG: filepath.Join(dir, "nodir", "x.png")}, good, "writing picture"},
	} {
		err := Mymain(&tt.flags, tt.in, never)
		if err == nil || !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%v %s: error %v should mention %q", tt.flags, tt.in, err, tt.msg)
		}
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("a picture was written after a failure")
	}
	if err := Mymain(&CmdFlag{}, good, nil); err == nil {
		t.Error("no display and no png should fail")
	}
}
