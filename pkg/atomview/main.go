// 12 Jun 2025
package atomview

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/andrew-torda/atomview/pkg/atoms"
	"github.com/andrew-torda/atomview/pkg/attrib"
	"github.com/andrew-torda/atomview/pkg/common"
	"github.com/andrew-torda/atomview/pkg/render"
	"github.com/andrew-torda/atomview/pkg/watch"
)

const (
	DfltWidth  = 1000
	DfltHeight = 800
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	OutPNG string // write a picture here instead of opening a window
	Table  string // extra colours and sizes
	Watch  bool   // reload when the input changes
	Width  int
	Height int
	Title  string
	Log    string // "", "stdout", "stderr" or a file name
}

// Display shows a scene and returns when the person looking at it is
// finished. w is nil unless we are watching the input.
type Display func(s *render.Scene, w *watch.Watcher, outlog *log.Logger) error

func loadAtoms(fname string) ([]atoms.Atom, error) {
	a, _, err := atoms.ReadFile(fname)
	return a, err
}

// Mymain reads infile and either writes a picture or hands the scene to
// show. An empty infile means the usual file name.
func Mymain(flags *CmdFlag, infile string, show Display) error {
	if infile == "" {
		infile = common.DfltInput
	}
	if flags.Width == 0 {
		flags.Width = DfltWidth
	}
	if flags.Height == 0 {
		flags.Height = DfltHeight
	}
	if flags.Width < 0 || flags.Height < 0 {
		return fmt.Errorf("silly picture size %d x %d", flags.Width, flags.Height)
	}
	outlog, logcloser, err := common.LogWhere(flags.Log)
	if err != nil {
		return fmt.Errorf("creating log: %w", err)
	}
	defer logcloser.Close()

	tbl := attrib.Default()
	if flags.Table != "" {
		if tbl, err = attrib.ReadTableFile(flags.Table); err != nil {
			return err
		}
		outlog.Println("colours and sizes from", flags.Table)
	}

	atms, stats, err := atoms.ReadFile(infile)
	if err != nil {
		return err
	}
	outlog.Println(infile, stats)

	plot := render.Plot{Atoms: atms, Table: tbl, Title: flags.Title}
	if flags.OutPNG != "" {
		if err := plot.SavePNG(flags.OutPNG, flags.Width, flags.Height, render.DefaultCamera()); err != nil {
			return fmt.Errorf("writing picture: %w", err)
		}
		return nil
	}
	if show == nil {
		return errors.New("no output file and no way to display")
	}

	var w *watch.Watcher
	if flags.Watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if w, err = watch.Watch(ctx, infile, loadAtoms, watch.DfltQuiet); err != nil {
			return fmt.Errorf("watching %s: %w", infile, err)
		}
	}
	return show(render.NewScene(plot, flags.Width, flags.Height), w, outlog)
}
