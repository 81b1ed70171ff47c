// 12 Jun 2025

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/andrew-torda/atomview/pkg/atomview"
	. "github.com/andrew-torda/atomview/pkg/common"
	"github.com/andrew-torda/atomview/pkg/render"
	"github.com/andrew-torda/atomview/pkg/view"
	"github.com/andrew-torda/atomview/pkg/watch"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [coordinate file]")
	fmt.Fprintln(os.Stderr, "Without a file name, read", DfltInput)
	flag.PrintDefaults()
}

// show opens the window.
func show(s *render.Scene, w *watch.Watcher, outlog *log.Logger) error {
	cfg := view.Config{Scene: s, Log: outlog}
	if w != nil {
		cfg.Reload, cfg.Errs = w.Atoms(), w.Errs()
	}
	return view.Run(cfg)
}

func main() {
	var flags atomview.CmdFlag
	flag.StringVar(&flags.OutPNG, "o", "", "write a png to this file instead of opening a window")
	flag.StringVar(&flags.Table, "t", "", "file with extra or replacement colours and sizes")
	flag.BoolVar(&flags.Watch, "w", false, "redraw when the coordinate file changes")
	flag.IntVar(&flags.Width, "W", atomview.DfltWidth, "width in pixels")
	flag.IntVar(&flags.Height, "H", atomview.DfltHeight, "height in pixels")
	flag.StringVar(&flags.Title, "title", render.DfltTitle, "title on the plot")
	flag.StringVar(&flags.Log, "v", "", "where to log: stdout, stderr or a file name")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
		os.Exit(ExitUsageError)
	}

	if err := atomview.Mymain(&flags, flag.Arg(0), show); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
