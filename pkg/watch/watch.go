// Package watch reloads a coordinate file when it changes on disk.
// The directory is watched rather than the file, since programs writing
// the file often replace it (create a new one and rename) and a watch on
// the old inode would go quiet.
// A reload only happens once the file has been quiet for a short time,
// so a writer producing the file in pieces gives one reload, not dozens.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/andrew-torda/atomview/pkg/atoms"
	"github.com/fsnotify/fsnotify"
)

const DfltQuiet = 100 * time.Millisecond

// LoadFunc reads the file. atoms.ReadFile minus the statistics is the
// obvious one.
type LoadFunc func(fname string) ([]atoms.Atom, error)

// Watcher hands out freshly loaded atoms. Only the newest result waits
// in each channel; an older one nobody picked up is dropped.
type Watcher struct {
	fw    *fsnotify.Watcher
	fname string
	load  LoadFunc
	quiet time.Duration
	atoms chan []atoms.Atom
	errs  chan error
}

// Watch starts watching fname. It stops when ctx is cancelled.
func Watch(ctx context.Context, fname string, load LoadFunc, quiet time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(fname)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	if quiet <= 0 {
		quiet = DfltQuiet
	}
	w := &Watcher{
		fw:    fw,
		fname: abs,
		load:  load,
		quiet: quiet,
		atoms: make(chan []atoms.Atom, 1),
		errs:  make(chan error, 1),
	}
	go w.run(ctx)
	return w, nil
}

// Atoms delivers the result of each successful reload.
func (w *Watcher) Atoms() <-chan []atoms.Atom { return w.atoms }

// Errs delivers reload and watcher errors. They do not stop the watch.
func (w *Watcher) Errs() <-chan error { return w.errs }

// relevant says if an event should cause a reload.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.fname {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) run(ctx context.Context) {
	defer w.fw.Close()
	timer := time.NewTimer(w.quiet)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				timer.Reset(w.quiet)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			putNewest(w.errs, err)
		case <-timer.C:
			a, err := w.load(w.fname)
			if err != nil {
				putNewest(w.errs, err)
				continue
			}
			putNewest(w.atoms, a)
		}
	}
}

// putNewest puts v in a channel with room for one, throwing out
// whatever is sitting there.
func putNewest[T any](c chan T, v T) {
	for {
		select {
		case c <- v:
			return
		default:
		}
		select {
		case <-c:
		default:
		}
	}
}
