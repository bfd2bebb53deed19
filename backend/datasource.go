package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gioui.org/x/explorer"
	"github.com/fsnotify/fsnotify"
)

// Snapshot is the state of a followed CSV file after a batch of rows.
// Its table is never modified after being sent.
type Snapshot struct {
	Path  string
	Table Table
	Err   error
	// Done is set on the last snapshot of a file that will not be read
	// any further.
	Done bool
}

type RWBox[T any] struct {
	t    T
	lock sync.RWMutex
}

func (r *RWBox[T]) Read(f func(*T)) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f(&r.t)
}

func (r *RWBox[T]) Write(f func(*T)) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f(&r.t)
}

// Follow reads the CSV file at path and keeps reading rows appended to it
// until ctx is cancelled. A snapshot is emitted for the initial content and
// after each batch of new rows.
func Follow(ctx context.Context, path string) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		emit := func(s Snapshot) bool {
			s.Path = path
			select {
			case out <- s:
				return true
			case <-ctx.Done():
				return false
			}
		}
		file, err := os.Open(path)
		if err != nil {
			emit(Snapshot{Err: err, Done: true})
			return
		}
		defer file.Close()
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			emit(Snapshot{Err: fmt.Errorf("failed creating file watcher: %w", err), Done: true})
			return
		}
		defer watcher.Close()
		if err := watcher.Add(path); err != nil {
			emit(Snapshot{Err: fmt.Errorf("failed watching %s: %w", path, err), Done: true})
			return
		}
		tr := newTableReader(NewLineReader(file))
		for {
			err := tr.readAvailable()
			if err != nil && !errors.Is(err, io.EOF) {
				emit(Snapshot{Table: tr.table.Clone(), Err: err, Done: true})
				return
			}
			if tr.changed {
				tr.changed = false
				if !emit(Snapshot{Table: tr.table.Clone()}) {
					return
				}
			}
			if err := waitForWrite(ctx, watcher); err != nil {
				if !errors.Is(err, context.Canceled) {
					emit(Snapshot{Table: tr.table.Clone(), Err: err, Done: true})
				}
				return
			}
		}
	}()
	return out
}

// waitForWrite blocks until the watched file is written to.
func waitForWrite(ctx context.Context, watcher *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case ev, ok := <-watcher.Events:
			if !ok {
				return context.Canceled
			}
			if ev.Has(fsnotify.Write) {
				return nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				return fmt.Errorf("%s is no longer available", ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return context.Canceled
			}
			return fmt.Errorf("watching file: %w", err)
		}
	}
}

// Datasource tracks which file the application is showing.
type Datasource struct {
	state RWBox[sourceState]
}

type sourceState struct {
	path string
	// changed is closed and replaced whenever path changes.
	changed chan struct{}
}

func NewDatasource() *Datasource {
	d := &Datasource{}
	d.state.Write(func(s *sourceState) {
		s.changed = make(chan struct{})
	})
	return d
}

// Open switches the datasource to the file at path.
func (d *Datasource) Open(path string) {
	d.state.Write(func(s *sourceState) {
		s.path = path
		close(s.changed)
		s.changed = make(chan struct{})
	})
}

// Path returns the file currently shown, if any.
func (d *Datasource) Path() string {
	var path string
	d.state.Read(func(s *sourceState) {
		path = s.path
	})
	return path
}

// LoadFromFile asks the user for a CSV file and opens it. It blocks until
// the user has chosen.
func (d *Datasource) LoadFromFile(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile()
	if err != nil {
		return err
	}
	defer file.Close()
	named, ok := file.(interface{ Name() string })
	if !ok {
		return fmt.Errorf("chosen file has no path and cannot be followed")
	}
	d.Open(named.Name())
	return nil
}

// Stream emits the snapshots of the current file, starting over whenever
// another file is opened.
func (d *Datasource) Stream(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot)
	go func() {
		defer close(out)
		for {
			var (
				path    string
				changed chan struct{}
			)
			d.state.Read(func(s *sourceState) {
				path, changed = s.path, s.changed
			})
			followCtx, cancel := context.WithCancel(ctx)
			var in <-chan Snapshot
			if path != "" {
				in = Follow(followCtx, path)
			}
			if !d.forward(ctx, changed, in, out) {
				cancel()
				return
			}
			cancel()
		}
	}()
	return out
}

// forward copies snapshots from in to out until the source changes. It
// returns false once ctx is done.
func (d *Datasource) forward(ctx context.Context, changed <-chan struct{}, in <-chan Snapshot, out chan<- Snapshot) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case <-changed:
			return true
		case snap, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				return false
			case <-changed:
				return true
			}
		}
	}
}
