package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/uml/lib/xmain"
)

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ms    *xmain.State
	c     *compiler
	paths []string

	compileCh chan struct{}
	fw        *fsnotify.Watcher

	errMu sync.Mutex
	err   error

	lastHash string
}

func newWatcher(ctx context.Context, ms *xmain.State, c *compiler) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		ms:    ms,
		c:     c,
		paths: []string{c.inputPath},

		compileCh: make(chan struct{}, 1),
	}
	if c.actionsPath != "" && c.actionsPath != "-" {
		w.paths = append(w.paths, c.actionsPath)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, err
	}
	w.fw = fw
	return w, nil
}

func (w *watcher) run() error {
	defer w.close()

	w.goFunc(w.watchLoop)
	w.goFunc(w.compileLoop)

	w.wg.Wait()
	w.close()
	if errors.Is(w.err, context.Canceled) {
		return nil
	}
	return w.err
}

func (w *watcher) close() {
	w.cancel()
	if w.fw != nil {
		err := w.fw.Close()
		w.fw = nil
		w.setErr(err)
	}
}

func (w *watcher) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		err := fn(w.ctx)
		w.setErr(err)
	}()
}

// watchLoop requests a layout on start and after every burst of changes to the watched
// files. Watches are re-added on every event since editors often replace files.
func (w *watcher) watchLoop(ctx context.Context) error {
	lastModified, err := w.ensureAddWatch(ctx)
	if err != nil {
		return err
	}
	w.ms.Log.Info.Printf("laying out %v...", w.c.inputPath)
	w.requestCompile()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	for {
		select {
		case <-pollTicker.C:
			// Events can be missed, for instance when a watched file is unwatchable for a moment.
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if !mt.Equal(lastModified) {
				lastModified = mt
				w.requestCompile()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod {
				if mt.Equal(lastModified) {
					// See https://github.com/fsnotify/fsnotify/issues/15
					continue
				}
				lastModified = mt
			}
			// Wait for 32ms of quiet so that one save made of several events is laid out once.
			eatBurstTimer.Reset(time.Millisecond * 32)
		case <-eatBurstTimer.C:
			w.ms.Log.Info.Printf("detected change in %v: laying out again...", w.c.inputPath)
			w.requestCompile()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestCompile() {
	select {
	case w.compileCh <- struct{}{}:
	default:
	}
}

func (w *watcher) ensureAddWatch(ctx context.Context) (time.Time, error) {
	interval := time.Second
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch()
		if err == nil {
			return mt, nil
		}
		w.ms.Log.Error.Printf("failed to watch %v: %v (retrying in %v)", w.paths, err, interval)

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

// addWatch watches every path and returns the latest modification time among them.
func (w *watcher) addWatch() (time.Time, error) {
	var latest time.Time
	for _, p := range w.paths {
		err := w.fw.Add(p)
		if err != nil {
			return time.Time{}, err
		}
		d, err := os.Stat(p)
		if err != nil {
			return time.Time{}, err
		}
		if d.ModTime().After(latest) {
			latest = d.ModTime()
		}
	}
	return latest, nil
}

func (w *watcher) compileLoop(ctx context.Context) error {
	first := true
	for {
		select {
		case <-w.compileCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		prefix := ""
		if !first {
			prefix = "re"
		}
		first = false

		hash, err := w.c.compile(ctx)
		if err != nil {
			err = fmt.Errorf("failed to %slayout: %w", prefix, err)
			w.ms.Log.Error.Print(err)
			continue
		}
		if hash == w.lastHash {
			w.ms.Log.Info.Printf("layout of %v unchanged", w.c.inputPath)
			continue
		}
		w.lastHash = hash
		w.ms.Log.Success.Printf("successfully %slaid out %v to %v", prefix, w.c.inputPath, w.c.outputPath)
	}
}
