package tween

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// presetDebounce is how long a preset file must stay quiet before it is
// reloaded. Editors often write a file in several steps.
const presetDebounce = 100 * time.Millisecond

// PresetWatcher reloads a preset file whenever it changes on disk. Parsed
// libraries arrive on Updates and load failures on Errors; the host swaps
// libraries in from its own update loop. Both channels are closed after
// Close.
type PresetWatcher struct {
	Updates <-chan *PresetLibrary
	Errors  <-chan error

	path    string
	watcher *fsnotify.Watcher
	updates chan *PresetLibrary
	errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchPresets starts watching path. The directory is watched rather than
// the file so that editors replacing the file by rename are picked up.
func WatchPresets(path string) (*PresetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("tween: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tween: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("tween: watch %s: %w", path, err)
	}

	pw := &PresetWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan *PresetLibrary, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	pw.Updates = pw.updates
	pw.Errors = pw.errors
	go pw.run()
	return pw, nil
}

// Close stops watching and waits for the watcher goroutine to exit.
func (pw *PresetWatcher) Close() error {
	var err error
	pw.once.Do(func() {
		close(pw.closeCh)
		err = pw.watcher.Close()
		<-pw.done
	})
	return err
}

func (pw *PresetWatcher) run() {
	defer func() {
		close(pw.updates)
		close(pw.errors)
		close(pw.done)
	}()

	timer := time.NewTimer(presetDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != pw.path {
				continue
			}
			timer.Reset(presetDebounce)
		case <-timer.C:
			lib, err := LoadPresets(pw.path)
			if err != nil {
				pw.sendError(err)
				continue
			}
			// Keep only the newest library if the host has not picked up
			// the previous one.
			select {
			case <-pw.updates:
			default:
			}
			select {
			case pw.updates <- lib:
			case <-pw.closeCh:
				return
			}
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.sendError(err)
		case <-pw.closeCh:
			return
		}
	}
}

func (pw *PresetWatcher) sendError(err error) {
	select {
	case pw.errors <- err:
	default:
		// Host is not draining errors; drop rather than stall reloads.
	}
}
