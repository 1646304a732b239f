package filesystem

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the scan root for file changes so the candidate list can
// be refreshed while the picker is open.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	Events    chan string // Signal to rescan, carries the changed file path
	done      chan struct{}
	prune     map[string]bool
}

// NewWatcher creates a Watcher covering root and its subdirectories, skipping
// the same directories the scan prunes.
func NewWatcher(root string, excludeDirs []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		Events:    make(chan string, 10), // Buffered to prevent blocking
		done:      make(chan struct{}),
		prune:     pruneSet(excludeDirs),
	}

	// fsnotify is not recursive, so walk and add every directory explicitly.
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if w.prune[info.Name()] {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(path)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.startLoop()

	return w, nil
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() {
	close(w.done)
	w.fsWatcher.Close()
}

func (w *Watcher) startLoop() {
	var timer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if w.prune[filepath.Base(event.Name)] {
				continue
			}

			// CHMOD events are noisy and never change the candidate set.
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}

			// Newly created directories need to be added to the watcher.
			if event.Op&fsnotify.Create == fsnotify.Create {
				info, err := os.Stat(event.Name)
				if err == nil && info.IsDir() {
					w.fsWatcher.Add(event.Name)
				}
			}

			// Debounce bursts of events into a single rescan signal.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, func() {
				w.Events <- event.Name
			})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)
		}
	}
}
