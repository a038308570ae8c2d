package file

import (
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/lumar-safety/orient/internal/logger"
)

// PromptWatcher invalidates the prompt cache when prompt files change on
// disk, so long-running modes (serve, chat) pick up edits without a restart.
type PromptWatcher struct {
	store   *PromptStore
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchPrompts starts watching the store's prompt directory. The directory
// must exist; call store.Load once before watching to trigger creation.
func WatchPrompts(store *PromptStore) (*PromptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(store.Dir()); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &PromptWatcher{
		store:   store,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run drains watcher events until Close.
func (w *PromptWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("prompt watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// handleEvent reloads the cache on content changes to .txt prompt files.
// Chmod-only events are ignored.
func (w *PromptWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !strings.HasSuffix(event.Name, ".txt") {
		return
	}
	logger.Debug("prompt file changed, reloading: %s", event.Name)
	w.store.Reload()
}

// Close stops watching.
func (w *PromptWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
