// Package watch regenerates documentation when source files change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nieomylnieja/docbuildr/internal/logging"
)

// DefaultDebounce is the quiet period after the last change before regenerating.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a set of files.
type Watcher struct {
	files    map[string]struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      zerolog.Logger
}

// New starts watching the directories of the given files.
// Directories are watched instead of the files themselves, so that editors
// replacing files on save are handled as well.
func New(files []string, debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	w := &Watcher{
		files:    make(map[string]struct{}, len(files)),
		watcher:  fsWatcher,
		debounce: debounce,
		log:      log,
	}
	dirs := make(map[string]struct{})
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", file)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err = fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}
	return w, nil
}

// Run calls onChange after every burst of changes to the watched files
// until ctx is done. Errors returned by onChange are logged and do not stop the watcher.
// Run closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.log.Error().Err(err).Msg("failed to close file watcher")
		}
	}()

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isRelevant(event) {
				continue
			}
			w.log.Debug().Str(logging.KeyFile, event.Name).Str("op", event.Op.String()).Msg("source file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			trigger = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("file watcher error")
		case <-trigger:
			trigger = nil
			timer = nil
			if err := onChange(ctx); err != nil {
				w.log.Error().Err(err).Msg("failed to regenerate documentation")
			}
		}
	}
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, watched := w.files[abs]
	return watched
}
