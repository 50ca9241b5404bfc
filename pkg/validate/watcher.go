package validate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// Watcher revalidates namespace documents whenever they or their schema
// sources change on disk. Editors replace files rather than write in place,
// so the watch is on the containing directories with events filtered back
// to the tracked paths.
type Watcher struct {
	validator *Validator
	paths     []string
	tracked   map[string]bool
	debounce  time.Duration
	watcher   *fsnotify.Watcher
	cancel    context.CancelFunc
}

// NewWatcher starts watching the given namespace documents. onResult is
// invoked with the reports after the initial pass and after every reload.
func NewWatcher(validator *Validator, paths []string, debounce time.Duration, onResult func([]*Report)) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents to watch")
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		validator: validator,
		debounce:  debounce,
		watcher:   fsWatcher,
		tracked:   make(map[string]bool),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		w.paths = append(w.paths, abs)
		dirs[filepath.Dir(abs)] = true
	}
	for _, abs := range w.paths {
		w.track(abs)
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	onResult(w.run())
	go w.loop(ctx, onResult)

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// track registers a namespace document and its schema sources so edits to
// either trigger revalidation.
func (w *Watcher) track(namespacePath string) {
	w.tracked[namespacePath] = true
	file, err := loadSources(namespacePath)
	if err != nil {
		log.Warn().Err(err).Str("path", namespacePath).Msg("could not enumerate schema sources")
		return
	}
	for _, source := range file {
		w.tracked[filepath.Join(filepath.Dir(namespacePath), source)] = true
	}
}

func loadSources(namespacePath string) ([]string, error) {
	file, err := schema.LoadNamespaceFile(namespacePath)
	if err != nil {
		return nil, err
	}
	var sources []string
	for _, ns := range file.Namespaces {
		sources = append(sources, ns.Sources()...)
	}
	return sources, nil
}

func (w *Watcher) run() []*Report {
	return w.validator.Files(w.paths...)
}

func (w *Watcher) loop(ctx context.Context, onResult func([]*Report)) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.tracked[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Chmod) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(w.debounce, func() {
					log.Info().Str("path", event.Name).Msg("schema changed, revalidating")
					onResult(w.run())
				})
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
