package source

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/snapcount/snapcount/internal/domain"
)

const dirBufferSize = 64

// Dir emits one event per screenshot file created in a watched directory.
type Dir struct {
	path       string
	extensions []string
	logger     *slog.Logger
}

// NewDir creates a directory source watching path for new files with one of
// the given extensions (lowercase, with leading dot). An empty extension list
// matches every file.
func NewDir(path string, extensions []string, logger *slog.Logger) *Dir {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dir{
		path:       path,
		extensions: extensions,
		logger:     logger,
	}
}

// Subscribe starts an fsnotify watcher on the directory and pumps matching
// create events into the returned channel. The channel closes when ctx is
// cancelled or the watcher fails.
func (d *Dir) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(d.path); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan domain.Event, dirBufferSize)

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				d.logger.Debug("directory source cancelled", "path", d.path)
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				d.logger.Error("watcher error", "error", err)
			case fe, ok := <-watcher.Events:
				if !ok {
					d.logger.Debug("watcher events channel closed")
					return
				}
				if !fe.Has(fsnotify.Create) {
					continue
				}
				if !d.matches(fe.Name) {
					d.logger.Debug("ignoring non-screenshot file", "file", fe.Name)
					continue
				}
				ev := domain.Event{
					Path:   fe.Name,
					Source: KindDir,
					At:     time.Now(),
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (d *Dir) matches(name string) bool {
	if len(d.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range d.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
