package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reports the ID of every adventure file written, created or removed in BasePath.
// The returned channel is closed when ctx is canceled.
func (s *Store) Watch(ctx context.Context) (<-chan string, error) {
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure adventure directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("adventure watcher: %w", err)
	}
	if err := w.Add(s.BasePath); err != nil {
		w.Close()
		return nil, fmt.Errorf("adventure watcher add %s: %w", s.BasePath, err)
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				name := filepath.Base(ev.Name)
				if filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
					continue
				}
				select {
				case out <- strings.TrimSuffix(name, ext):
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("adventure watcher error", "err", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
