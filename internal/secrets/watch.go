package secrets

import (
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/funcbase/cli/internal/domain"
)

// WatchSettings arms a file-system watch on the settings file for the
// duration of a hosting session. When the file changes, the process
// terminates immediately: the host's effective configuration is stale and
// the restart IS the reload (no graceful drain, deliberately).
//
// The returned closer must be tied to the hosting action's lifetime.
// exit defaults to os.Exit in production; tests inject their own.
func WatchSettings(path string, logger domain.Logger, exit func(code int)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors typically replace the file rather
	// than write it in place, which would orphan a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				logger.Warn("settings file changed (%s), restarting required; exiting", ev.Op)
				exit(domain.ExitSuccess)
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("settings watch: %v", err)
			}
		}
	}()

	return watcher, nil
}
