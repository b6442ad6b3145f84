package content

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watch reloads the content file at path after it changes and passes the
// result to onChange. Bursts of writes within debounce produce one reload.
// It blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(*Portfolio, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating content watcher")
	}
	defer w.Close()

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself; watch the directory instead.
	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange(Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, errors.Wrap(err, "watching content"))
		}
	}
}
