package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"ry/internal/trace"
)

// Watch calls run once and then again after every change to a .ry file
// under paths, until ctx is cancelled. Bursts of events within debounce
// collapse into one run. Errors from run are passed to onErr and do not
// stop watching.
func Watch(ctx context.Context, paths []string, debounce time.Duration, run func(context.Context) error, onErr func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	scope := watchScope{files: make(map[string]struct{})}
	for _, p := range paths {
		isDir, err := addWatchTree(w, p)
		if err != nil {
			return err
		}
		scope.add(p, isDir)
	}

	report := func(err error) {
		if err != nil && onErr != nil {
			onErr(err)
		}
	}
	report(run(ctx))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				// новые поддиректории тоже отслеживаются
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_, err := addWatchTree(w, ev.Name)
					report(err)
					continue
				}
			}
			if !relevantChange(ev) || !scope.covers(ev.Name) {
				continue
			}
			trace.Point(ctx, trace.ScopeDriver, "watch_change", ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			report(run(ctx))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			report(err)
		}
	}
}

func relevantChange(ev fsnotify.Event) bool {
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// watchScope: у файла из командной строки смотрится только он сам, хотя
// watcher слушает всю его директорию. В директориях годится любой *.ry.
type watchScope struct {
	files map[string]struct{}
	dirs  []string
}

func (s *watchScope) add(p string, isDir bool) {
	abs := absClean(p)
	if isDir {
		s.dirs = append(s.dirs, abs)
		return
	}
	s.files[abs] = struct{}{}
}

func (s *watchScope) covers(name string) bool {
	abs := absClean(name)
	if _, ok := s.files[abs]; ok {
		return true
	}
	if filepath.Ext(abs) != SourceExt {
		return false
	}
	for _, dir := range s.dirs {
		rel, err := filepath.Rel(dir, abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func absClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// addWatchTree adds p, or every directory below p. fsnotify is not recursive.
func addWatchTree(w *fsnotify.Watcher, p string) (isDir bool, err error) {
	info, err := os.Stat(p)
	if err != nil {
		return false, fmt.Errorf("watch: %w", err)
	}
	if !info.IsDir() {
		// редакторы часто заменяют файл целиком, поэтому смотрим на директорию
		return false, w.Add(filepath.Dir(p))
	}
	return true, filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
