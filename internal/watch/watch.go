// Package watch reports changes to the sources of an NWL project.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/style"
)

var (
	DefaultInclude = []string{"**/*.yaml", "**/*.yml", "**/*.css"}
	DefaultIgnore  = []string{"**/node_modules/**", "**/.git/**"}
)

// Options configures a Watcher. Patterns are doublestar globs matched against
// slash-separated paths relative to the root.
type Options struct {
	Include  []string
	Ignore   []string
	Debounce time.Duration
	Logger   *logger.Logger
}

// ProjectOptions watches the project config, every routed page and the theme
// sources, and ignores what a build writes into the themes directory.
func ProjectOptions(cfg *document.ProjectConfig, configName string) Options {
	if configName == "" {
		configName = document.ProjectFile
	}

	include := append([]string(nil), DefaultInclude...)
	include = append(include, configName)
	if cfg != nil {
		for _, r := range cfg.Routes {
			include = append(include, path.Clean(filepath.ToSlash(r.Page)))
		}
	}

	ignore := append([]string(nil), DefaultIgnore...)
	ignore = append(ignore, path.Join(filepath.ToSlash(cfg.ThemesDir()), style.OutputFile))
	return Options{Include: include, Ignore: ignore}
}

// Watcher watches a directory tree.
type Watcher struct {
	root     string
	include  []string
	ignore   []string
	debounce time.Duration
	log      *logger.Logger

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	watched map[string]struct{}
}

// New starts watching root and every directory below it that is not ignored.
func New(root string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     abs,
		include:  opts.Include,
		ignore:   opts.Ignore,
		debounce: opts.Debounce,
		log:      opts.Logger,
		fsw:      fsw,
		watched:  make(map[string]struct{}),
	}
	if len(w.include) == 0 {
		w.include = DefaultInclude
	}
	if w.ignore == nil {
		w.ignore = DefaultIgnore
	}

	if err := w.addDir(abs); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers batches of relevant events to fn until ctx is done. fn calls
// never overlap.
func (w *Watcher) Run(ctx context.Context, fn func([]fsnotify.Event)) error {
	deb := NewDebouncer(w.debounce, fn)
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addDir(ev.Name); err != nil {
						w.log.Error(err, "watch directory")
					}
					continue
				}
			}
			if w.relevant(ev) {
				w.log.WithFields(map[string]any{"path": ev.Name, "op": ev.Op.String()}).Debug("change detected")
				deb.Add(ev)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watcher error")
		}
	}
}

// Matches reports whether a file path is included and not ignored.
func (w *Watcher) Matches(name string) bool {
	rel, ok := w.rel(name)
	if !ok {
		return false
	}
	if match(w.ignore, rel) {
		return false
	}
	return match(w.include, rel)
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if isNonEmptyChmodOnly(ev) {
		return false
	}
	return w.Matches(ev.Name)
}

func (w *Watcher) rel(name string) (string, bool) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(w.root, name)
	}
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// ignoredDir reports whether dir should not be descended into. A pattern
// ending in /** matches the entries of a directory, so those are checked with
// a child path.
func (w *Watcher) ignoredDir(dir string) bool {
	rel, ok := w.rel(dir)
	if !ok || rel == "." {
		return false
	}
	return match(w.ignore, rel) || match(w.ignore, rel+"/_")
}

func (w *Watcher) addDir(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignoredDir(p) {
			return filepath.SkipDir
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.watched[p]; ok {
			return nil
		}
		if err := w.fsw.Add(p); err != nil {
			return err
		}
		w.watched[p] = struct{}{}
		return nil
	})
}

// Dirs lists the watched directories.
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make([]string, 0, len(w.watched))
	for d := range w.watched {
		dirs = append(dirs, d)
	}
	return dirs
}

func match(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// isNonEmptyChmodOnly drops permission changes. Chmod on an empty file can
// be part of an editor's create sequence and is kept.
func isNonEmptyChmodOnly(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		return false
	}
	info, err := os.Stat(ev.Name)
	if err != nil {
		return false
	}
	return info.Size() > 0
}
