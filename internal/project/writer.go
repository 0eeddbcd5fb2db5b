package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/nwl/pkg/diff"
)

// Writer persists generated files. Paths are absolute or relative to the
// process working directory.
type Writer interface {
	WriteFile(path string, data []byte) error
}

// DiskWriter writes files, creating parent directories as needed.
type DiskWriter struct{}

// WriteFile implements Writer.
func (DiskWriter) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("project: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}
	return nil
}

// DryRunWriter records files instead of writing them.
type DryRunWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	order []string
}

// NewDryRunWriter constructs an empty DryRunWriter.
func NewDryRunWriter() *DryRunWriter {
	return &DryRunWriter{files: make(map[string][]byte)}
}

// WriteFile implements Writer.
func (w *DryRunWriter) WriteFile(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files == nil {
		w.files = make(map[string][]byte)
	}
	if _, ok := w.files[path]; !ok {
		w.order = append(w.order, path)
	}
	w.files[path] = append([]byte(nil), data...)
	return nil
}

// Files returns the recorded paths in write order.
func (w *DryRunWriter) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.order...)
}

// Content returns what would have been written to path.
func (w *DryRunWriter) Content(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[path]
	return data, ok
}

// Diff renders a unified diff of every recorded file against the current
// disk content, sorted by path. Unchanged files are omitted.
func (w *DryRunWriter) Diff() (string, error) {
	paths := w.Files()
	sort.Strings(paths)

	var out strings.Builder
	for _, p := range paths {
		next, _ := w.Content(p)

		current, err := os.ReadFile(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			out.WriteString(diff.NewFile(next, p))
		case err != nil:
			return "", fmt.Errorf("project: read %s: %w", p, err)
		case !bytes.Equal(current, next):
			out.WriteString(diff.Unified(current, next, p, p))
		}
	}
	return out.String(), nil
}
