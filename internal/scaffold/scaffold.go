// Package scaffold creates new NWL projects from the embedded starter
// template or from a git repository.
package scaffold

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

// Placeholder is replaced by the project name in every template file.
const Placeholder = "{PROJECT_NAME}"

// BlankTemplate names the embedded starter.
const BlankTemplate = "blank"

// ErrNotEmpty is returned when the target directory already has entries.
var ErrNotEmpty = errors.New("target directory is not empty")

//go:embed all:templates/blank
var embedded embed.FS

// CloneFunc clones a repository into dir.
type CloneFunc func(ctx context.Context, dir string, opts *git.CloneOptions) error

func plainClone(ctx context.Context, dir string, opts *git.CloneOptions) error {
	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	return err
}

// Options describes the project to create.
type Options struct {
	Name string
	// Location is the parent directory; the project lands in Location/Name.
	Location string
	// Template is BlankTemplate (or empty) or a git URL or path.
	Template string
	Branch   string
}

// Project is what Create produced.
type Project struct {
	Dir      string
	Template string
	Files    []string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger injects the logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Scaffolder) { s.log = log }
}

// WithCloner replaces the go-git clone.
func WithCloner(fn CloneFunc) Option {
	return func(s *Scaffolder) {
		if fn != nil {
			s.clone = fn
		}
	}
}

// Scaffolder creates projects.
type Scaffolder struct {
	log   *logger.Logger
	clone CloneFunc
}

// New constructs a Scaffolder.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{clone: plainClone}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create renders the template into Location/Name.
func (s *Scaffolder) Create(ctx context.Context, opts Options) (*Project, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}

	location := opts.Location
	if location == "" {
		location = "."
	}
	dir := filepath.Join(location, opts.Name)
	if err := ensureEmpty(dir); err != nil {
		return nil, err
	}

	template := strings.TrimSpace(opts.Template)
	if template == "" {
		template = BlankTemplate
	}
	log := s.log.WithFields(map[string]any{"project": opts.Name, "dir": dir, "template": template})

	var err error
	if template == BlankTemplate {
		err = s.renderEmbedded(dir)
	} else {
		err = s.cloneTemplate(ctx, dir, template, opts.Branch)
	}
	if err != nil {
		return nil, err
	}

	files, err := replacePlaceholder(dir, opts.Name)
	if err != nil {
		return nil, err
	}
	log.With("files", len(files)).Info("project created")
	return &Project{Dir: dir, Template: template, Files: files}, nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("project name is required")
	case name == "." || name == "..", strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid project name %q", name)
	}
	return nil
}

func ensureEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, dir)
	}
	return nil
}

func (s *Scaffolder) renderEmbedded(dir string) error {
	root, err := fs.Sub(embedded, "templates/"+BlankTemplate)
	if err != nil {
		return err
	}
	return fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

// cloneTemplate clones source and drops its history. Remote URLs are cloned
// shallow.
func (s *Scaffolder) cloneTemplate(ctx context.Context, dir, source, branch string) error {
	opts := &git.CloneOptions{URL: source}
	if IsRemote(source) {
		opts.Depth = 1
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
		opts.SingleBranch = true
	}

	s.log.WithFields(map[string]any{"url": source, "branch": branch}).Info("cloning template")
	if err := s.clone(ctx, dir, opts); err != nil {
		return fmt.Errorf("clone template %s: %w", source, err)
	}
	return os.RemoveAll(filepath.Join(dir, ".git"))
}

// IsRemote reports whether source is a URL rather than a local path.
func IsRemote(source string) bool {
	if strings.HasPrefix(source, "file://") {
		return false
	}
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}

// replacePlaceholder substitutes the project name in every text file under
// dir and returns the slash-separated paths of all files.
func replacePlaceholder(dir, name string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		if !isText(data) || !bytes.Contains(data, []byte(Placeholder)) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(p, bytes.ReplaceAll(data, []byte(Placeholder), []byte(name)), info.Mode().Perm())
	})
	return files, err
}

func isText(data []byte) bool {
	return !bytes.ContainsRune(data, 0) && utf8.Valid(data)
}
