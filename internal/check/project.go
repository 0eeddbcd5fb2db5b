package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/internal/style"
	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

// moduleExtensions are tried in order for extensionless imports.
var moduleExtensions = []string{".tsx", ".jsx", ".ts", ".js"}

// Report summarizes a successful check.
type Report struct {
	Modules     int
	Imports     int
	Stylesheets int
}

// Checker verifies the files of a build.
type Checker struct {
	log *logger.Logger
}

// New constructs a Checker.
func New(log *logger.Logger) *Checker {
	return &Checker{log: log}
}

// Result checks the files a build produced. Relative asset imports that are
// not build outputs are looked up in the project directory.
func (c *Checker) Result(result *project.Result) (*Report, error) {
	if result == nil {
		return &Report{}, nil
	}
	return c.Files(result.Dir, result.Files)
}

// Files checks an arbitrary set of outputs. Every module must transpile,
// every extensionless relative import must resolve to one of the outputs and
// every stylesheet must parse. All failures are returned joined.
func (c *Checker) Files(dir string, files []project.OutputFile) (*Report, error) {
	generated := make(map[string]struct{}, len(files))
	for _, f := range files {
		generated[f.Path] = struct{}{}
	}

	report := &Report{}
	var errs []error
	for _, f := range files {
		log := c.log.With("path", f.Path)

		if f.Kind == project.FileStylesheet {
			if err := Stylesheet(f.Path, f.Content); err != nil {
				errs = append(errs, err)
				continue
			}
			report.Stylesheets++
			log.Debug("stylesheet ok")
			continue
		}

		code, err := Module(f.Path, f.Content)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		report.Modules++

		modules, err := Imports(code)
		if err != nil {
			errs = append(errs, nwlerrors.NewCheckError(f.Path, parseLocation(f.Path, err)))
			continue
		}

		var unresolved []nwlerrors.SourceLocation
		for _, module := range modules {
			if !IsRelative(module) {
				continue
			}
			report.Imports++

			target := path.Join(path.Dir(f.Path), module)
			if path.Ext(module) == "" {
				if _, ok := resolveModule(target, generated); !ok {
					unresolved = append(unresolved, nwlerrors.SourceLocation{File: f.Path, Text: fmt.Sprintf("cannot resolve import %q", module)})
				}
				continue
			}
			if _, ok := generated[target]; ok {
				continue
			}
			if !exists(dir, target) {
				log.With("import", module).Warn("imported asset not found")
			}
		}
		if len(unresolved) > 0 {
			errs = append(errs, nwlerrors.NewCheckError(f.Path, unresolved...))
			continue
		}
		log.Debug("module ok")
	}

	if err := errors.Join(errs...); err != nil {
		return report, err
	}
	c.log.WithFields(map[string]any{
		"modules":     report.Modules,
		"imports":     report.Imports,
		"stylesheets": report.Stylesheets,
	}).Info("output verified")
	return report, nil
}

// Dir checks a previously built project on disk, starting from its router
// and following the relative module imports.
func (c *Checker) Dir(dir, configName string) (*Report, error) {
	if configName == "" {
		configName = document.ProjectFile
	}
	cfg, err := document.LoadProject(filepath.Join(dir, configName))
	if err != nil {
		return nil, err
	}

	routerPath := path.Join(filepath.ToSlash(cfg.SrcDir()), project.RouterFile)
	router, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(routerPath)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nwlerrors.NewNotFoundError("router", routerPath, err)
		}
		return nil, err
	}
	files := []project.OutputFile{{Kind: project.FileRouter, Path: routerPath, Content: router}}

	code, err := Module(routerPath, router)
	if err != nil {
		return nil, err
	}
	modules, err := Imports(code)
	if err != nil {
		return nil, nwlerrors.NewCheckError(routerPath, parseLocation(routerPath, err))
	}

	seen := map[string]struct{}{routerPath: {}}
	for _, module := range modules {
		if !IsRelative(module) || path.Ext(module) != "" {
			continue
		}
		target := path.Join(path.Dir(routerPath), module)
		for _, ext := range moduleExtensions {
			candidate := target + ext
			if _, ok := seen[candidate]; ok {
				break
			}
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(candidate)))
			if err != nil {
				continue
			}
			seen[candidate] = struct{}{}
			files = append(files, project.OutputFile{Kind: project.FileComponent, Path: candidate, Content: data})
			break
		}
	}

	cssPath := path.Join(filepath.ToSlash(cfg.ThemesDir()), style.OutputFile)
	if data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(cssPath))); err == nil {
		files = append(files, project.OutputFile{Kind: project.FileStylesheet, Path: cssPath, Content: data})
	}

	return c.Files(dir, files)
}

func resolveModule(target string, generated map[string]struct{}) (string, bool) {
	if _, ok := generated[target]; ok {
		return target, true
	}
	for _, ext := range moduleExtensions {
		if _, ok := generated[target+ext]; ok {
			return target + ext, true
		}
	}
	return "", false
}

func exists(dir, rel string) bool {
	if dir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	return err == nil
}
