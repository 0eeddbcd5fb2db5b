// Package project compiles an NWL project: one component module per route,
// the router entry module and the optional processed stylesheet.
package project

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/nwl/internal/codegen"
	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
	"github.com/alexisbeaulieu97/nwl/internal/style"
)

// FileKind classifies an output file.
type FileKind string

const (
	FileComponent  FileKind = "component"
	FileRouter     FileKind = "router"
	FileStylesheet FileKind = "stylesheet"
)

// OutputFile is one file produced by a build.
type OutputFile struct {
	Kind FileKind
	// Path is relative to the project directory, slash separated.
	Path    string
	Route   string
	Content []byte
}

// Result describes a build. On failure it holds what was written before the
// failing route.
type Result struct {
	Dir         string
	Config      *document.ProjectConfig
	Files       []OutputFile
	Routes      []RouteEntry
	Diagnostics []document.Diagnostic
}

// File returns the output file at the project-relative path.
func (r *Result) File(path string) (OutputFile, bool) {
	for _, f := range r.Files {
		if f.Path == path {
			return f, true
		}
	}
	return OutputFile{}, false
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger injects the build logger.
func WithLogger(log *logger.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// WithWriter replaces the DiskWriter.
func WithWriter(w Writer) Option {
	return func(b *Builder) {
		if w != nil {
			b.writer = w
		}
	}
}

// WithConcurrency bounds how many pages compile at once.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// WithStrictBindings fails the build on the first binding to undeclared state.
func WithStrictBindings(strict bool) Option {
	return func(b *Builder) {
		b.strict = strict
	}
}

// WithProgress registers a callback receiving build events. Calls are
// serialized.
func WithProgress(fn func(Event)) Option {
	return func(b *Builder) {
		b.progress = fn
	}
}

// WithConfigName overrides the project file name.
func WithConfigName(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.configName = name
		}
	}
}

// Builder compiles projects. A Builder may run several builds, one at a time
// or concurrently; each Build owns its own accumulators.
type Builder struct {
	log         *logger.Logger
	writer      Writer
	concurrency int
	strict      bool
	configName  string

	progressMu sync.Mutex
	progress   func(Event)
}

// New constructs a Builder writing to disk.
func New(opts ...Option) *Builder {
	b := &Builder{
		writer:     DiskWriter{},
		configName: document.ProjectFile,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

type compiledPage struct {
	page        *document.Page
	entry       RouteEntry
	source      string
	diagnostics []document.Diagnostic
	err         error
	elapsed     time.Duration
}

// Build compiles the project in dir. Pages compile concurrently, outputs are
// written in route order and the first failing route in that order aborts
// the build after the earlier routes are written.
func (b *Builder) Build(ctx context.Context, dir string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := document.LoadProject(filepath.Join(dir, b.configName))
	if err != nil {
		return nil, err
	}

	log := b.log.WithFields(map[string]any{"project": cfg.Name, "dir": dir})
	log.Info("building project")
	b.emit(Event{Type: EventBuildStarted, Total: len(cfg.Routes)})

	result := &Result{Dir: dir, Config: cfg}
	compiled, err := b.compileRoutes(ctx, dir, cfg)
	if err != nil {
		return result, err
	}

	srcDir := cfg.SrcDir()
	pages := make([]document.Page, 0, len(compiled))
	for _, c := range compiled {
		if c.err != nil {
			log.Error(c.err, "page failed")
			return result, c.err
		}

		rel := filepath.ToSlash(filepath.Join(srcDir, naming.FileStem(c.entry.Component)+".tsx"))
		if err := b.write(ctx, result, OutputFile{Kind: FileComponent, Path: rel, Route: c.entry.Path, Content: []byte(c.source)}); err != nil {
			return result, err
		}
		result.Routes = append(result.Routes, c.entry)
		result.Diagnostics = append(result.Diagnostics, c.diagnostics...)
		pages = append(pages, *c.page)
	}

	var stylesheetImport string
	if theme, override, ok := stylesheetSources(cfg, pages); ok {
		css, err := b.resolveStyles(dir, cfg, theme, override, pages)
		if err != nil {
			return result, err
		}
		rel := filepath.ToSlash(filepath.Join(cfg.ThemesDir(), style.OutputFile))
		if err := b.write(ctx, result, OutputFile{Kind: FileStylesheet, Path: rel, Content: []byte(css.String())}); err != nil {
			return result, err
		}
		stylesheetImport = relativeImport(srcDir, rel)
	}

	router := GenerateRouter(result.Routes, stylesheetImport)
	routerPath := filepath.ToSlash(filepath.Join(srcDir, RouterFile))
	if err := b.write(ctx, result, OutputFile{Kind: FileRouter, Path: routerPath, Content: []byte(router)}); err != nil {
		return result, err
	}

	b.emit(Event{Type: EventBuildCompleted, Total: len(result.Routes)})
	log.With("files", len(result.Files)).Info("build complete")
	return result, nil
}

func (b *Builder) compileRoutes(ctx context.Context, dir string, cfg *document.ProjectConfig) ([]compiledPage, error) {
	compiled := make([]compiledPage, len(cfg.Routes))

	limit := b.concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, route := range cfg.Routes {
		i, route := i, route
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			compiled[i] = b.compileRoute(dir, cfg.SrcDir(), route)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compiled, nil
}

// compileRoute parses and generates one route. Failures are recorded on the
// result so the caller reports them in route order.
func (b *Builder) compileRoute(dir, srcDir string, route document.RouteConfig) compiledPage {
	start := time.Now()
	b.emit(Event{Type: EventPageStarted, Route: route.Path, Page: route.Page})

	out := compiledPage{}
	fail := func(err error) compiledPage {
		out.err = err
		out.elapsed = time.Since(start)
		b.emit(Event{Type: EventPageFailed, Route: route.Path, Page: route.Page, Err: err, Duration: out.elapsed})
		return out
	}

	page, err := document.LoadPage(filepath.Join(dir, route.Page))
	if err != nil {
		return fail(err)
	}
	out.page = page

	gen := codegen.New(
		codegen.WithLogger(b.log),
		codegen.WithStrictBindings(b.strict),
		codegen.WithDiagnostics(func(d document.Diagnostic) {
			out.diagnostics = append(out.diagnostics, d)
		}),
	)
	source, err := gen.Page(page)
	if err != nil {
		return fail(err)
	}

	component := naming.ToPascalCase(page.Name)
	out.source = source
	out.entry = RouteEntry{
		Path:      route.Path,
		Component: component,
		Module:    relativeImport(srcDir, filepath.ToSlash(filepath.Join(srcDir, naming.FileStem(component)))),
	}
	out.elapsed = time.Since(start)

	b.log.WithFields(map[string]any{
		"route":     route.Path,
		"page":      route.Page,
		"component": component,
	}).Debug("compiled page")
	b.emit(Event{Type: EventPageCompiled, Route: route.Path, Page: route.Page, Component: component, Duration: out.elapsed})
	return out
}

// stylesheetSources picks the theme and override of the build. Project
// settings win; a page-level setting applies when the project names none.
func stylesheetSources(cfg *document.ProjectConfig, pages []document.Page) (string, string, bool) {
	theme, override := cfg.CSSTheme, cfg.CSSOverride
	for _, p := range pages {
		if theme == "" {
			theme = p.CSSTheme
		}
		if override == "" {
			override = p.CSSOverride
		}
	}
	return theme, override, theme != "" || override != ""
}

func (b *Builder) resolveStyles(dir string, cfg *document.ProjectConfig, theme, override string, pages []document.Page) (*style.ProcessedCSS, error) {
	resolver := &style.Resolver{
		FS:        os.DirFS(dir),
		ThemesDir: filepath.ToSlash(cfg.ThemesDir()),
		Logger:    b.log,
	}
	inline := style.CollectInline(&document.Document{Pages: pages})
	return resolver.Resolve(theme, override, inline)
}

func (b *Builder) write(ctx context.Context, result *Result, file OutputFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(result.Dir, filepath.FromSlash(file.Path))
	if err := b.writer.WriteFile(path, file.Content); err != nil {
		return err
	}
	result.Files = append(result.Files, file)

	b.log.With("path", path).Debug("wrote file")
	b.emit(Event{Type: EventFileWritten, Route: file.Route, Path: file.Path})
	return nil
}

func (b *Builder) emit(ev Event) {
	if b.progress == nil {
		return
	}
	b.progressMu.Lock()
	defer b.progressMu.Unlock()
	b.progress(ev)
}
