package project

import (
	"github.com/alexisbeaulieu97/nwl/internal/codegen"
	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
)

// CompiledPage is the module generated from one page of a standalone file.
type CompiledPage struct {
	Name      string
	Component string
	// File is the module file name, e.g. "home.tsx".
	File        string
	Source      string
	Diagnostics []document.Diagnostic
}

// Compile generates the modules of a standalone page file holding either a
// `page:` root or a `pages:` list. Nothing is written.
func (b *Builder) Compile(path string) ([]CompiledPage, error) {
	doc, err := document.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	out := make([]CompiledPage, 0, len(doc.Pages))
	for i := range doc.Pages {
		page := &doc.Pages[i]

		compiled := CompiledPage{Name: page.Name, Component: naming.ToPascalCase(page.Name)}
		compiled.File = naming.FileStem(compiled.Component) + ".tsx"

		gen := codegen.New(
			codegen.WithLogger(b.log),
			codegen.WithStrictBindings(b.strict),
			codegen.WithDiagnostics(func(d document.Diagnostic) {
				compiled.Diagnostics = append(compiled.Diagnostics, d)
			}),
		)
		source, err := gen.Page(page)
		if err != nil {
			return nil, err
		}
		compiled.Source = source
		out = append(out, compiled)
	}
	return out, nil
}
