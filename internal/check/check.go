// Package check verifies generated output without executing it: modules must
// transpile, relative imports must resolve and the stylesheet must parse.
package check

import (
	"errors"
	"io"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/js"

	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

// Imports are kept verbatim so unused ones survive the TypeScript transform.
const tsconfig = `{"compilerOptions":{"verbatimModuleSyntax":true}}`

func loaderFor(name string) api.Loader {
	switch path.Ext(name) {
	case ".tsx":
		return api.LoaderTSX
	case ".ts":
		return api.LoaderTS
	case ".js":
		return api.LoaderJS
	}
	return api.LoaderJSX
}

// Module transpiles src with esbuild and returns the plain ES module. The
// loader follows the extension of name; anything unknown is treated as JSX.
func Module(name string, src []byte) (string, error) {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:      loaderFor(name),
		Sourcefile:  name,
		Format:      api.FormatESModule,
		Target:      api.ESNext,
		TsconfigRaw: tsconfig,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		messages := make([]nwlerrors.SourceLocation, 0, len(result.Errors))
		for _, msg := range result.Errors {
			messages = append(messages, location(name, msg))
		}
		return "", nwlerrors.NewCheckError(name, messages...)
	}
	return string(result.Code), nil
}

func location(name string, msg api.Message) nwlerrors.SourceLocation {
	loc := nwlerrors.SourceLocation{File: name, Text: msg.Text}
	if msg.Location != nil {
		if msg.Location.File != "" {
			loc.File = msg.Location.File
		}
		loc.Line = msg.Location.Line
		loc.Column = msg.Location.Column
	}
	return loc
}

// Imports lists the module specifiers of the import and re-export statements
// of an ES module, in source order. code must already be transpiled.
func Imports(code string) ([]string, error) {
	ast, err := js.Parse(parse.NewInputString(code), js.Options{})
	if err != nil {
		return nil, err
	}

	var modules []string
	for _, stmt := range ast.BlockStmt.List {
		switch s := stmt.(type) {
		case *js.ImportStmt:
			if s.Module != nil {
				modules = append(modules, unquote(s.Module))
			}
		case *js.ExportStmt:
			if s.Module != nil {
				modules = append(modules, unquote(s.Module))
			}
		}
	}
	return modules, nil
}

func unquote(b []byte) string {
	return strings.Trim(string(b), "\"'`")
}

// Stylesheet reports the first syntax error of a CSS file.
func Stylesheet(name string, src []byte) error {
	p := css.NewParser(parse.NewInputBytes(src), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		err := p.Err()
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		return nwlerrors.NewCheckError(name, parseLocation(name, err))
	}
}

func parseLocation(name string, err error) nwlerrors.SourceLocation {
	loc := nwlerrors.SourceLocation{File: name, Text: err.Error()}
	var perr *parse.Error
	if errors.As(err, &perr) {
		loc.Line = perr.Line
		loc.Column = perr.Column
		loc.Text = perr.Message
	}
	return loc
}

// IsRelative reports whether module names a file rather than a package.
func IsRelative(module string) bool {
	return strings.HasPrefix(module, "./") || strings.HasPrefix(module, "../")
}
