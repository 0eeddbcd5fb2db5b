package codegen

import (
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

// BaseUIComponents is the fixed set of component namespaces every module
// imports from @base-ui/react.
var BaseUIComponents = []string{
	"Button",
	"Checkbox",
	"Select",
	"Radio",
	"RadioGroup",
	"Switch",
	"Separator",
	"NumberField",
	"Dialog",
	"Menu",
	"Accordion",
	"Form",
	"Field",
	"Fieldset",
	"Tooltip",
	"Popover",
}

// Page renders the full component module of page.
func (g *Generator) Page(page *document.Page) (string, error) {
	if page == nil {
		return "", nwlerrors.NewCodegenError("", "page", nwlerrors.ErrUnsupportedElement)
	}

	hooks := Hooks(page)
	if err := g.checkBindings(page); err != nil {
		return "", err
	}

	component := naming.ToPascalCase(page.Name)
	r := &renderer{page: page.Name}

	e := NewEmitter(0)
	writeImports(e, len(hooks) > 0)
	e.Line("")

	e.Open("export default function " + component + "() {")
	if len(hooks) > 0 {
		decls := make([]string, len(hooks))
		for i, h := range hooks {
			decls[i] = h.declaration()
		}
		e.Line("const " + strings.Join(decls, ", ") + ";")
		e.Line("")
	}
	e.Open("return (")
	e.Open("<>")

	if page.Layout != nil {
		var wrapper attrs
		wrapper.class("", page.Style)
		wrapper.str("data-layout", LayoutClasses(page.Layout))
		e.Open("<div" + wrapper.String() + ">")
		if err := r.children(e, page.Children); err != nil {
			return "", err
		}
		e.Close("</div>")
	} else if err := r.children(e, page.Children); err != nil {
		return "", err
	}

	e.Close("</>")
	e.Close(");")
	e.Close("}")

	g.log.WithFields(map[string]any{
		"page":      page.Name,
		"component": component,
		"hooks":     len(hooks),
	}).Debug("generated page")

	return e.String(), nil
}

func writeImports(e *Emitter, useState bool) {
	if useState {
		e.Line("import React, { useState } from 'react';")
	} else {
		e.Line("import React from 'react';")
	}

	e.Line("import {")
	e.Indent()
	for _, name := range BaseUIComponents {
		e.Line(name + ",")
	}
	e.Dedent()
	e.Line("} from '@base-ui/react';")
}

// checkBindings reports unresolved bindings. Hooks synthesized by the
// generator count as declared.
func (g *Generator) checkBindings(page *document.Page) error {
	var implicit []string
	for _, h := range ImplicitHooks(page.Children) {
		implicit = append(implicit, h.Name)
	}

	for _, d := range document.CheckBindings(page, implicit...) {
		if g.onDiagnostic != nil {
			g.onDiagnostic(d)
		}
		g.log.WithFields(map[string]any{
			"page":    d.Page,
			"element": string(d.Element),
			"field":   d.Field,
			"name":    d.Name,
		}).Warn(d.Message)

		if g.strict {
			return nwlerrors.NewBindingError(d.Page, d.Name, string(d.Element))
		}
	}
	return nil
}
