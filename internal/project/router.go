package project

import (
	"path/filepath"
	"strings"
)

// RouteEntry is one line of the route table.
type RouteEntry struct {
	Path      string
	Component string
	// Module is the import specifier relative to the router, e.g. "./home".
	Module string
}

// RouterFile is the entry module written into the source directory.
const RouterFile = "main.tsx"

const routerHeader = `import React from 'react'
import ReactDOM from 'react-dom/client'
import { BrowserRouter, Routes, Route } from 'react-router-dom'
import './index.css'
`

const routerBody = `
ReactDOM.createRoot(document.getElementById('root')!).render(
  <React.StrictMode>
    <BrowserRouter>
      <Routes>
`

const routerFooter = `      </Routes>
    </BrowserRouter>
  </React.StrictMode>,
)
`

// GenerateRouter renders the entry module: the fixed bootstrap, one import
// per route, the stylesheet import when stylesheet is non-empty, then one
// Route per entry in the given order.
func GenerateRouter(routes []RouteEntry, stylesheet string) string {
	var b strings.Builder
	b.WriteString(routerHeader)
	if stylesheet != "" {
		b.WriteString("import '" + stylesheet + "';\n")
	}
	b.WriteString("\n")

	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if _, dup := seen[r.Component]; dup {
			continue
		}
		seen[r.Component] = struct{}{}
		b.WriteString("import " + r.Component + " from '" + r.Module + "';\n")
	}

	b.WriteString(routerBody)
	for _, r := range routes {
		b.WriteString(`        <Route path="` + r.Path + `" element={<` + r.Component + ` />} />` + "\n")
	}
	b.WriteString(routerFooter)
	return b.String()
}

// relativeImport returns the import specifier of target as seen from a
// module in fromDir. Both are relative to the project root.
func relativeImport(fromDir, target string) string {
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(target))
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}
