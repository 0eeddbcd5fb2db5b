package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LayoutType selects the flow of a layout wrapper.
type LayoutType string

const (
	LayoutColumn LayoutType = "column"
	LayoutRow    LayoutType = "row"
	LayoutStack  LayoutType = "stack"
	LayoutGrid   LayoutType = "grid"
)

// Layout describes the arrangement of a page or layout element.
type Layout struct {
	Type       LayoutType `yaml:"type" validate:"required,layout_type"`
	Columns    int        `yaml:"columns,omitempty" validate:"omitempty,min=1,max=12"`
	Properties []string   `yaml:"properties,omitempty"`
}

// UnmarshalYAML accepts `style` as a synonym for `properties`.
func (l *Layout) UnmarshalYAML(value *yaml.Node) error {
	type rawLayout struct {
		Type       LayoutType `yaml:"type"`
		Columns    int        `yaml:"columns"`
		Properties []string   `yaml:"properties"`
		Style      []string   `yaml:"style"`
	}

	var raw rawLayout
	if err := value.Decode(&raw); err != nil {
		return err
	}

	l.Type = raw.Type
	l.Columns = raw.Columns
	l.Properties = append(append([]string(nil), raw.Properties...), raw.Style...)
	return nil
}

// StateDefinition declares one page-level state hook.
type StateDefinition struct {
	Name string `yaml:"name" validate:"required,identifier_like"`
	// Type is informational only.
	Type    string `yaml:"type,omitempty"`
	Initial any    `yaml:"initial,omitempty"`
}

// Page is one routable UI unit.
type Page struct {
	Name        string            `yaml:"name" validate:"required,min=1,max=100"`
	Layout      *Layout           `yaml:"layout,omitempty" validate:"omitempty"`
	Style       []string          `yaml:"style,omitempty"`
	Children    Elements          `yaml:"children,omitempty"`
	State       []StateDefinition `yaml:"state,omitempty" validate:"omitempty,dive"`
	CSSTheme    string            `yaml:"css_theme,omitempty"`
	CSSOverride string            `yaml:"css_override,omitempty"`
}

// PageFile is the on-disk shape of a page document: a single `page:` root.
type PageFile struct {
	Page Page `yaml:"page"`
}

// Document is an ordered collection of pages.
type Document struct {
	Pages []Page `yaml:"pages" validate:"required,min=1,dive"`
}

// UnmarshalYAML accepts both `pages: [{...}]` and `pages: [{page: {...}}]`.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	type rawDocument struct {
		Pages []yaml.Node `yaml:"pages"`
	}

	var raw rawDocument
	if err := value.Decode(&raw); err != nil {
		return err
	}

	d.Pages = make([]Page, 0, len(raw.Pages))
	for i := range raw.Pages {
		node := &raw.Pages[i]
		if hasYAMLKey(node, "page") {
			var wrapped PageFile
			if err := node.Decode(&wrapped); err != nil {
				return err
			}
			d.Pages = append(d.Pages, wrapped.Page)
			continue
		}
		var page Page
		if err := node.Decode(&page); err != nil {
			return err
		}
		d.Pages = append(d.Pages, page)
	}
	return nil
}

// RouteConfig maps a URL path to a page document.
type RouteConfig struct {
	Path string `yaml:"path" validate:"required,route_path"`
	Page string `yaml:"page" validate:"required"`
}

// OutputConfig names the directories the build writes into, relative to the project root.
type OutputConfig struct {
	Src    string `yaml:"src,omitempty"`
	Themes string `yaml:"themes,omitempty"`
}

// ProjectConfig is the decoded nwl.yaml.
type ProjectConfig struct {
	Name        string        `yaml:"name" validate:"required,min=1,max=100"`
	Routes      []RouteConfig `yaml:"routes" validate:"required,min=1,dive"`
	CSSTheme    string        `yaml:"css_theme,omitempty"`
	CSSOverride string        `yaml:"css_override,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

const (
	DefaultSrcDir    = "src"
	DefaultThemesDir = "themes"
)

// SrcDir returns the component output directory.
func (c *ProjectConfig) SrcDir() string {
	if c == nil || c.Output.Src == "" {
		return DefaultSrcDir
	}
	return c.Output.Src
}

// ThemesDir returns the directory themes are read from and the processed stylesheet is written to.
func (c *ProjectConfig) ThemesDir() string {
	if c == nil || c.Output.Themes == "" {
		return DefaultThemesDir
	}
	return c.Output.Themes
}

// HasStylesheet reports whether the project asks for a processed stylesheet.
func (c *ProjectConfig) HasStylesheet() bool {
	return c != nil && (c.CSSTheme != "" || c.CSSOverride != "")
}

// Diagnostic is a non-fatal finding about a page.
type Diagnostic struct {
	Page    string
	Element Kind
	Field   string
	Name    string
	Message string
}

func (d Diagnostic) String() string {
	if d.Page != "" {
		return fmt.Sprintf("%s: %s.%s: %s", d.Page, d.Element, d.Field, d.Message)
	}
	return fmt.Sprintf("%s.%s: %s", d.Element, d.Field, d.Message)
}
