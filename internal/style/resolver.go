package style

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

//go:embed themes/default.css
var embeddedThemes embed.FS

const (
	// DefaultTheme selects the built-in theme.
	DefaultTheme = "default"
	// DefaultOverrideFile is the override file used when css_override is "default".
	DefaultOverrideFile = "theme.override.css"
	// OutputFile is the processed stylesheet name inside the themes directory.
	OutputFile = "processed.css"
)

// Banner opens every processed stylesheet.
const Banner = "/* Processed CSS - Generated by NWL Compiler */\n" +
	"/* Precedence: Base Theme < Override Theme < YAML Inline Styles */\n"

// DefaultThemeCSS returns the built-in theme source.
func DefaultThemeCSS() string {
	data, err := embeddedThemes.ReadFile("themes/default.css")
	if err != nil {
		return ""
	}
	return string(data)
}

// Resolver reads theme files from a project tree.
type Resolver struct {
	// FS is rooted at the project directory.
	FS fs.FS
	// ThemesDir is where theme and override files live inside FS.
	ThemesDir string
	Logger    *logger.Logger
}

// ProcessedCSS is the merged rule list ready to serialize.
type ProcessedCSS struct {
	Rules []Rule
}

// Resolve merges the base theme, the override file and the inline layer in
// Precedence order. Missing theme or override files fall back to defaults.
func (r *Resolver) Resolve(theme, override string, inline InlineClasses) (*ProcessedCSS, error) {
	layers := make(map[Layer][]Rule, len(Precedence))

	base, err := r.baseTheme(theme)
	if err != nil {
		return nil, err
	}
	layers[LayerBase] = base

	overrides, err := r.overrideRules(override)
	if err != nil {
		return nil, err
	}
	layers[LayerOverride] = overrides
	layers[LayerInline] = inline.Rules()

	ordered := make([][]Rule, 0, len(Precedence))
	for _, layer := range Precedence {
		ordered = append(ordered, layers[layer])
	}
	return &ProcessedCSS{Rules: Merge(ordered...)}, nil
}

func (r *Resolver) baseTheme(theme string) ([]Rule, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" || theme == DefaultTheme {
		return Parse(DefaultThemeCSS()), nil
	}

	text, ok, err := r.read(theme + ".css")
	if err != nil {
		return nil, err
	}
	if !ok {
		r.Logger.With("theme", theme).Info("theme file not found, using defaults")
		return Parse(DefaultThemeCSS()), nil
	}
	return Parse(text), nil
}

func (r *Resolver) overrideRules(override string) ([]Rule, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return nil, nil
	}
	if override == DefaultTheme {
		override = DefaultOverrideFile
	}

	text, ok, err := r.read(override)
	if err != nil {
		return nil, err
	}
	if !ok {
		r.Logger.With("override", override).Info("override file not found, skipping")
		return nil, nil
	}
	return Parse(text), nil
}

// read loads name from the themes directory. ok is false when the file does
// not exist.
func (r *Resolver) read(name string) (string, bool, error) {
	if r.FS == nil {
		return "", false, nil
	}

	dir := r.ThemesDir
	if dir == "" {
		dir = "themes"
	}
	p := path.Join(dir, name)

	data, err := fs.ReadFile(r.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("style: read %s: %w", p, err)
	}
	r.Logger.With("path", p).Debug("loaded stylesheet")
	return string(data), true, nil
}

// Lookup returns the rule for selector: the identical selector, or for a
// plain selector the first plain rule with the same Key.
func (p *ProcessedCSS) Lookup(selector string) (*Rule, bool) {
	if i := target(p.Rules, Rule{Selector: selector}); i >= 0 {
		return &p.Rules[i], true
	}
	return nil, false
}

// String serializes the stylesheet: the banner, then one block per rule
// separated by blank lines.
func (p *ProcessedCSS) String() string {
	var b strings.Builder
	b.WriteString(Banner)
	for _, rule := range p.Rules {
		b.WriteString("\n")
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, d := range rule.Declarations {
			b.WriteString("  ")
			b.WriteString(d.Property)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
