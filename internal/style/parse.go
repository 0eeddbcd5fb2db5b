// Package style resolves the processed stylesheet of a project from a base
// theme, an optional override file and the utility classes used inline by
// page elements.
package style

import "strings"

// Declaration is one `property: value` pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one selector block. Declarations keep their source order and hold
// each property at most once.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Get returns the value of property.
func (r *Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Set replaces property in place or appends it.
func (r *Rule) Set(property, value string) {
	for i := range r.Declarations {
		if r.Declarations[i].Property == property {
			r.Declarations[i].Value = value
			return
		}
	}
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// Pseudo reports whether the selector carries a pseudo-class.
func (r *Rule) Pseudo() bool {
	return strings.Contains(r.Selector, ":")
}

// Key normalizes a selector for merging: the text before the first ':' trimmed.
func Key(selector string) string {
	if i := strings.IndexByte(selector, ':'); i >= 0 {
		selector = selector[:i]
	}
	return strings.TrimSpace(selector)
}

// Parse reads the CSS subset used by themes: one selector per block opened by
// a line ending in '{', one declaration per line, and a closing '}' or blank
// line ending the block. Lines starting with "/*" are skipped, as is anything
// else that does not fit.
func Parse(text string) []Rule {
	var (
		rules   []Rule
		current *Rule
	)

	flush := func() {
		if current != nil && current.Selector != "" {
			rules = append(rules, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "/*"):
		case strings.HasSuffix(line, "{"):
			flush()
			current = &Rule{Selector: strings.TrimSpace(strings.TrimSuffix(line, "{"))}
		case strings.HasSuffix(line, "}"):
			if current != nil {
				if body := strings.TrimSpace(strings.TrimSuffix(line, "}")); body != "" {
					declare(current, body)
				}
			} else if open := strings.IndexByte(line, '{'); open > 0 {
				current = &Rule{Selector: strings.TrimSpace(line[:open])}
				for _, part := range strings.Split(strings.TrimSuffix(line[open+1:], "}"), ";") {
					declare(current, part)
				}
			}
			flush()
		case current != nil:
			declare(current, line)
		}
	}
	flush()

	return rules
}

func declare(r *Rule, line string) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return
	}
	property := strings.TrimSpace(line[:colon])
	value := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[colon+1:]), ";"))
	if property == "" || value == "" {
		return
	}
	r.Set(property, value)
}
