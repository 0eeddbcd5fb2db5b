package style

import (
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
)

// InlineClasses collects the utility classes elements apply to each
// structural selector, in first-seen order. The zero value is ready to use.
type InlineClasses struct {
	selectors []string
	classes   map[string][]string
}

// Add appends classes to selector, skipping blanks and duplicates.
func (c *InlineClasses) Add(selector string, classes ...string) {
	if c.classes == nil {
		c.classes = make(map[string][]string)
	}
	existing, seen := c.classes[selector]
	if !seen {
		c.selectors = append(c.selectors, selector)
	}
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" || contains(existing, class) {
			continue
		}
		existing = append(existing, class)
	}
	c.classes[selector] = existing
}

// Selectors lists selectors in first-seen order.
func (c *InlineClasses) Selectors() []string {
	return append([]string(nil), c.selectors...)
}

// Classes returns the classes recorded for selector.
func (c *InlineClasses) Classes(selector string) []string {
	return append([]string(nil), c.classes[selector]...)
}

// Len reports the number of selectors.
func (c *InlineClasses) Len() int { return len(c.selectors) }

// Rules translates the collected classes into the inline layer. Unknown
// tokens are dropped and a selector left with nothing is omitted.
func (c *InlineClasses) Rules() []Rule {
	var rules []Rule
	for _, selector := range c.selectors {
		rule := Rule{Selector: selector}
		for _, class := range c.classes[selector] {
			if d, ok := Translate(class); ok {
				rule.Set(d.Property, d.Value)
			}
		}
		if len(rule.Declarations) > 0 {
			rules = append(rules, rule)
		}
	}
	return rules
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// structuralClass names the class selector generated markup gives an element
// kind, for the kinds whose inline style feeds the stylesheet.
func structuralClass(el document.Element) (string, []string) {
	switch e := el.(type) {
	case *document.Button:
		return ".Button", e.Style
	case *document.Card:
		return ".Card", e.Style
	case *document.List:
		return ".List", e.Style
	case *document.Checkbox:
		return ".Checkbox-root", e.Style
	case *document.Select:
		return ".Select-trigger", e.Style
	case *document.RadioGroup:
		return ".RadioGroup", e.Style
	case *document.Toggle:
		return ".Switch-root", e.Style
	case *document.Form:
		return ".Form", e.Style
	case *document.Field:
		return ".Field-root", e.Style
	case *document.Badge:
		return ".Badge", e.Style
	case *document.Tag:
		return ".Tag", e.Style
	case *document.Alert:
		return ".Alert", e.Style
	case *document.Spinner:
		return ".Spinner", e.Style
	case *document.Counter:
		return ".NumberField-root", e.Style
	case *document.Container:
		return ".Container", e.Style
	}
	return "", nil
}

// CollectInline gathers the inline classes of every page of doc, descending
// into all container elements.
func CollectInline(doc *document.Document) InlineClasses {
	var inline InlineClasses
	if doc == nil {
		return inline
	}
	for i := range doc.Pages {
		document.Walk(doc.Pages[i].Children, func(el document.Element) bool {
			if selector, classes := structuralClass(el); selector != "" && len(classes) > 0 {
				inline.Add(selector, classes...)
			}
			return true
		})
	}
	return inline
}
