package document

import "fmt"

// Children returns the nested elements of a container kind, or nil.
func Children(el Element) Elements {
	switch e := el.(type) {
	case *Card:
		return e.Children
	case *Container:
		return e.Children
	case *LayoutElement:
		return e.Children
	case *List:
		return e.Children
	case *Form:
		return e.Children
	case *Fieldset:
		return e.Children
	case *Dialog:
		return e.Children
	}
	return nil
}

// Walk visits elements depth-first in document order. Returning false from fn
// skips the element's children.
func Walk(elements Elements, fn func(Element) bool) {
	for _, el := range elements {
		if el == nil {
			continue
		}
		if fn(el) {
			Walk(Children(el), fn)
		}
	}
}

// BindRef is a reference from an element field to a page state name.
type BindRef struct {
	Field string
	Name  string
}

// BindRefs lists the state names an element reads or writes: `bind` on
// controls, `data` on lists and `open` on dialogs, tooltips and popovers.
func BindRefs(el Element) []BindRef {
	var name string
	field := "bind"

	switch e := el.(type) {
	case *Input:
		name = e.Bind
	case *Checkbox:
		name = e.Bind
	case *Slider:
		name = e.Bind
	case *Select:
		name = e.Bind
	case *RadioGroup:
		name = e.Bind
	case *Textarea:
		name = e.Bind
	case *DateInput:
		name = e.Bind
	case *TimeInput:
		name = e.Bind
	case *DateTimeInput:
		name = e.Bind
	case *ColorPicker:
		name = e.Bind
	case *FileUpload:
		name = e.Bind
	case *Progress:
		name = e.Bind
	case *Toggle:
		name = e.Bind
	case *Tabs:
		name = e.Bind
	case *Accordion:
		name = e.Bind
	case *Counter:
		name = e.Bind
	case *SearchInput:
		name = e.Bind
	case *Pagination:
		name = e.Bind
	case *ChipInput:
		name = e.Bind
	case *Nav:
		name = e.Bind
	case *NavigationMenu:
		name = e.Bind
	case *URL:
		name = e.Bind
	case *Email:
		name = e.Bind
	case *Rating:
		name = e.Bind
	case *List:
		name, field = e.Data, "data"
	case *Dialog:
		name, field = e.Open, "open"
	case *Tooltip:
		name, field = e.Open, "open"
	case *Popover:
		name, field = e.Open, "open"
	}

	if name == "" {
		return nil
	}
	return []BindRef{{Field: field, Name: name}}
}

// CheckBindings reports every binding in page that names no declared state.
// implicit lists state names synthesized by the generator rather than declared.
func CheckBindings(page *Page, implicit ...string) []Diagnostic {
	if page == nil {
		return nil
	}

	declared := make(map[string]struct{}, len(page.State)+len(implicit))
	for _, st := range page.State {
		declared[st.Name] = struct{}{}
	}
	for _, name := range implicit {
		declared[name] = struct{}{}
	}

	var diags []Diagnostic
	Walk(page.Children, func(el Element) bool {
		for _, ref := range BindRefs(el) {
			if _, ok := declared[ref.Name]; ok {
				continue
			}
			diags = append(diags, Diagnostic{
				Page:    page.Name,
				Element: el.Kind(),
				Field:   ref.Field,
				Name:    ref.Name,
				Message: fmt.Sprintf("references undeclared state %q", ref.Name),
			})
		}
		return true
	})
	return diags
}
