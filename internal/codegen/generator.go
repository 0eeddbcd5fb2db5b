// Package codegen lowers a typed page tree to a React component module.
package codegen

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes generator diagnostics to log.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithDiagnostics registers a callback receiving every binding diagnostic.
func WithDiagnostics(fn func(document.Diagnostic)) Option {
	return func(g *Generator) {
		g.onDiagnostic = fn
	}
}

// WithStrictBindings makes a binding to undeclared state a BindingError.
func WithStrictBindings(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// Generator turns pages and elements into JSX source. It holds no per-page
// state and is safe for concurrent use.
type Generator struct {
	log          *logger.Logger
	onDiagnostic func(document.Diagnostic)
	strict       bool
}

// New constructs a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Element renders one element at the given nesting level. Every line of the
// fragment, including the first, carries the indentation. Unknown element
// implementations yield an error wrapping ErrUnsupportedElement and no output.
func (g *Generator) Element(el document.Element, indent int) (string, error) {
	r := &renderer{}
	e := NewEmitter(indent)
	if err := r.element(e, el); err != nil {
		return "", err
	}
	return strings.TrimSuffix(e.String(), "\n"), nil
}

// renderer carries the state of one generation pass.
type renderer struct {
	page     string
	listKeys int
}

func (r *renderer) nextListKey() string {
	key := "list-item-" + strconv.Itoa(r.listKeys)
	r.listKeys++
	return key
}

func (r *renderer) children(e *Emitter, children document.Elements) error {
	for _, child := range children {
		if err := r.element(e, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) unsupported(el document.Element) error {
	kind := "<nil>"
	if el != nil {
		kind = string(el.Kind())
	}
	return nwlerrors.NewCodegenError(r.page, kind, nwlerrors.ErrUnsupportedElement)
}

func (r *renderer) element(e *Emitter, el document.Element) error {
	switch v := el.(type) {
	case *document.Heading:
		r.heading(e, v)
	case *document.Text:
		r.text(e, v)
	case *document.Button:
		r.button(e, v)
	case *document.Card:
		return r.card(e, v)
	case *document.List:
		return r.list(e, v)
	case *document.LayoutElement:
		return r.layout(e, v)
	case *document.Input:
		r.input(e, v)
	case *document.Image:
		r.image(e, v)
	case *document.Spacer:
		r.spacer(e, v)
	case *document.Container:
		return r.container(e, v)
	case *document.Checkbox:
		r.checkbox(e, v)
	case *document.Slider:
		r.slider(e, v)
	case *document.Select:
		r.selectBox(e, v)
	case *document.RadioGroup:
		r.radioGroup(e, v)
	case *document.Textarea:
		r.textarea(e, v)
	case *document.Form:
		return r.form(e, v)
	case *document.Field:
		r.field(e, v)
	case *document.Fieldset:
		return r.fieldset(e, v)
	case *document.DateInput:
		r.dateInput(e, v)
	case *document.TimeInput:
		r.timeInput(e, v)
	case *document.DateTimeInput:
		r.dateTimeInput(e, v)
	case *document.ColorPicker:
		r.colorPicker(e, v)
	case *document.FileUpload:
		r.fileUpload(e, v)
	case *document.Progress:
		r.progress(e, v)
	case *document.Toggle:
		r.toggle(e, v)
	case *document.Tabs:
		r.tabs(e, v)
	case *document.Accordion:
		r.accordion(e, v)
	case *document.Dialog:
		return r.dialog(e, v)
	case *document.Tooltip:
		r.tooltip(e, v)
	case *document.Popover:
		r.popover(e, v)
	case *document.Badge:
		r.badge(e, v)
	case *document.Tag:
		r.tag(e, v)
	case *document.Alert:
		r.alert(e, v)
	case *document.Spinner:
		r.spinner(e, v)
	case *document.Counter:
		r.counter(e, v)
	case *document.SearchInput:
		r.searchInput(e, v)
	case *document.CopyButton:
		r.copyButton(e, v)
	case *document.Pagination:
		r.pagination(e, v)
	case *document.Breadcrumb:
		r.breadcrumb(e, v)
	case *document.Avatar:
		r.avatar(e, v)
	case *document.ChipInput:
		r.chipInput(e, v)
	case *document.Nav:
		r.nav(e, v)
	case *document.NavigationMenu:
		r.navigationMenu(e, v)
	case *document.URL:
		r.url(e, v)
	case *document.Email:
		r.email(e, v)
	case *document.Rating:
		r.rating(e, v)
	default:
		return r.unsupported(el)
	}
	return nil
}
