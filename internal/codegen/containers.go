package codegen

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
)

// LayoutClasses derives the utility classes of a layout: the flow classes of
// its type followed by its extra properties.
func LayoutClasses(l *document.Layout) string {
	if l == nil {
		return ""
	}

	var classes []string
	switch l.Type {
	case document.LayoutColumn:
		classes = append(classes, "flex flex-col")
	case document.LayoutRow:
		classes = append(classes, "flex flex-row")
	case document.LayoutStack:
		classes = append(classes, "relative")
	case document.LayoutGrid:
		classes = append(classes, "grid")
		if l.Columns > 0 {
			classes = append(classes, "grid-cols-"+strconv.Itoa(l.Columns))
		}
	}
	if props := formatStyle(l.Properties); props != "" {
		classes = append(classes, props)
	}
	return strings.Join(classes, " ")
}

func (r *renderer) card(e *Emitter, c *document.Card) error {
	var a attrs
	a.class("Card", c.Style)
	return r.wrap(e, "div", a, c.Children)
}

func (r *renderer) container(e *Emitter, c *document.Container) error {
	var a attrs
	a.class("", c.Style)
	return r.wrap(e, "div", a, c.Children)
}

func (r *renderer) layout(e *Emitter, l *document.LayoutElement) error {
	var a attrs
	a.str("className", LayoutClasses(&l.Layout))
	return r.wrap(e, "div", a, l.Children)
}

func (r *renderer) fieldset(e *Emitter, f *document.Fieldset) error {
	var a attrs
	a.class("Fieldset-root", f.Style)

	e.Open("<Fieldset.Root" + a.String() + ">")
	if f.Legend != "" {
		e.Line(`<Fieldset.Legend className="Fieldset-legend">` + jsxText(f.Legend) + "</Fieldset.Legend>")
	}
	if err := r.children(e, f.Children); err != nil {
		return err
	}
	e.Close("</Fieldset.Root>")
	return nil
}

// wrap renders children inside a single tag.
func (r *renderer) wrap(e *Emitter, tag string, a attrs, children document.Elements) error {
	e.Open("<" + tag + a.String() + ">")
	if err := r.children(e, children); err != nil {
		return err
	}
	e.Close("</" + tag + ">")
	return nil
}

func (r *renderer) list(e *Emitter, l *document.List) error {
	var a attrs
	a.class("List", l.Style)
	e.Open("<div" + a.String() + ">")

	for _, item := range l.Items {
		var ia attrs
		ia.str("key", r.nextListKey()).str("className", "List-item")
		ia.expr("onClick", eventArrow("", item.OnClick))
		e.Open("<div" + ia.String() + ">")
		e.Line(jsxText(item.Content))
		e.Close("</div>")
	}

	if l.Data != "" {
		if err := r.listData(e, l); err != nil {
			return err
		}
	} else if err := r.children(e, l.Children); err != nil {
		return err
	}

	e.Close("</div>")
	return nil
}

// listData repeats the list's children, or the item itself, over a state array.
func (r *renderer) listData(e *Emitter, l *document.List) error {
	source := naming.ToCamelCase(l.Data)
	item := l.As
	if item == "" {
		item = "item"
	}

	var ia attrs
	ia.expr("key", item+".id ?? index").str("className", "List-item")
	ia.expr("onClick", eventArrow("", l.OnClick))

	e.Open("{" + source + ".map((" + item + ", index) => (")
	e.Open("<div" + ia.String() + ">")
	if len(l.Children) == 0 {
		e.Line("{" + item + "}")
	} else if err := r.children(e, l.Children); err != nil {
		return err
	}
	e.Close("</div>")
	e.Close("))}")
	return nil
}

func (r *renderer) dialog(e *Emitter, d *document.Dialog) error {
	var root attrs
	if b, ok := bound(d.Open); ok {
		root.expr("open", b.Accessor)
		root.expr("onOpenChange", "(open) => "+b.Mutator+"(open)")
	}

	e.Open("<Dialog.Root" + root.String() + ">")
	if d.Open == "" {
		e.Open("<Dialog.Trigger asChild>")
		e.Line(`<Button className="Button">Open dialog</Button>`)
		e.Close("</Dialog.Trigger>")
	}
	e.Open("<Dialog.Portal>")
	e.Line(`<Dialog.Backdrop className="Dialog-backdrop" />`)

	var popup attrs
	popup.class("Dialog-popup", d.Style)
	e.Open("<Dialog.Popup" + popup.String() + ">")
	if d.Title != "" {
		e.Line(`<Dialog.Title className="Dialog-title">` + jsxText(d.Title) + "</Dialog.Title>")
	}
	if err := r.children(e, d.Children); err != nil {
		return err
	}
	if d.OnClose != "" {
		var closeAttrs attrs
		closeAttrs.str("className", "Dialog-close").expr("onClick", eventArrow("", d.OnClose))
		e.Open("<Dialog.Close" + closeAttrs.String() + ">")
		e.Line(`<span className="sr-only">Close</span>`)
		e.Close("</Dialog.Close>")
	}
	e.Close("</Dialog.Popup>")
	e.Close("</Dialog.Portal>")
	e.Close("</Dialog.Root>")
	return nil
}
