package codegen

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/nwl/internal/document"
)

func (r *renderer) heading(e *Emitter, h *document.Heading) {
	var a attrs
	a.class("", h.Style)
	e.Line("<h1" + a.String() + ">" + jsxText(h.Content) + "</h1>")
}

func (r *renderer) text(e *Emitter, t *document.Text) {
	var a attrs
	a.class("", t.Style)
	e.Line("<p" + a.String() + ">" + jsxText(t.Content) + "</p>")
}

func (r *renderer) button(e *Emitter, b *document.Button) {
	var a attrs
	a.class("Button", b.Style)
	a.expr("onClick", clickHandler(b.OnClick))
	e.Line("<Button" + a.String() + ">" + jsxText(b.Content) + "</Button>")
}

// clickHandler treats a handler starting with "/" as a route to navigate to.
func clickHandler(handler string) string {
	handler = strings.TrimSpace(handler)
	if handler == "" {
		return ""
	}
	if strings.HasPrefix(handler, "/") {
		return "() => window.location.href = " + jsString(handler)
	}
	return eventArrow("", handler)
}

func (r *renderer) image(e *Emitter, img *document.Image) {
	var a attrs
	a.class("", img.Style).str("src", img.Src).str("alt", img.Alt)
	e.Line("<img" + a.String() + " />")
}

func (r *renderer) spacer(e *Emitter, _ *document.Spacer) {
	e.Line("<Separator />")
}

var badgeVariants = map[string]string{
	"success": "Badge-success",
	"warning": "Badge-warning",
	"error":   "Badge-error",
	"info":    "Badge-info",
}

func (r *renderer) badge(e *Emitter, b *document.Badge) {
	variant, ok := badgeVariants[b.Variant]
	if !ok {
		variant = "Badge-default"
	}
	var a attrs
	a.class("Badge "+variant, b.Style)
	e.Line("<span" + a.String() + ">" + jsxText(b.Content) + "</span>")
}

func (r *renderer) tag(e *Emitter, t *document.Tag) {
	var a attrs
	a.class("Tag", t.Style)

	if !t.Removable {
		e.Line("<span" + a.String() + ">" + jsxText(t.Content) + "</span>")
		return
	}

	var btn attrs
	btn.str("type", "button").str("className", "Tag-close").str("aria-label", "Remove")
	btn.expr("onClick", eventArrow("", t.OnRemove))

	e.Open("<span" + a.String() + ">")
	e.Line(jsxText(t.Content))
	e.Line("<button" + btn.String() + " />")
	e.Close("</span>")
}

var alertVariants = map[string]string{
	"success": "Alert-success",
	"warning": "Alert-warning",
	"error":   "Alert-error",
}

func (r *renderer) alert(e *Emitter, al *document.Alert) {
	variant, ok := alertVariants[al.AlertType]
	if !ok {
		variant = "Alert-info"
	}
	var a attrs
	a.class("Alert "+variant, al.Style).str("role", "alert")

	e.Open("<div" + a.String() + ">")
	if al.Dismissible {
		var btn attrs
		btn.str("type", "button").str("className", "Alert-dismiss").str("aria-label", "Dismiss")
		btn.expr("onClick", eventArrow("", al.OnDismiss))
		e.Line("<button" + btn.String() + " />")
	}
	e.Line("<p>" + jsxText(al.Content) + "</p>")
	e.Close("</div>")
}

var spinnerSizes = map[string]string{
	"sm": "Spinner-spinner Spinner-sm",
	"lg": "Spinner-spinner Spinner-lg",
}

func (r *renderer) spinner(e *Emitter, s *document.Spinner) {
	size, ok := spinnerSizes[s.Size]
	if !ok {
		size = "Spinner-spinner"
	}
	var a attrs
	a.class("Spinner", s.Style).str("role", "status")

	e.Open("<div" + a.String() + ">")
	e.Line(`<div className="` + size + `" />`)
	if s.Label != "" {
		e.Line(`<span className="Spinner-label">` + jsxText(s.Label) + "</span>")
	} else {
		e.Line(`<span className="sr-only">Loading...</span>`)
	}
	e.Close("</div>")
}

var avatarSizes = map[string]string{
	"sm": "w-8 h-8 text-xs",
	"md": "w-10 h-10 text-sm",
	"lg": "w-16 h-16 text-lg",
}

func (r *renderer) avatar(e *Emitter, av *document.Avatar) {
	size, ok := avatarSizes[av.Size]
	if !ok {
		size = avatarSizes["md"]
	}
	var a attrs
	a.class("flex items-center", av.Style)

	e.Open("<div" + a.String() + ">")
	e.Open(`<div className="` + size + ` rounded-full overflow-hidden bg-gray-100">`)
	if av.Src != "" {
		var img attrs
		img.str("src", av.Src).str("alt", av.Name).str("className", "w-full h-full object-cover rounded-full")
		e.Line("<img" + img.String() + " />")
	} else {
		e.Line(`<span className="flex items-center justify-center w-full h-full rounded-full bg-gray-200 text-gray-600 font-medium">` + jsxText(initials(av)) + "</span>")
	}
	e.Close("</div>")
	if av.Name != "" {
		e.Line(`<span className="ml-2 font-medium text-gray-700">` + jsxText(av.Name) + "</span>")
	}
	e.Close("</div>")
}

// initials picks the avatar placeholder: the first two runes of Fallback, else
// the initials of Name, else "?".
func initials(av *document.Avatar) string {
	if av.Fallback != "" {
		runes := []rune(av.Fallback)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return string(runes)
	}

	var out []rune
	for _, word := range strings.Fields(av.Name) {
		out = append(out, unicode.ToUpper([]rune(word)[0]))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func (r *renderer) breadcrumb(e *Emitter, b *document.Breadcrumb) {
	var a attrs
	a.class("", b.Style).str("aria-label", "Breadcrumb")

	e.Open("<nav" + a.String() + ">")
	e.Open(`<ol className="flex items-center space-x-2">`)
	for i, item := range b.Items {
		var crumb string
		if item.Href != "" {
			crumb = `<a href="` + attrValue(item.Href) + `" className="text-blue-600 hover:underline">` + jsxText(item.Label) + "</a>"
		} else {
			crumb = `<span className="text-gray-600" aria-current="page">` + jsxText(item.Label) + "</span>"
		}
		if i < len(b.Items)-1 {
			crumb += `<span className="mx-2 text-gray-400">/</span>`
		}
		e.Line("<li>" + crumb + "</li>")
	}
	e.Close("</ol>")
	e.Close("</nav>")
}

func (r *renderer) copyButton(e *Emitter, c *document.CopyButton) {
	payload := c.Content
	if payload == "" {
		payload = c.Text
	}
	label := c.Text
	if label == "" {
		label = "Copy"
	}

	var a attrs
	a.str("type", "button").class("inline-flex items-center", c.Style)
	a.expr("onClick", eventArrow("", "navigator.clipboard.writeText("+jsString(payload)+")", c.OnCopy))
	e.Line("<button" + a.String() + ">" + jsxText(label) + "</button>")
}
