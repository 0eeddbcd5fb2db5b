package codegen

import (
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
)

// linkInput renders the input form shared by url and email elements.
func linkInput(e *Emitter, inputType, placeholder, bind string, style []string) {
	var a attrs
	a.str("type", inputType).str("placeholder", placeholder)
	if b, ok := bound(bind); ok {
		a.expr("value", b.Accessor)
		a.expr("onChange", "(e) => "+b.Mutator+"(e.target.value)")
	}
	a.class("", style)
	e.Line("<input" + a.String() + " />")
}

func (r *renderer) url(e *Emitter, u *document.URL) {
	if u.IsInput() {
		linkInput(e, "url", u.Placeholder, u.Bind, u.Style)
		return
	}

	content := u.Content
	if content == "" {
		content = u.Href
	}

	var a attrs
	a = append(a, "href="+jsxString(u.Href))
	a.class("", u.Style).str("target", u.Target)
	if u.Target == "_blank" {
		a.str("rel", "noopener noreferrer")
	}
	e.Line("<a" + a.String() + ">" + jsxText(content) + "</a>")
}

func (r *renderer) email(e *Emitter, m *document.Email) {
	if m.IsInput() {
		linkInput(e, "email", m.Placeholder, m.Bind, m.Style)
		return
	}

	href := "mailto:" + m.Address
	if m.Subject != "" {
		href += "?subject=" + strings.ReplaceAll(url.QueryEscape(m.Subject), "+", "%20")
	}
	content := m.Content
	if content == "" {
		content = m.Address
	}

	var a attrs
	a.str("href", href).class("", m.Style)
	e.Line("<a" + a.String() + ">" + jsxText(content) + "</a>")
}
