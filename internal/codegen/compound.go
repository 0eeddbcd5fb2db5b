package codegen

import (
	"strconv"

	"github.com/alexisbeaulieu97/nwl/internal/document"
)

func (r *renderer) tabs(e *Emitter, t *document.Tabs) {
	var wrapper attrs
	wrapper.class("", t.Style)

	b, isBound := bound(t.Bind)

	e.Open("<div" + wrapper.String() + ">")
	if t.Label != "" {
		e.Line("<p>" + jsxText(t.Label) + "</p>")
	}
	e.Open("<div>")
	e.Open("<nav>")
	for i, tab := range t.Options {
		value := jsString(tab.Value)

		var in attrs
		in.str("type", "radio").str("name", "tabs").str("value", tab.Value).str("className", "sr-only")
		if isBound {
			in.expr("checked", b.Accessor+" === "+value)
			in.expr("onChange", eventArrow("", b.Mutator+"("+value+")", t.OnChange))
		} else {
			in.flag("defaultChecked", i == 0)
			in.expr("onChange", eventArrow("", t.OnChange))
		}

		label := jsxText(tab.DisplayLabel())
		if tab.Icon != "" {
			label = `<span className="Tabs-icon">` + jsxText(tab.Icon) + "</span>" + label
		}
		e.Line(`<label className="cursor-pointer whitespace-nowrap py-4 px-1 border-b-2">` + label + "<input" + in.String() + " /></label>")
	}
	e.Close("</nav>")
	e.Close("</div>")
	e.Close("</div>")
}

func accordionValue(i int) string { return "item-" + strconv.Itoa(i) }

func (r *renderer) accordion(e *Emitter, a *document.Accordion) {
	var root attrs
	root.class("", a.Style)
	root.flag("multiple", a.Multiple)
	if b, ok := bound(a.Bind); ok {
		if a.Multiple {
			// The state holds the array of open item values.
			root.expr("value", b.Accessor)
			root.expr("onValueChange", "(value) => "+b.Mutator+"(value)")
		} else {
			root.expr("value", "["+b.Accessor+"]")
			root.expr("onValueChange", "(value) => "+b.Mutator+"(value[0])")
		}
	} else if len(a.Items) > 0 {
		root.expr("defaultValue", "["+jsString(accordionValue(0))+"]")
	}

	e.Open("<Accordion.Root" + root.String() + ">")
	for i, item := range a.Items {
		e.Open(`<Accordion.Item value="` + accordionValue(i) + `">`)
		e.Open("<Accordion.Header>")
		e.Open("<Accordion.Trigger>")
		if item.Icon != "" {
			e.Line(`<span className="Accordion-icon">` + jsxText(item.Icon) + "</span>")
		}
		e.Line(jsxText(item.Title))
		e.Close("</Accordion.Trigger>")
		e.Close("</Accordion.Header>")
		e.Open("<Accordion.Panel>")
		e.Line(jsxText(item.Content))
		e.Close("</Accordion.Panel>")
		e.Close("</Accordion.Item>")
	}
	e.Close("</Accordion.Root>")
}

// activeLink picks the statically active link of an unbound nav: the first
// link flagged active, else the first link.
func activeLink(links []document.NavLink) int {
	for i, l := range links {
		if l.Active {
			return i
		}
	}
	return 0
}

// linkAttrs builds the attributes of one nav link. Bound navs decide the
// active class at runtime by comparing the accessor with the link key.
func linkAttrs(link document.NavLink, bind string, static bool, defaultHref, baseClass, activeClass, inactiveClass string) attrs {
	href := link.Href
	if href == "" {
		href = defaultHref
	}

	var a attrs
	a.str("href", href)
	if b, ok := bound(bind); ok {
		key := jsString(link.Key())
		a.expr("className", b.Accessor+" === "+key+" ? "+jsString(joinClass(baseClass, activeClass))+" : "+jsString(joinClass(baseClass, inactiveClass)))
		a.expr("onClick", "() => "+b.Mutator+"("+key+")")
		return a
	}
	if static {
		a.str("className", joinClass(baseClass, activeClass))
		a.str("aria-current", "page")
	} else {
		a.str("className", joinClass(baseClass, inactiveClass))
	}
	return a
}

func joinClass(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

func (r *renderer) nav(e *Emitter, n *document.Nav) {
	base := "flex items-center justify-between px-6 py-4"
	if n.Sticky {
		base += " sticky top-0 z-50"
	}
	if n.Transparent {
		base += " bg-transparent"
	} else {
		base += " bg-black"
	}

	var a attrs
	a.class(base, n.Style)

	active := activeLink(n.Links)

	e.Open("<nav" + a.String() + ">")
	if n.Logo != "" {
		e.Line(`<a href="/" className="text-xl font-bold text-white">` + jsxText(n.Logo) + "</a>")
	}
	e.Open(`<div className="flex items-center gap-6">`)
	for i, link := range n.Links {
		la := linkAttrs(link, n.Bind, i == active, "", "text-sm font-medium transition-colors", "text-blue-400", "text-white hover:text-blue-400")
		e.Line("<a" + la.String() + ">" + jsxText(link.Label) + "</a>")
	}
	e.Close("</div>")
	e.Close("</nav>")
}

const hamburgerIcon = `<svg className="w-5 h-5" fill="none" stroke="currentColor" viewBox="0 0 24 24" strokeWidth="2" strokeLinecap="round" strokeLinejoin="round"><path d="M4 6h16M4 12h16M4 18h16"></path></svg>`

func (r *renderer) navigationMenu(e *Emitter, m *document.NavigationMenu) {
	var root attrs
	root.class("NavigationMenu", m.Style)

	logo := m.Logo
	if logo == "" {
		logo = "NWL"
	}
	active := activeLink(m.Items)

	e.Open("<div" + root.String() + ">")
	e.Open(`<nav className="NavigationMenu-nav flex items-center justify-between px-6 py-4 bg-gray-900 border-b border-gray-700">`)
	e.Line(`<a href="/" className="NavigationMenu-logo">` + jsxText(logo) + "</a>")
	e.Open(`<div className="hidden md:flex gap-4 NavigationMenu-nav">`)
	for i, link := range m.Items {
		la := linkAttrs(link, m.Bind, i == active, "#", "NavigationMenu-link", "NavigationMenu-link-active", "")
		e.Line("<a" + la.String() + ">" + jsxText(link.Label) + "</a>")
	}
	e.Close("</div>")
	if m.Hamburger {
		e.Open(`<Button className="Button md:hidden" aria-label="Toggle menu" onClick={() => ` + menuOpen.Mutator + "(!" + menuOpen.Accessor + ")}>")
		e.Line(hamburgerIcon)
		e.Close("</Button>")
	}
	e.Close("</nav>")

	if m.Hamburger {
		var popup attrs
		popup.class("Popover-popup min-w-[200px] p-1 bg-white border rounded-lg shadow-lg", m.MobileStyle)

		e.Open("<Menu.Root open={" + menuOpen.Accessor + "} onOpenChange={(open) => " + menuOpen.Mutator + "(open)}>")
		e.Open("<Menu.Portal>")
		e.Open(`<Menu.Positioner sideOffset={8} className="z-50">`)
		e.Open("<Menu.Popup" + popup.String() + ">")
		e.Line(`<Menu.Arrow className="fill-white" />`)
		for i, link := range m.Items {
			var la attrs
			la.str("href", link.Href).str("className", "flex items-center px-3 py-2 text-sm text-gray-700 hover:bg-gray-100 rounded cursor-pointer")
			if b, ok := bound(m.Bind); ok {
				la.expr("onClick", "() => { "+b.Mutator+"("+jsString(link.Key())+"); "+menuOpen.Mutator+"(false); }")
			} else {
				la.expr("onClick", "() => "+menuOpen.Mutator+"(false)")
			}
			e.Open("<Menu.Item key={" + strconv.Itoa(i) + "} asChild>")
			e.Open("<a" + la.String() + ">")
			e.Line(jsxText(link.Label))
			e.Close("</a>")
			e.Close("</Menu.Item>")
		}
		e.Close("</Menu.Popup>")
		e.Close("</Menu.Positioner>")
		e.Close("</Menu.Portal>")
		e.Close("</Menu.Root>")
	}
	e.Close("</div>")
}

// floating renders the shared Root/Trigger/Portal/Positioner/Popup structure
// of tooltips and popovers.
func floating(e *Emitter, ns, open, trigger, side, title, content string, style []string) {
	var root attrs
	if b, ok := bound(open); ok {
		root.expr("open", b.Accessor)
		root.expr("onOpenChange", "(open) => "+b.Mutator+"(open)")
	}

	var positioner attrs
	positioner.expr("sideOffset", "8").str("side", side)

	var popup attrs
	popup.class(ns+"-popup", style)

	e.Open("<" + ns + ".Root" + root.String() + ">")
	if trigger != "" {
		e.Open("<" + ns + ".Trigger>")
		e.Line(jsxText(trigger))
		e.Close("</" + ns + ".Trigger>")
	}
	e.Open("<" + ns + ".Portal>")
	e.Open("<" + ns + ".Positioner" + positioner.String() + ">")
	e.Open("<" + ns + ".Popup" + popup.String() + ">")
	if title != "" {
		e.Line("<" + ns + `.Title className="` + ns + `-title">` + jsxText(title) + "</" + ns + ".Title>")
	}
	e.Line(jsxText(content))
	e.Close("</" + ns + ".Popup>")
	e.Close("</" + ns + ".Positioner>")
	e.Close("</" + ns + ".Portal>")
	e.Close("</" + ns + ".Root>")
}

func (r *renderer) tooltip(e *Emitter, t *document.Tooltip) {
	e.Open("<Tooltip.Provider>")
	floating(e, "Tooltip", t.Open, t.Trigger, t.Side, "", t.Content, t.Style)
	e.Close("</Tooltip.Provider>")
}

func (r *renderer) popover(e *Emitter, p *document.Popover) {
	floating(e, "Popover", p.Open, p.Trigger, p.Side, p.Title, p.Content, p.Style)
}
