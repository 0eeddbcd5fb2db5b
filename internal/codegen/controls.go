package codegen

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
)

func intAttr(a *attrs, name string, v *int) {
	if v != nil {
		a.str(name, strconv.Itoa(*v))
	}
}

func intExpr(a *attrs, name string, v *int) {
	if v != nil {
		a.expr(name, strconv.Itoa(*v))
	}
}

func (r *renderer) input(e *Emitter, in *document.Input) {
	var a attrs
	a.class("", in.Style).str("placeholder", in.Placeholder)
	bindValue(&a, in.Bind, in.Value, in.OnChange, nil)
	e.Line("<input" + a.String() + " />")
}

func (r *renderer) textarea(e *Emitter, t *document.Textarea) {
	var a attrs
	a.class("", t.Style).str("placeholder", t.Placeholder)
	if t.Rows > 0 {
		a.expr("rows", strconv.Itoa(t.Rows))
	}
	bindValue(&a, t.Bind, "", t.OnChange, nil)
	e.Line("<textarea" + a.String() + " />")
}

func (r *renderer) slider(e *Emitter, s *document.Slider) {
	var a attrs
	a.str("type", "range").class("", s.Style)
	intAttr(&a, "min", s.Min)
	intAttr(&a, "max", s.Max)
	intAttr(&a, "step", s.Step)
	bindValue(&a, s.Bind, "", s.OnChange, asNumber)

	if s.Label == "" {
		e.Line("<input" + a.String() + " />")
		return
	}
	e.Open(`<label className="flex flex-col gap-1">`)
	e.Line("<span>" + jsxText(s.Label) + "</span>")
	e.Line("<input" + a.String() + " />")
	e.Close("</label>")
}

func (r *renderer) checkbox(e *Emitter, c *document.Checkbox) {
	var wrapper attrs
	wrapper.class("flex items-center gap-2 cursor-pointer", c.Style)

	var root attrs
	root.str("className", "Checkbox-root")
	bindCallback(&root, c.Bind, "checked", "onCheckedChange", "checked", c.OnChange)

	e.Open("<label" + wrapper.String() + ">")
	e.Open("<Checkbox.Root" + root.String() + ">")
	e.Line(`<Checkbox.Indicator className="Checkbox-indicator" />`)
	e.Close("</Checkbox.Root>")
	if c.Label != "" {
		e.Line("<span>" + jsxText(c.Label) + "</span>")
	}
	e.Close("</label>")
}

func (r *renderer) toggle(e *Emitter, t *document.Toggle) {
	var root attrs
	root.class("Switch-root", t.Style)
	bindCallback(&root, t.Bind, "checked", "onCheckedChange", "checked", t.OnChange)
	if t.OnColor != "" || t.OffColor != "" {
		root.str("data-on-color", t.OnColor).str("data-off-color", t.OffColor)
	}

	e.Open(`<label className="inline-flex items-center cursor-pointer gap-3">`)
	if t.Label != "" {
		e.Line(`<span className="font-medium">` + jsxText(t.Label) + "</span>")
	}
	e.Open("<Switch.Root" + root.String() + ">")
	e.Line(`<Switch.Thumb className="Switch-thumb" />`)
	e.Close("</Switch.Root>")
	e.Close("</label>")
}

func (r *renderer) selectBox(e *Emitter, s *document.Select) {
	var root attrs
	bindCallback(&root, s.Bind, "value", "onValueChange", "value", s.OnChange)

	var trigger attrs
	trigger.class("Select-trigger", s.Style)

	var value attrs
	value.str("placeholder", s.Placeholder)

	e.Open("<Select.Root" + root.String() + ">")
	e.Open("<Select.Trigger" + trigger.String() + ">")
	e.Line("<Select.Value" + value.String() + " />")
	e.Line("<Select.Icon />")
	e.Close("</Select.Trigger>")
	e.Open("<Select.Portal>")
	e.Open("<Select.Positioner sideOffset={8}>")
	e.Open(`<Select.Popup className="Select-popup">`)
	for _, opt := range s.Options {
		e.Open(`<Select.Item className="Select-item" value=` + jsxString(opt.Value) + ">")
		e.Line("<Select.ItemText>" + jsxText(opt.DisplayLabel()) + "</Select.ItemText>")
		e.Close("</Select.Item>")
	}
	e.Close("</Select.Popup>")
	e.Close("</Select.Positioner>")
	e.Close("</Select.Portal>")
	e.Close("</Select.Root>")
}

// jsxString renders an attribute value that may legitimately be empty.
func jsxString(v string) string {
	return `"` + attrValue(v) + `"`
}

func (r *renderer) radioGroup(e *Emitter, rg *document.RadioGroup) {
	var root attrs
	root.class("RadioGroup", rg.Style)
	if _, ok := bound(rg.Bind); ok {
		bindCallback(&root, rg.Bind, "value", "onValueChange", "value", rg.OnChange)
	} else {
		if len(rg.Options) > 0 {
			root = append(root, "defaultValue="+jsxString(rg.Options[0].Value))
		}
		root.expr("onValueChange", eventArrow("value", rg.OnChange))
	}

	e.Open("<RadioGroup" + root.String() + ">")
	if rg.Label != "" {
		e.Line("<p>" + jsxText(rg.Label) + "</p>")
	}
	for _, opt := range rg.Options {
		e.Open(`<label className="flex items-center gap-2 cursor-pointer py-1">`)
		e.Open(`<Radio.Root className="Radio-root" value=` + jsxString(opt.Value) + ">")
		e.Line(`<Radio.Indicator className="Radio-indicator" />`)
		e.Close("</Radio.Root>")
		e.Line("<span>" + jsxText(opt.DisplayLabel()) + "</span>")
		e.Close("</label>")
	}
	e.Close("</RadioGroup>")
}

// dateLike renders the native date/time family of inputs.
func dateLike(e *Emitter, inputType string, style []string, min, max, placeholder string, step int, bind, onChange string) {
	var a attrs
	a.str("type", inputType).class("", style).str("min", min).str("max", max)
	if step > 0 {
		a.str("step", strconv.Itoa(step))
	}
	a.str("placeholder", placeholder)
	bindValue(&a, bind, "", onChange, nil)
	e.Line("<input" + a.String() + " />")
}

func (r *renderer) dateInput(e *Emitter, d *document.DateInput) {
	dateLike(e, "date", d.Style, d.Min, d.Max, d.Placeholder, 0, d.Bind, d.OnChange)
}

func (r *renderer) timeInput(e *Emitter, t *document.TimeInput) {
	dateLike(e, "time", t.Style, t.Min, t.Max, t.Placeholder, t.Step, t.Bind, t.OnChange)
}

func (r *renderer) dateTimeInput(e *Emitter, d *document.DateTimeInput) {
	dateLike(e, "datetime-local", d.Style, d.Min, d.Max, d.Placeholder, 0, d.Bind, d.OnChange)
}

func (r *renderer) colorPicker(e *Emitter, c *document.ColorPicker) {
	var a attrs
	a.str("type", "color").class("", c.Style)
	bindValue(&a, c.Bind, "", c.OnChange, nil)
	e.Line("<input" + a.String() + " />")
}

func (r *renderer) fileUpload(e *Emitter, f *document.FileUpload) {
	var a attrs
	a.str("type", "file").class("", f.Style).str("accept", f.Accept).str("data-max-size", f.MaxSize)
	a.flag("multiple", f.Multiple)

	if b, ok := bound(f.Bind); ok {
		files := "e.target.files?.[0] ?? null"
		if f.Multiple {
			files = "Array.from(e.target.files ?? [])"
		}
		a.expr("onChange", eventArrow("e", b.Mutator+"("+files+")", f.OnChange))
	} else {
		a.expr("onChange", eventArrow("e", f.OnChange))
	}
	e.Line("<input" + a.String() + " />")
}

func (r *renderer) progress(e *Emitter, p *document.Progress) {
	value := "0"
	if b, ok := bound(p.Bind); ok {
		value = b.Accessor
	} else if p.Value != "" {
		value = p.Value
	}

	width := value
	if p.Max > 0 {
		width = "(" + value + " / " + strconv.Itoa(p.Max) + ") * 100"
	}

	var a attrs
	a.str("role", "progressbar").class("", p.Style)
	if p.Max > 0 {
		a.str("aria-valuemax", strconv.Itoa(p.Max))
	}
	a.expr("aria-valuenow", value)
	a.expr("style", "{ width: `${"+width+"}%` }")

	e.Line("<div" + a.String() + " />")
	if p.ShowLabel {
		e.Line(`<span className="text-sm ml-2">{` + value + "}%</span>")
	}
}

func (r *renderer) counter(e *Emitter, c *document.Counter) {
	var root attrs
	root.class("NumberField-root", c.Style)
	if b, ok := bound(c.Bind); ok {
		root.expr("value", b.Accessor)
	}
	intExpr(&root, "min", c.Min)
	intExpr(&root, "max", c.Max)
	intExpr(&root, "step", c.Step)
	if b, ok := bound(c.Bind); ok {
		root.expr("onValueChange", eventArrow("value", b.Mutator+"(value)", c.OnChange))
	} else {
		root.expr("onValueChange", eventArrow("value", c.OnChange))
	}

	e.Open("<NumberField.Root" + root.String() + ">")
	e.Open(`<NumberField.Group className="NumberField-group">`)
	e.Open(`<NumberField.Decrement className="NumberField-decrement">`)
	e.Line("<span>-</span>")
	e.Close("</NumberField.Decrement>")
	e.Line(`<NumberField.Input className="NumberField-input" />`)
	e.Open(`<NumberField.Increment className="NumberField-increment">`)
	e.Line("<span>+</span>")
	e.Close("</NumberField.Increment>")
	e.Close("</NumberField.Group>")
	e.Close("</NumberField.Root>")
}

func (r *renderer) searchInput(e *Emitter, s *document.SearchInput) {
	var a attrs
	a.str("type", "search").str("placeholder", s.Placeholder)
	bindValue(&a, s.Bind, "", s.OnChange, nil)
	if s.OnSearch != "" {
		a.expr("onKeyDown", "(e) => { if (e.key === 'Enter') { "+statement(s.OnSearch)+" } }")
	}

	var wrapper attrs
	wrapper.class("SearchInput flex items-center gap-2", s.Style)

	e.Open("<div" + wrapper.String() + ">")
	e.Line("<input" + a.String() + " />")
	if b, ok := bound(s.Bind); ok && s.Clearable {
		e.Line(`<button type="button" className="SearchInput-clear" aria-label="Clear" onClick={() => ` + b.Mutator + `("")}>×</button>`)
	}
	e.Close("</div>")
}

func (r *renderer) chipInput(e *Emitter, c *document.ChipInput) {
	placeholder := c.Placeholder
	if placeholder == "" {
		placeholder = "Add tags..."
	}

	var wrapper attrs
	wrapper.class("", c.Style)

	var input attrs
	input.str("type", "text").str("placeholder", placeholder)
	input.str("className", "w-full px-3 py-2 border rounded-lg focus:outline-none focus:ring-2 focus:ring-blue-500")

	b, isBound := bound(c.Bind)
	if isBound {
		add := "if (e.key === 'Enter') { const newValue = e.target.value.trim(); if (newValue && !" + b.Accessor + ".includes(newValue)) { " +
			b.Mutator + "([..." + b.Accessor + ", newValue]); " + statement(c.OnAdd) + " } e.target.value = ''; }"
		input.expr("onKeyDown", "(e) => { "+add+" }")
	}

	e.Open("<div" + wrapper.String() + ">")
	if isBound {
		remove := b.Mutator + "(" + b.Accessor + ".filter((_, j) => j !== i))"
		e.Open(`<div className="flex flex-wrap gap-2 mb-2">`)
		e.Open("{" + b.Accessor + ".map((chip, i) => (")
		e.Open(`<span key={i} className="px-2 py-1 bg-blue-100 text-blue-800 rounded-full text-sm flex items-center">`)
		e.Line("{chip}")
		e.Line(`<button type="button" className="ml-1 text-blue-600 hover:text-blue-800" aria-label="Remove" onClick={` + eventArrow("", remove, c.OnRemove) + `}>×</button>`)
		e.Close("</span>")
		e.Close("))}")
		e.Close("</div>")
	}
	if len(c.Suggestions) > 0 {
		e.Open(`<div className="mb-2 flex flex-wrap">`)
		for _, s := range c.Suggestions {
			var sa attrs
			sa.str("key", s)
			sa.str("className", "inline-block px-2 py-1 bg-gray-100 text-gray-700 text-xs rounded-full mr-2 mb-1 cursor-pointer hover:bg-gray-200")
			if isBound {
				lit := jsString(s)
				sa.expr("style", b.Accessor+".includes("+lit+") ? { opacity: 0.5, pointerEvents: 'none' } : {}")
				sa.expr("onClick", "() => { if (!"+b.Accessor+".includes("+lit+")) { "+b.Mutator+"([..."+b.Accessor+", "+lit+"]); } }")
			}
			e.Line("<span" + sa.String() + ">" + jsxText(s) + "</span>")
		}
		e.Close("</div>")
	}
	e.Line("<input" + input.String() + " />")
	e.Close("</div>")
}

func (r *renderer) pagination(e *Emitter, p *document.Pagination) {
	total := p.Total
	if total == 0 {
		total = 100
	}
	perPage := p.PerPage
	if perPage == 0 {
		perPage = 10
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	last := strconv.Itoa(pages)

	var wrapper attrs
	wrapper.class("flex items-center justify-center space-x-2", p.Style)

	const buttonClass = "px-3 py-1 border rounded hover:bg-gray-100"
	var prev, next attrs
	prev.str("type", "button").str("className", buttonClass)
	next.str("type", "button").str("className", buttonClass)

	current := "1"
	if b, ok := bound(p.Bind); ok {
		current = "{" + b.Accessor + "}"
		prev.expr("onClick", eventArrow("", b.Accessor+" > 1 && "+b.Mutator+"("+b.Accessor+" - 1)", p.OnChange))
		next.expr("onClick", eventArrow("", b.Accessor+" < "+last+" && "+b.Mutator+"("+b.Accessor+" + 1)", p.OnChange))
	} else {
		prev.expr("onClick", eventArrow("", p.OnChange))
		next.expr("onClick", eventArrow("", p.OnChange))
	}

	e.Open("<div" + wrapper.String() + ">")
	e.Line("<button" + prev.String() + ">Previous</button>")
	e.Line(`<span className="px-4 py-2 border bg-blue-50 text-blue-600 font-medium">Page ` + current + " of " + last + "</span>")
	e.Line("<button" + next.String() + ">Next</button>")
	e.Close("</div>")
}

func (r *renderer) rating(e *Emitter, rt *document.Rating) {
	limit := rt.Max
	if limit == 0 {
		limit = 5
	}
	stars := make([]string, limit)
	for i := range stars {
		stars[i] = strconv.Itoa(i + 1)
	}

	value := "0"
	b, isBound := bound(rt.Bind)
	switch {
	case isBound:
		value = b.Accessor
	case rt.Value != nil:
		value = strconv.Itoa(*rt.Value)
	}

	var wrapper attrs
	wrapper.class("Rating flex items-center gap-1", rt.Style).str("role", "radiogroup").str("aria-label", rt.Label)

	var star attrs
	star.expr("key", "n").str("type", "button")
	star.expr("className", "n <= "+value+` ? "Rating-star Rating-star-active" : "Rating-star"`)
	star.expr("aria-label", "`${n} of "+strconv.Itoa(limit)+"`")
	switch {
	case rt.ReadOnly:
		star.flag("disabled", true)
	case isBound:
		star.expr("onClick", eventArrow("", b.Mutator+"(n)", rt.OnChange))
	default:
		star.expr("onClick", eventArrow("", rt.OnChange))
	}

	e.Open("<div" + wrapper.String() + ">")
	if rt.Label != "" {
		e.Line(`<span className="Rating-label">` + jsxText(rt.Label) + "</span>")
	}
	e.Open("{[" + strings.Join(stars, ", ") + "].map((n) => (")
	e.Line("<button" + star.String() + ">★</button>")
	e.Close("))}")
	e.Close("</div>")
}
