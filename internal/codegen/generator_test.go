package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestElementRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		el       document.Element
		contains []string
		absent   []string
	}{
		{
			name:     "heading",
			el:       &document.Heading{Content: "Hi", Style: []string{"text-2xl"}},
			contains: []string{`<h1 className="text-2xl">Hi</h1>`},
		},
		{
			name:     "button handler",
			el:       &document.Button{Content: "Go", OnClick: "doThing()"},
			contains: []string{`<Button className="Button" onClick={() => doThing()}>Go</Button>`},
		},
		{
			name:     "button route",
			el:       &document.Button{Content: "About", OnClick: "/about"},
			contains: []string{`onClick={() => window.location.href = "/about"}`},
		},
		{
			name:     "bound input",
			el:       &document.Input{Bind: "email", Placeholder: "you@example.com"},
			contains: []string{`<input placeholder="you@example.com" value={email} onChange={(e) => setEmail(e.target.value)} />`},
		},
		{
			name:     "literal input without handler",
			el:       &document.Input{Value: "x"},
			contains: []string{`<input defaultValue="x" />`},
			absent:   []string{"onChange"},
		},
		{
			name:     "literal input with handler",
			el:       &document.Input{Value: "x", OnChange: "log(e)"},
			contains: []string{`value="x" onChange={(e) => log(e)}`},
		},
		{
			name:     "bound slider coerces",
			el:       &document.Slider{Bind: "volume", Min: intPtr(0), Max: intPtr(100)},
			contains: []string{`type="range" min="0" max="100" value={volume} onChange={(e) => setVolume(Number(e.target.value))}`},
		},
		{
			name:     "bound checkbox",
			el:       &document.Checkbox{Bind: "agree", Label: "I agree"},
			contains: []string{`checked={agree} onCheckedChange={(checked) => setAgree(checked)}`, "<span>I agree</span>"},
		},
		{
			name: "unbound radio group",
			el: &document.RadioGroup{Options: []document.Option{
				{Value: "a", Label: "A"},
				{Value: "b"},
			}},
			contains: []string{`<RadioGroup className="RadioGroup" defaultValue="a">`, "<span>A</span>", "<span>b</span>"},
		},
		{
			name: "bound tabs",
			el: &document.Tabs{Bind: "tab", Options: []document.TabOption{
				{Value: "one", Label: "One"},
				{Value: "two", Label: "Two"},
			}},
			contains: []string{`checked={tab === "one"}`, `onChange={() => setTab("two")}`},
			absent:   []string{"defaultChecked"},
		},
		{
			name: "unbound tabs",
			el: &document.Tabs{Options: []document.TabOption{
				{Value: "one", Label: "One"},
				{Value: "two", Label: "Two"},
			}},
			contains: []string{`value="one" className="sr-only" defaultChecked`},
		},
		{
			name: "bound accordion",
			el: &document.Accordion{Bind: "section", Items: []document.AccordionItem{
				{Title: "First", Content: "Body"},
			}},
			contains: []string{`value={[section]} onValueChange={(value) => setSection(value[0])}`, `<Accordion.Item value="item-0">`},
		},
		{
			name: "bound multiple accordion keeps every open item",
			el: &document.Accordion{Bind: "open sections", Multiple: true, Items: []document.AccordionItem{
				{Title: "First", Content: "Body"},
				{Title: "Second", Content: "More"},
			}},
			contains: []string{`multiple value={openSections} onValueChange={(value) => setOpenSections(value)}`},
			absent:   []string{"value[0]", "[openSections]"},
		},
		{
			name:     "text escapes jsx syntax",
			el:       &document.Text{Content: "Use {x} when a < b > c"},
			contains: []string{"<p>Use {'{'}x{'}'} when a &lt; b &gt; c</p>"},
		},
		{
			name: "labels and titles escape jsx syntax",
			el: &document.Accordion{Items: []document.AccordionItem{
				{Title: "<Intro>", Content: "{body}"},
			}},
			contains: []string{"&lt;Intro&gt;", "{'{'}body{'}'}"},
			absent:   []string{"<Intro>"},
		},
		{
			name: "unbound accordion",
			el: &document.Accordion{Items: []document.AccordionItem{
				{Title: "First", Content: "Body"},
			}},
			contains: []string{`defaultValue={["item-0"]}`},
		},
		{
			name: "bound nav",
			el: &document.Nav{Bind: "current", Links: []document.NavLink{
				{Label: "Home", Href: "/"},
				{Label: "About"},
			}},
			contains: []string{`className={current === "/" ?`, `onClick={() => setCurrent("About")}`},
		},
		{
			name: "unbound nav marks explicit active link",
			el: &document.Nav{Links: []document.NavLink{
				{Label: "Home", Href: "/"},
				{Label: "About", Href: "/about", Active: true},
			}},
			contains: []string{`<a href="/about" className="text-sm font-medium transition-colors text-blue-400" aria-current="page">About</a>`},
		},
		{
			name:     "progress scales by max",
			el:       &document.Progress{Value: "30", Max: 60, ShowLabel: true},
			contains: []string{"aria-valuenow={30}", "style={{ width: `${(30 / 60) * 100}%` }}", "{30}%"},
		},
		{
			name:     "rating defaults to five stars",
			el:       &document.Rating{Bind: "stars"},
			contains: []string{"{[1, 2, 3, 4, 5].map((n) => (", "onClick={() => setStars(n)}"},
		},
		{
			name:     "pagination bound",
			el:       &document.Pagination{Bind: "page", Total: 95},
			contains: []string{"Page {page} of 10", "page > 1 && setPage(page - 1)", "page < 10 && setPage(page + 1)"},
		},
		{
			name:     "email link",
			el:       &document.Email{Address: "a@b.c", Subject: "Hello World"},
			contains: []string{`<a href="mailto:a@b.c?subject=Hello%20World">a@b.c</a>`},
		},
		{
			name:     "email subject with query characters",
			el:       &document.Email{Address: "a@b.c", Subject: "Hi there & more = 1+1"},
			contains: []string{`href="mailto:a@b.c?subject=Hi%20there%20%26%20more%20%3D%201%2B1"`},
		},
		{
			name:     "url blank target",
			el:       &document.URL{Href: "https://x.dev", Target: "_blank"},
			contains: []string{`<a href="https://x.dev" target="_blank" rel="noopener noreferrer">https://x.dev</a>`},
		},
		{
			name:     "bound url input",
			el:       &document.URL{Bind: "site"},
			contains: []string{`<input type="url" value={site} onChange={(e) => setSite(e.target.value)} />`},
		},
		{
			name:     "badge variant",
			el:       &document.Badge{Content: "New", Variant: "success", Style: []string{"ml-2"}},
			contains: []string{`<span className="Badge Badge-success ml-2">New</span>`},
		},
		{
			name:     "avatar initials",
			el:       &document.Avatar{Name: "ada lovelace"},
			contains: []string{">AL</span>", "ada lovelace</span>"},
		},
		{
			name:     "bound dialog",
			el:       &document.Dialog{Open: "showDialog", Title: "Hey", Children: document.Elements{&document.Text{Content: "Body"}}},
			contains: []string{"<Dialog.Root open={showDialog} onOpenChange={(open) => setShowDialog(open)}>", "<p>Body</p>"},
			absent:   []string{"Dialog.Trigger"},
		},
		{
			name:     "copy button",
			el:       &document.CopyButton{Content: "npm i nwl", OnCopy: "notify()"},
			contains: []string{`onClick={() => { navigator.clipboard.writeText("npm i nwl"); notify(); }}>Copy</button>`},
		},
	}

	g := New()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := g.Element(tc.el, 0)
			require.NoError(t, err)
			for _, want := range tc.contains {
				require.Contains(t, out, want)
			}
			for _, unwanted := range tc.absent {
				require.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestElementIndentsEveryLine(t *testing.T) {
	t.Parallel()

	out, err := New().Element(&document.Card{Children: document.Elements{
		&document.Text{Content: "inside"},
	}}, 2)
	require.NoError(t, err)
	require.Equal(t, "    <div className=\"Card\">\n      <p>inside</p>\n    </div>", out)
}

func TestListKeysAreUniqueAcrossListsOfAPage(t *testing.T) {
	t.Parallel()

	page := &document.Page{
		Name: "Lists",
		Children: document.Elements{
			&document.List{Items: []document.ListItem{{Content: "a"}, {Content: "b"}}},
			&document.List{Items: []document.ListItem{{Content: "c"}}},
		},
	}

	out, err := New().Page(page)
	require.NoError(t, err)
	for _, key := range []string{`key="list-item-0"`, `key="list-item-1"`, `key="list-item-2"`} {
		require.Equal(t, 1, strings.Count(out, key), key)
	}
}

func TestListDataMode(t *testing.T) {
	t.Parallel()

	out, err := New().Element(&document.List{Data: "todo_items"}, 0)
	require.NoError(t, err)
	require.Contains(t, out, "{todoItems.map((item, index) => (")
	require.Contains(t, out, `<div key={item.id ?? index} className="List-item">`)
	require.Contains(t, out, "{item}")
}

// bogus satisfies document.Element through the embedded interface without
// being one of the known kinds.
type bogus struct{ document.Element }

func (bogus) Kind() document.Kind { return "bogus" }

func TestUnsupportedElement(t *testing.T) {
	t.Parallel()

	g := New()

	out, err := g.Element(bogus{}, 0)
	require.Empty(t, out)
	require.ErrorIs(t, err, nwlerrors.ErrUnsupportedElement)

	var cgErr *nwlerrors.CodegenError
	require.True(t, errors.As(err, &cgErr))
	require.Equal(t, "bogus", cgErr.Element)

	nested := &document.Page{Name: "Home", Children: document.Elements{
		&document.Card{Children: document.Elements{bogus{}}},
	}}
	page, err := g.Page(nested)
	require.Empty(t, page)
	require.ErrorIs(t, err, nwlerrors.ErrUnsupportedElement)
	require.True(t, errors.As(err, &cgErr))
	require.Equal(t, "Home", cgErr.Page)
}
