package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttrsBuilder(t *testing.T) {
	t.Parallel()

	var a attrs
	a.class("Button", []string{" px-2 ", "", "py-1"}).
		str("title", `say "hi"`).
		str("empty", "").
		expr("onClick", "() => go()").
		expr("skipped", "").
		flag("disabled", true).
		flag("hidden", false)

	require.Equal(t, ` className="Button px-2 py-1" title="say &quot;hi&quot;" onClick={() => go()} disabled`, a.String())

	var empty attrs
	require.Equal(t, "", empty.String())
}

func TestJSStringEscapes(t *testing.T) {
	t.Parallel()

	require.Equal(t, `"a\\d+\"b\n"`, jsString("a\\d+\"b\n"))
	require.Equal(t, `'it\'s'`, jsSingle("it's"))
}

func TestJSXTextEscapesMarkup(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain text", jsxText("plain text"))
	require.Equal(t, "{'{'}count{'}'} &lt;b&gt;", jsxText("{count} <b>"))
}

func TestEventArrow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		param string
		parts []string
		want  string
	}{
		{name: "empty", parts: []string{"", "  "}, want: ""},
		{name: "single call", parts: []string{"doThing()"}, want: "() => doThing()"},
		{name: "single with semicolon", parts: []string{"doThing();"}, want: "() => doThing()"},
		{name: "multi statement", parts: []string{"a(); b()"}, want: "() => { a(); b(); }"},
		{name: "several parts", param: "e", parts: []string{"setX(e.target.value)", "track()"}, want: "(e) => { setX(e.target.value); track(); }"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, eventArrow(tc.param, tc.parts...))
		})
	}
}
