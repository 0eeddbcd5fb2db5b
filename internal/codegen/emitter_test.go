package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitterIndentsNestedLines(t *testing.T) {
	t.Parallel()

	e := NewEmitter(1)
	e.Open("<div>")
	e.Line("<p>hi</p>")
	e.Line("")
	e.Close("</div>")

	require.Equal(t, "  <div>\n    <p>hi</p>\n\n  </div>\n", e.String())
	require.Equal(t, 1, e.Level())
}

func TestEmitterDedentStopsAtZero(t *testing.T) {
	t.Parallel()

	e := NewEmitter(-3)
	e.Dedent()
	e.Close("x")
	e.Raw("y")
	e.Linef("%d", 2)

	require.Equal(t, 0, e.Level())
	require.Equal(t, "x\ny2\n", e.String())
	require.Equal(t, len("x\ny2\n"), e.Len())
}
