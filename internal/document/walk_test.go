package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsAndLookup(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	require.Len(t, kinds, 46)
	require.Contains(t, kinds, KindNavigationMenu)

	k, ok := LookupKind("modal")
	require.True(t, ok)
	require.Equal(t, KindDialog, k)

	_, ok = LookupKind("marquee")
	require.False(t, ok)
}

func TestWalkVisitsNestedChildrenInOrder(t *testing.T) {
	t.Parallel()

	elements := Elements{
		&Heading{Content: "a"},
		&Card{Children: Elements{
			&Text{Content: "b"},
			&Form{Children: Elements{&Field{Name: "c"}}},
		}},
		&Text{Content: "d"},
	}

	var kinds []Kind
	Walk(elements, func(el Element) bool {
		kinds = append(kinds, el.Kind())
		return true
	})
	require.Equal(t, []Kind{KindHeading, KindCard, KindText, KindForm, KindField, KindText}, kinds)

	kinds = nil
	Walk(elements, func(el Element) bool {
		kinds = append(kinds, el.Kind())
		return el.Kind() != KindCard
	})
	require.Equal(t, []Kind{KindHeading, KindCard, KindText}, kinds)
}

func TestCheckBindings(t *testing.T) {
	t.Parallel()

	page := &Page{
		Name:  "Home",
		State: []StateDefinition{{Name: "count"}},
		Children: Elements{
			&Counter{Bind: "count"},
			&Container{Children: Elements{
				&Input{Bind: "missing"},
			}},
			&List{Data: "rows"},
			&Dialog{Open: "menuOpen"},
			&Text{Content: "plain"},
		},
	}

	diags := CheckBindings(page, "menuOpen")
	require.Len(t, diags, 2)

	require.Equal(t, KindInput, diags[0].Element)
	require.Equal(t, "bind", diags[0].Field)
	require.Equal(t, "missing", diags[0].Name)
	require.Equal(t, `Home: input.bind: references undeclared state "missing"`, diags[0].String())

	require.Equal(t, KindList, diags[1].Element)
	require.Equal(t, "data", diags[1].Field)

	require.Empty(t, CheckBindings(nil))
}
