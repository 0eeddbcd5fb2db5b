package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPascalCase(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello_world": "HelloWorld",
		"hello-world": "HelloWorld",
		"hello world": "HelloWorld",
		"hello":       "Hello",
		"HELLO":       "HELLO",
		"myPage":      "MyPage",
		"a__b":        "AB",
		"":            "",
		"_leading":    "Leading",
	}

	for in, want := range cases {
		in, want := in, want
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, ToPascalCase(in))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello_world": "helloWorld",
		"hello-world": "helloWorld",
		"hello world": "helloWorld",
		"hello":       "hello",
		"HELLO":       "HELLO",
		"Hello":       "Hello",
		"menu_open":   "menuOpen",
		"":            "",
	}

	for in, want := range cases {
		in, want := in, want
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, ToCamelCase(in))
		})
	}
}

func TestSeparatorsCollapseIdentically(t *testing.T) {
	t.Parallel()

	require.Equal(t, ToPascalCase("hello_world"), ToPascalCase("hello-world"))
	require.Equal(t, ToPascalCase("hello-world"), ToPascalCase("hello world"))
	require.Equal(t, ToCamelCase("hello_world"), ToCamelCase("hello world"))
}

func TestCasingIsIdempotentOnNormalizedInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Home", ToPascalCase(ToPascalCase("home")))
	require.Equal(t, "count", ToCamelCase(ToCamelCase("count")))
	require.Equal(t, "UserProfile", ToCamelCase("UserProfile"))
}

func TestBind(t *testing.T) {
	t.Parallel()

	b := Bind("user_email")
	require.Equal(t, "userEmail", b.Accessor)
	require.Equal(t, "setUserEmail", b.Mutator)

	require.Equal(t, Binding{Name: "count", Accessor: "count", Mutator: "setCount"}, Bind("count"))
}

func TestFileStemAndIdentifier(t *testing.T) {
	t.Parallel()

	require.Equal(t, "userprofile", FileStem("UserProfile"))
	require.True(t, IsIdentifier("menuOpen"))
	require.True(t, IsIdentifier("$ref"))
	require.False(t, IsIdentifier("9lives"))
	require.False(t, IsIdentifier("has.dot"))
	require.False(t, IsIdentifier(""))
}
