package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	simplePage := `page:
  name: Home
  style: ["bg-gray-100"]
  children:
    - element: heading
      content: "Hi"
      style: ["text-2xl"]
    - element: button
      content: "Go"
      onClick: "doThing()"
`

	statePage := `page:
  name: Counter
  state:
    - name: count
      type: number
      initial: 0
    - name: tags
      initial: ["a", "b"]
  children:
    - element: counter
      bind: count
      min: 0
      max: 10
`

	unknownKind := `page:
  name: Broken
  children:
    - element: heading
      content: ok
    - element: marquee
      content: nope
`

	badLayout := `page:
  name: Layouted
  layout:
    type: diagonal
  children: []
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, page *Page, err error)
	}{
		{
			name:     "simple page decodes typed children",
			contents: simplePage,
			assert: func(t *testing.T, page *Page, err error) {
				require.NoError(t, err)
				require.Equal(t, "Home", page.Name)
				require.Len(t, page.Children, 2)

				heading, ok := page.Children[0].(*Heading)
				require.True(t, ok)
				require.Equal(t, "Hi", heading.Content)
				require.Equal(t, []string{"text-2xl"}, heading.Style)

				button, ok := page.Children[1].(*Button)
				require.True(t, ok)
				require.Equal(t, "doThing()", button.OnClick)
			},
		},
		{
			name:     "state initial values keep their yaml types",
			contents: statePage,
			assert: func(t *testing.T, page *Page, err error) {
				require.NoError(t, err)
				require.Len(t, page.State, 2)
				require.Equal(t, 0, page.State[0].Initial)
				require.Equal(t, []any{"a", "b"}, page.State[1].Initial)

				counter := page.Children[0].(*Counter)
				require.NotNil(t, counter.Min)
				require.Equal(t, 0, *counter.Min)
				require.Nil(t, counter.Step)
			},
		},
		{
			name:     "unknown element kind is a parse error with a line",
			contents: unknownKind,
			assert: func(t *testing.T, page *Page, err error) {
				var parseErr *nwlerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 6, parseErr.Line)
				require.Contains(t, parseErr.Message, `unknown element kind "marquee"`)
			},
		},
		{
			name:     "invalid layout type is a validation error",
			contents: badLayout,
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *nwlerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "page.layout.type", validationErr.Field)
			},
		},
		{
			name:     "empty input is rejected",
			contents: "\n",
			assert: func(t *testing.T, page *Page, err error) {
				var parseErr *nwlerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			page, err := ParsePage("page.yaml", []byte(tc.contents))
			tc.assert(t, page, err)
		})
	}
}

func TestParsePageDecodesFormValidationInOrder(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Signup
  children:
    - element: form
      onSubmit: "submit()"
      validation:
        username:
          - required: true
          - minLength: 3
        email:
          - pattern: "^\\S+@\\S+$"
            message: "Bad email"
        age:
          required: true
      captcha:
        provider: cloudflare
        siteKey: "abc"
      children:
        - element: field
          name: username
`

	page, err := ParsePage("signup.yaml", []byte(contents))
	require.NoError(t, err)

	form := page.Children[0].(*Form)
	require.Len(t, form.Validation, 3)
	require.Equal(t, "username", form.Validation[0].Field)
	require.Equal(t, "email", form.Validation[1].Field)
	require.Equal(t, "age", form.Validation[2].Field)
	require.True(t, form.Validation[0].Rules[0].Required)
	require.Equal(t, 3, *form.Validation[0].Rules[1].MinLength)
	require.Equal(t, `^\S+@\S+$`, form.Validation[1].Rules[0].Pattern)
	require.Len(t, form.Validation[2].Rules, 1)
	require.Equal(t, CaptchaCloudflare, form.Captcha.Provider)
	require.Len(t, form.Children, 1)
}

func TestParsePageRejectsUnknownCaptchaProvider(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Signup
  children:
    - element: form
      captcha:
        provider: turnstile-ish
`

	_, err := ParsePage("signup.yaml", []byte(contents))
	var validationErr *nwlerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "page.children[0].captcha.provider", validationErr.Field)
}

func TestParsePageTabsUseIDAsValue(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Settings
  state:
    - name: tab
      initial: general
  children:
    - element: tabs
      bind: tab
      options:
        - id: general
          label: General
        - id: billing
`

	page, err := ParsePage("settings.yaml", []byte(contents))
	require.NoError(t, err)

	tabs := page.Children[0].(*Tabs)
	require.Equal(t, "general", tabs.Options[0].Value)
	require.Equal(t, "General", tabs.Options[0].DisplayLabel())
	require.Equal(t, "billing", tabs.Options[1].DisplayLabel())
}

func TestParsePageModalAliasAndNestedChildren(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Dialogs
  state:
    - name: open
      initial: false
  children:
    - element: modal
      title: Confirm
      open: open
      children:
        - element: card
          children:
            - element: text
              content: "Are you sure?"
`

	page, err := ParsePage("dialogs.yaml", []byte(contents))
	require.NoError(t, err)

	dialog, ok := page.Children[0].(*Dialog)
	require.True(t, ok)
	require.Equal(t, KindDialog, dialog.Kind())

	card := dialog.Children[0].(*Card)
	text := card.Children[0].(*Text)
	require.Equal(t, "Are you sure?", text.Content)
}

func TestParsePageSelectWithEmptyValueOption(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Picker
  children:
    - element: select
      placeholder: Choose
      options:
        - value: ""
          label: "None"
        - value: "a"
`

	page, err := ParsePage("picker.yaml", []byte(contents))
	require.NoError(t, err)

	sel := page.Children[0].(*Select)
	require.Equal(t, "", sel.Options[0].Value)
	require.Equal(t, "None", sel.Options[0].DisplayLabel())
	require.Equal(t, "a", sel.Options[1].DisplayLabel())
}

func TestParsePageRejectsDuplicateState(t *testing.T) {
	t.Parallel()

	contents := `page:
  name: Dupes
  state:
    - name: user_name
    - name: user-name
`

	_, err := ParsePage("dupes.yaml", []byte(contents))
	var validationErr *nwlerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "page.state[1].name", validationErr.Field)
}

func TestParseDocumentAcceptsPageOrPages(t *testing.T) {
	t.Parallel()

	single := `page:
  name: One
  children:
    - element: text
      content: a
`
	multi := `pages:
  - name: One
    children:
      - element: text
        content: a
  - page:
      name: Two
      children:
        - element: email
          address: hi@example.com
`

	doc, err := ParseDocument("single.yaml", []byte(single))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	doc, err = ParseDocument("multi.yaml", []byte(multi))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	require.Equal(t, "Two", doc.Pages[1].Name)
	_, ok := doc.Pages[1].Children[0].(*Email)
	require.True(t, ok)

	_, err = ParseDocument("neither.yaml", []byte("name: x\n"))
	var parseErr *nwlerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTempFile(t, dir, "nwl.yaml", `name: demo
css_theme: default
routes:
  - path: /
    page: pages/home.yaml
  - path: /about
    page: pages/about.yaml
`)

	cfg, err := LoadProject(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Name)
	require.Len(t, cfg.Routes, 2)
	require.Equal(t, "/about", cfg.Routes[1].Path)
	require.True(t, cfg.HasStylesheet())
	require.Equal(t, "src", cfg.SrcDir())
	require.Equal(t, "themes", cfg.ThemesDir())
}

func TestLoadProjectErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadProject(filepath.Join(dir, "missing.yaml"))
	var notFound *nwlerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "config", notFound.Kind)

	badPath := writeTempFile(t, dir, "bad.yaml", `name: demo
routes:
  - path: about
    page: about.yaml
`)
	_, err = LoadProject(badPath)
	var validationErr *nwlerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "project.routes[0].path", validationErr.Field)

	dupPath := writeTempFile(t, dir, "dup.yaml", `name: demo
routes:
  - path: /
    page: a.yaml
  - path: /
    page: b.yaml
`)
	_, err = LoadProject(dupPath)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "routes[1].path", validationErr.Field)
}

func TestLoadPageMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPage(filepath.Join(t.TempDir(), "nope.yaml"))
	var notFound *nwlerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "page", notFound.Kind)
}

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
