package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("pages/home.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "pages/home.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: pages/home.yaml:7: mapping values are not allowed", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("nwl.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: nwl.yaml: empty document", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("routes[0].path", "must start with /", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "routes[0].path", validationErr.Field)
	require.Contains(t, err.Error(), "must start with /")
}

func TestNotFoundErrorReportsKind(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file or directory")
	err := NewNotFoundError("page", "pages/about.yaml", underlying)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "page", notFound.Kind)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "page not found: pages/about.yaml", err.Error())
}

func TestCodegenErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewCodegenError("Home", "rating", ErrUnsupportedElement)

	var codegenErr *CodegenError
	require.ErrorAs(t, err, &codegenErr)
	require.Equal(t, "Home", codegenErr.Page)
	require.ErrorIs(t, err, ErrUnsupportedElement)
	require.Equal(t, "codegen error in page Home (rating): unsupported element", err.Error())
}

func TestBindingErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewBindingError("Signup", "emial", "input")
	require.Equal(t, `binding error in page Signup: input binds undeclared state "emial"`, err.Error())
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var codegenErr *CodegenError
	var notFound *NotFoundError
	require.Empty(t, parseErr.Error())
	require.Nil(t, codegenErr.Unwrap())
	require.Empty(t, notFound.Error())
}

func TestCheckErrorSummarizesMessages(t *testing.T) {
	t.Parallel()

	single := NewCheckError("src/home.tsx", SourceLocation{File: "src/home.tsx", Line: 3, Column: 7, Text: "Unexpected \"}\""})
	require.Equal(t, `check error: src/home.tsx:3:7: Unexpected "}"`, single.Error())

	multi := NewCheckError("src/main.tsx",
		SourceLocation{File: "src/main.tsx", Text: `cannot resolve "./about"`},
		SourceLocation{File: "src/main.tsx", Text: `cannot resolve "./contact"`},
	)
	require.Equal(t, `check error: src/main.tsx: cannot resolve "./about" (and 1 more)`, multi.Error())

	var checkErr *CheckError
	require.ErrorAs(t, multi, &checkErr)
	require.Len(t, checkErr.Messages, 2)
}
