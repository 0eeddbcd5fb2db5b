package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnsupportedElement is returned when the generator meets an element kind it has no case for.
var ErrUnsupportedElement = stdErrors.New("unsupported element")

// ParseError is malformed YAML in Path. Line is 1-based, 0 when unknown.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func NewParseError(path string, line int, err error) error {
	e := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return "parse error: " + position(e.Path, e.Line) + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// position renders "path:line", or just path when line is unknown.
func position(path string, line int) string {
	if line > 0 {
		return fmt.Sprintf("%s:%d", path, line)
	}
	return path
}

// ValidationError is a schema violation. Field is the dotted YAML path of the
// offending value, e.g. "page.layout.type".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Field == "":
		return "validation error: " + e.Message
	}
	return "validation error: " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a required input that does not exist on disk.
type NotFoundError struct {
	Kind string
	Path string
	Err  error
}

// NewNotFoundError constructs a NotFoundError. Kind is one of config, page, template or directory.
func NewNotFoundError(kind, path string, err error) error {
	return &NotFoundError{Kind: kind, Path: path, Err: err}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("not found: %s", e.Path)
}

// Unwrap exposes the underlying error.
func (e *NotFoundError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CodegenError represents a failure while lowering an element tree to source text.
type CodegenError struct {
	Page    string
	Element string
	Err     error
}

// NewCodegenError constructs a CodegenError.
func NewCodegenError(page, element string, err error) error {
	return &CodegenError{Page: page, Element: element, Err: err}
}

func (e *CodegenError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Page != "" && e.Element != "":
		return fmt.Sprintf("codegen error in page %s (%s): %v", e.Page, e.Element, e.Err)
	case e.Page != "":
		return fmt.Sprintf("codegen error in page %s: %v", e.Page, e.Err)
	case e.Element != "":
		return fmt.Sprintf("codegen error (%s): %v", e.Element, e.Err)
	}
	return fmt.Sprintf("codegen error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CodegenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BindingError reports an element bound to a state field the page never declares.
type BindingError struct {
	Page    string
	Bind    string
	Element string
}

// NewBindingError constructs a BindingError.
func NewBindingError(page, bind, element string) error {
	return &BindingError{Page: page, Bind: bind, Element: element}
}

func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Page != "" {
		return fmt.Sprintf("binding error in page %s: %s binds undeclared state %q", e.Page, e.Element, e.Bind)
	}
	return fmt.Sprintf("binding error: %s binds undeclared state %q", e.Element, e.Bind)
}

// SourceLocation points into a generated file. Line is 1-based, Column 0-based.
type SourceLocation struct {
	File   string
	Line   int
	Column int
	Text   string
}

func (l SourceLocation) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", l.File, l.Line, l.Column, l.Text)
	}
	return fmt.Sprintf("%s: %s", l.File, l.Text)
}

// CheckError reports generated output that failed verification.
type CheckError struct {
	File     string
	Messages []SourceLocation
}

// NewCheckError constructs a CheckError.
func NewCheckError(file string, messages ...SourceLocation) error {
	return &CheckError{File: file, Messages: messages}
}

func (e *CheckError) Error() string {
	if e == nil {
		return ""
	}
	switch len(e.Messages) {
	case 0:
		return fmt.Sprintf("check error: %s", e.File)
	case 1:
		return "check error: " + e.Messages[0].String()
	}
	return fmt.Sprintf("check error: %s (and %d more)", e.Messages[0].String(), len(e.Messages)-1)
}
