package codegen

import (
	"fmt"
	"strings"
)

// indentUnit is one nesting level of generated source.
const indentUnit = "  "

// Emitter assembles generated source line by line, tracking the current
// nesting level. The zero value starts at level 0.
type Emitter struct {
	b     strings.Builder
	level int
}

// NewEmitter returns an Emitter whose first line is indented by level.
func NewEmitter(level int) *Emitter {
	if level < 0 {
		level = 0
	}
	return &Emitter{level: level}
}

// Level reports the current nesting level.
func (e *Emitter) Level() int { return e.level }

// Line writes s on its own line at the current level. Empty strings produce
// an empty line with no trailing whitespace.
func (e *Emitter) Line(s string) {
	if s != "" {
		e.b.WriteString(strings.Repeat(indentUnit, e.level))
		e.b.WriteString(s)
	}
	e.b.WriteByte('\n')
}

// Linef is Line with fmt formatting. Callers pass user text as arguments,
// never as part of format.
func (e *Emitter) Linef(format string, args ...any) {
	e.Line(fmt.Sprintf(format, args...))
}

// Open writes s and nests the following lines one level deeper.
func (e *Emitter) Open(s string) {
	e.Line(s)
	e.Indent()
}

// Close leaves one nesting level and writes s.
func (e *Emitter) Close(s string) {
	e.Dedent()
	e.Line(s)
}

// Indent increases the nesting level.
func (e *Emitter) Indent() { e.level++ }

// Dedent decreases the nesting level, stopping at zero.
func (e *Emitter) Dedent() {
	if e.level > 0 {
		e.level--
	}
}

// Raw writes text unchanged, without indentation or a trailing newline.
func (e *Emitter) Raw(text string) {
	e.b.WriteString(text)
}

// Len reports the number of bytes written so far.
func (e *Emitter) Len() int { return e.b.Len() }

// String returns the accumulated source.
func (e *Emitter) String() string { return e.b.String() }
