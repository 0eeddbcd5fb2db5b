package codegen

import (
	"strings"
)

// attrs is an ordered JSX attribute list.
type attrs []string

// str adds name="value". Empty values are skipped.
func (a *attrs) str(name, value string) *attrs {
	if value == "" {
		return a
	}
	*a = append(*a, name+`="`+attrValue(value)+`"`)
	return a
}

// expr adds name={expr}.
func (a *attrs) expr(name, expr string) *attrs {
	if expr == "" {
		return a
	}
	*a = append(*a, name+"={"+expr+"}")
	return a
}

// flag adds a bare boolean attribute.
func (a *attrs) flag(name string, on bool) *attrs {
	if on {
		*a = append(*a, name)
	}
	return a
}

// class adds className with the structural base classes first, followed by
// the element's style tokens. It is omitted when both are empty.
func (a *attrs) class(base string, style []string) *attrs {
	return a.str("className", classNames(base, style))
}

// String renders the list with a leading space, or "" when empty.
func (a attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	return " " + strings.Join(a, " ")
}

// formatStyle joins style tokens with single spaces.
func formatStyle(style []string) string {
	tokens := make([]string, 0, len(style))
	for _, token := range style {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// classNames concatenates the base class and the formatted style, base first.
func classNames(base string, style []string) string {
	user := formatStyle(style)
	switch {
	case base == "":
		return user
	case user == "":
		return base
	}
	return base + " " + user
}

var attrReplacer = strings.NewReplacer(`"`, "&quot;")

func attrValue(s string) string {
	return attrReplacer.Replace(s)
}

var jsxTextReplacer = strings.NewReplacer(
	"{", "{'{'}",
	"}", "{'}'}",
	"<", "&lt;",
	">", "&gt;",
)

// jsxText makes s safe as literal JSX text: braces become string
// expressions and angle brackets entities.
func jsxText(s string) string {
	return jsxTextReplacer.Replace(s)
}

var jsDoubleReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// jsString renders s as a double-quoted JavaScript string literal.
func jsString(s string) string {
	return `"` + jsDoubleReplacer.Replace(s) + `"`
}

var jsSingleReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// jsSingle renders s as a single-quoted JavaScript string literal.
func jsSingle(s string) string {
	return "'" + jsSingleReplacer.Replace(s) + "'"
}

// statement terminates a handler fragment with a semicolon unless it already
// ends with one or with a block.
func statement(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || strings.HasSuffix(code, ";") || strings.HasSuffix(code, "}") {
		return code
	}
	return code + ";"
}

// eventArrow builds `(param) => body` from a list of statements. A single call
// stays an expression body, several become a block.
func eventArrow(param string, parts ...string) string {
	var body []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			body = append(body, p)
		}
	}
	switch len(body) {
	case 0:
		return ""
	case 1:
		if expr := strings.TrimSuffix(body[0], ";"); !strings.Contains(expr, ";") {
			return "(" + param + ") => " + expr
		}
	}
	for i := range body {
		body[i] = statement(body[i])
	}
	return "(" + param + ") => { " + strings.Join(body, " ") + " }"
}
