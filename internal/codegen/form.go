package codegen

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
)

func (r *renderer) form(e *Emitter, f *document.Form) error {
	var a attrs
	a.class("Form", f.Style)
	a.expr("onSubmit", SubmitHandler(f))

	e.Open("<Form" + a.String() + ">")
	if err := r.children(e, f.Children); err != nil {
		return err
	}
	if f.Captcha != nil {
		e.Line(captchaMarkup(f.Captcha))
	}
	e.Close("</Form>")
	return nil
}

// SubmitHandler lowers a form's validation rules, captcha requirement and
// handlers into one submit arrow function. Checks run in declaration order and
// all of them run before the failure branch, so every failing rule is logged.
func SubmitHandler(f *document.Form) string {
	parts := []string{"e.preventDefault();"}

	checks := validationChecks(f.Validation)
	if f.Captcha != nil {
		checks = append(checks, "if (!window.captchaToken) { console.error('Please complete the captcha'); _hasError = true; }")
	}

	if len(checks) > 0 {
		parts = append(parts, "let _hasError = false;")
		parts = append(parts, checks...)

		failure := []string{"console.error('Validation failed');"}
		if h := statement(f.OnValidationError); h != "" {
			failure = append(failure, h)
		}
		failure = append(failure, "return;")
		parts = append(parts, "if (_hasError) { "+strings.Join(failure, " ")+" }")
	}

	if h := statement(f.OnSubmit); h != "" {
		parts = append(parts, h)
	}

	return "(e) => { " + strings.Join(parts, " ") + " }"
}

func validationChecks(validations document.FieldValidations) []string {
	var checks []string
	for _, fv := range validations {
		value := naming.ToCamelCase(fv.Field)
		for _, rule := range fv.Rules {
			if rule.Required {
				checks = append(checks, check("!"+value+".trim()", message(rule, fv.Field+" is required")))
			}
			if rule.Pattern != "" {
				checks = append(checks, check("!new RegExp("+jsString(rule.Pattern)+").test("+value+")", message(rule, "Invalid format for "+fv.Field)))
			}
			if rule.MinLength != nil {
				n := *rule.MinLength
				checks = append(checks, check(fmt.Sprintf("%s.length < %d", value, n), message(rule, fmt.Sprintf("%s must be at least %d characters", fv.Field, n))))
			}
			if rule.MaxLength != nil {
				n := *rule.MaxLength
				checks = append(checks, check(fmt.Sprintf("%s.length > %d", value, n), message(rule, fmt.Sprintf("%s must be no more than %d characters", fv.Field, n))))
			}
		}
	}
	return checks
}

func check(condition, msg string) string {
	return "if (" + condition + ") { console.error(" + jsSingle(msg) + "); _hasError = true; }"
}

func message(rule document.ValidationRule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

func captchaMarkup(c *document.Captcha) string {
	var a attrs
	switch c.Provider {
	case document.CaptchaCloudflare:
		a.str("className", "cf-turnstile")
		a = append(a, "data-sitekey="+jsxString(c.SiteKey))
		a.str("data-theme", orDefault(c.Theme, "auto"))
	case document.CaptchaRecaptcha:
		if orDefault(c.Version, "v2") == "v3" {
			a.str("id", "recaptcha-container")
			a = append(a, "data-sitekey="+jsxString(c.SiteKey))
			a.str("data-action", orDefault(c.Action, "submit"))
		} else {
			a.str("className", "g-recaptcha")
			a = append(a, "data-sitekey="+jsxString(c.SiteKey))
		}
	case document.CaptchaHCaptcha:
		a.str("className", "h-captcha")
		a = append(a, "data-sitekey="+jsxString(c.SiteKey))
		a.str("data-theme", orDefault(c.Theme, "light"))
	}
	return "<div" + a.String() + "></div>"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (r *renderer) field(e *Emitter, f *document.Field) {
	var root attrs
	root.str("name", f.Name).class("Field-root", f.Style)

	var control attrs
	control.str("placeholder", f.Placeholder).str("className", "Field-control")

	e.Open("<Field.Root" + root.String() + ">")
	if f.Label != "" {
		e.Line(`<Field.Label className="Field-label">` + jsxText(f.Label) + "</Field.Label>")
	}
	e.Line("<Field.Control" + control.String() + " />")
	e.Line(`<Field.Error className="Field-error" />`)
	e.Close("</Field.Root>")
}
