package document

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/nwl/internal/naming"
	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	stateNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$ -]*$`)
	layoutTypes      = map[LayoutType]struct{}{LayoutColumn: {}, LayoutRow: {}, LayoutStack: {}, LayoutGrid: {}}
	captchaProviders = map[CaptchaProvider]struct{}{CaptchaCloudflare: {}, CaptchaRecaptcha: {}, CaptchaHCaptcha: {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation("route_path", func(fl validator.FieldLevel) bool {
			return strings.HasPrefix(fl.Field().String(), "/")
		})

		_ = v.RegisterValidation("layout_type", func(fl validator.FieldLevel) bool {
			_, ok := layoutTypes[LayoutType(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("captcha_provider", func(fl validator.FieldLevel) bool {
			_, ok := captchaProviders[CaptchaProvider(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("identifier_like", func(fl validator.FieldLevel) bool {
			return stateNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePage checks a page and every element beneath it.
func ValidatePage(page *Page) error {
	if page == nil {
		return nwlerrors.NewValidationError("page", "page is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(page); err != nil {
		return convertValidationError("page", err)
	}

	if component := naming.ToPascalCase(page.Name); !naming.IsIdentifier(component) {
		return nwlerrors.NewValidationError("page.name", fmt.Sprintf("%q does not produce a valid component name (%q)", page.Name, component), nil)
	}

	seen := make(map[string]int, len(page.State))
	for i, st := range page.State {
		accessor := naming.ToCamelCase(st.Name)
		if prev, ok := seen[accessor]; ok {
			return nwlerrors.NewValidationError(fmt.Sprintf("page.state[%d].name", i), fmt.Sprintf("duplicate state %q (also declared at state[%d])", st.Name, prev), nil)
		}
		seen[accessor] = i
	}

	return validateElements("page.children", page.Children)
}

func validateElements(prefix string, elements Elements) error {
	v := validatorInstance()
	for i, el := range elements {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		if el == nil {
			return nwlerrors.NewValidationError(path, "element is empty", nil)
		}
		if err := v.Struct(el); err != nil {
			return convertValidationError(path, err)
		}
		if children := Children(el); len(children) > 0 {
			if err := validateElements(path+".children", children); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateProject checks nwl.yaml after decoding.
func ValidateProject(cfg *ProjectConfig) error {
	if cfg == nil {
		return nwlerrors.NewValidationError("project", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError("project", err)
	}

	paths := make(map[string]int, len(cfg.Routes))
	for i, route := range cfg.Routes {
		if prev, ok := paths[route.Path]; ok {
			return nwlerrors.NewValidationError(fmt.Sprintf("routes[%d].path", i), fmt.Sprintf("duplicate route %q (also declared at routes[%d])", route.Path, prev), nil)
		}
		paths[route.Path] = i
	}

	return nil
}

// ValidateDocument validates every page of a multi-page document.
func ValidateDocument(doc *Document) error {
	if doc == nil || len(doc.Pages) == 0 {
		return nwlerrors.NewValidationError("pages", "document has no pages", nil)
	}
	for i := range doc.Pages {
		if err := ValidatePage(&doc.Pages[i]); err != nil {
			return fmt.Errorf("pages[%d]: %w", i, err)
		}
	}
	return nil
}

func convertValidationError(root string, err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(root, ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return nwlerrors.NewValidationError(field, msg, err)
	}

	return nwlerrors.NewValidationError(root, err.Error(), err)
}

// yamlishFieldName replaces the Go type name at the head of the namespace with root.
func yamlishFieldName(root string, fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return root + "." + strings.Join(parts, ".")
}
