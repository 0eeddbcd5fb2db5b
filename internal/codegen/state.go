package codegen

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/naming"
)

// Hook is one useState declaration of a generated component.
type Hook struct {
	naming.Binding
	Initial string
}

// declaration renders `[value, setValue] = useState(initial)`.
func (h Hook) declaration() string {
	return "[" + h.Accessor + ", " + h.Mutator + "] = useState(" + h.Initial + ")"
}

var menuOpen = naming.Bind("menuOpen")

// implicitRule synthesizes a hook that some element kinds need without the
// page declaring it.
type implicitRule struct {
	hook  Hook
	needs func(document.Element) bool
}

// ImplicitOrder fixes the order implicit hooks are declared in, ahead of all
// declared state.
var ImplicitOrder = []implicitRule{
	{
		hook: Hook{Binding: menuOpen, Initial: "false"},
		needs: func(el document.Element) bool {
			m, ok := el.(*document.NavigationMenu)
			return ok && m.Hamburger
		},
	},
}

// ImplicitHooks walks the whole tree and returns the implicit hooks it needs,
// in ImplicitOrder.
func ImplicitHooks(elements document.Elements) []Hook {
	var hooks []Hook
	for _, rule := range ImplicitOrder {
		found := false
		document.Walk(elements, func(el document.Element) bool {
			if !found && rule.needs(el) {
				found = true
			}
			return !found
		})
		if found {
			hooks = append(hooks, rule.hook)
		}
	}
	return hooks
}

// Hooks lists every hook of a page: implicit hooks first, then declared state
// in declaration order. A declared state that reuses an implicit accessor
// replaces the implicit hook.
func Hooks(page *document.Page) []Hook {
	if page == nil {
		return nil
	}

	declared := make(map[string]struct{}, len(page.State))
	for _, st := range page.State {
		declared[naming.ToCamelCase(st.Name)] = struct{}{}
	}

	var hooks []Hook
	for _, h := range ImplicitHooks(page.Children) {
		if _, ok := declared[h.Accessor]; !ok {
			hooks = append(hooks, h)
		}
	}
	for _, st := range page.State {
		hooks = append(hooks, Hook{Binding: naming.Bind(st.Name), Initial: Literal(st.Initial)})
	}
	return hooks
}

// Literal renders a decoded YAML value as a JavaScript literal.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return floatLiteral(val)
	case string:
		return jsString(val)
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = Literal(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		return objectLiteral(val)
	case map[any]any:
		converted := make(map[string]any, len(val))
		for k, item := range val {
			converted[fmt.Sprint(k)] = item
		}
		return objectLiteral(converted)
	}
	return "null"
}

func floatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func objectLiteral(m map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, len(keys))
	for i, k := range keys {
		key := k
		if !naming.IsIdentifier(k) {
			key = jsString(k)
		}
		fields[i] = key + ": " + Literal(m[k])
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}
