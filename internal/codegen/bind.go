package codegen

import (
	"strings"

	"github.com/alexisbeaulieu97/nwl/internal/naming"
)

// bound derives the hook pair of a bind name. ok is false when unbound.
func bound(name string) (naming.Binding, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return naming.Binding{}, false
	}
	return naming.Bind(name), true
}

// bindValue wires value and onChange on a native input. A bound control reads
// the accessor and passes convert(e.target.value) to the mutator; an unbound
// one falls back to the literal value and the user's handler. A literal value
// without a handler becomes defaultValue so the control stays editable.
func bindValue(a *attrs, bind, value, onChange string, convert func(string) string) {
	if b, ok := bound(bind); ok {
		arg := "e.target.value"
		if convert != nil {
			arg = convert(arg)
		}
		a.expr("value", b.Accessor)
		a.expr("onChange", eventArrow("e", b.Mutator+"("+arg+")", onChange))
		return
	}

	if strings.TrimSpace(onChange) == "" {
		a.str("defaultValue", value)
		return
	}
	a.str("value", value)
	a.expr("onChange", eventArrow("e", onChange))
}

func asNumber(expr string) string { return "Number(" + expr + ")" }

// bindCallback wires a component prop pair such as checked/onCheckedChange
// where the callback already receives the new value.
func bindCallback(a *attrs, bind, valueProp, changeProp, param, onChange string) {
	if b, ok := bound(bind); ok {
		a.expr(valueProp, b.Accessor)
		a.expr(changeProp, eventArrow(param, b.Mutator+"("+param+")", onChange))
		return
	}
	a.expr(changeProp, eventArrow(param, onChange))
}
