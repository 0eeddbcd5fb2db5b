package style

import "strings"

// Layer names one source of declarations.
type Layer int

const (
	LayerBase Layer = iota
	LayerOverride
	LayerInline
)

func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "base"
	case LayerOverride:
		return "override"
	case LayerInline:
		return "inline"
	}
	return "unknown"
}

// Precedence lists the layers from lowest to highest priority. Later layers
// win property by property.
var Precedence = []Layer{LayerBase, LayerOverride, LayerInline}

// Merge folds layers in order into one rule list. The first layer is kept as
// parsed, so a plain rule and its pseudo-class variants stay separate blocks.
// Each rule of a later layer lands on its target (see target) and replaces
// same-named properties there, appending the rest; a rule with no target is
// appended as a new block.
func Merge(layers ...[]Rule) []Rule {
	if len(layers) == 0 {
		return nil
	}

	merged := make([]Rule, 0, len(layers[0]))
	for _, rule := range layers[0] {
		merged = append(merged, Rule{
			Selector:     strings.TrimSpace(rule.Selector),
			Declarations: append([]Declaration(nil), rule.Declarations...),
		})
	}

	for _, layer := range layers[1:] {
		for _, rule := range layer {
			i := target(merged, rule)
			if i < 0 {
				merged = append(merged, Rule{Selector: strings.TrimSpace(rule.Selector)})
				i = len(merged) - 1
			}
			for _, d := range rule.Declarations {
				merged[i].Set(d.Property, d.Value)
			}
		}
	}
	return merged
}

// target finds the merged rule that rule applies to. A pseudo-class rule only
// matches the identical selector; a plain rule matches the first plain rule
// with the same Key.
func target(merged []Rule, rule Rule) int {
	if rule.Pseudo() {
		selector := strings.TrimSpace(rule.Selector)
		for i := range merged {
			if merged[i].Selector == selector {
				return i
			}
		}
		return -1
	}

	key := Key(rule.Selector)
	for i := range merged {
		if !merged[i].Pseudo() && Key(merged[i].Selector) == key {
			return i
		}
	}
	return -1
}
