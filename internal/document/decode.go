package document

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var elementFactories = map[Kind]func() Element{
	KindHeading:        func() Element { return &Heading{} },
	KindText:           func() Element { return &Text{} },
	KindButton:         func() Element { return &Button{} },
	KindCard:           func() Element { return &Card{} },
	KindList:           func() Element { return &List{} },
	KindLayout:         func() Element { return &LayoutElement{} },
	KindInput:          func() Element { return &Input{} },
	KindImage:          func() Element { return &Image{} },
	KindSpacer:         func() Element { return &Spacer{} },
	KindContainer:      func() Element { return &Container{} },
	KindCheckbox:       func() Element { return &Checkbox{} },
	KindSlider:         func() Element { return &Slider{} },
	KindSelect:         func() Element { return &Select{} },
	KindRadioGroup:     func() Element { return &RadioGroup{} },
	KindTextarea:       func() Element { return &Textarea{} },
	KindForm:           func() Element { return &Form{} },
	KindField:          func() Element { return &Field{} },
	KindFieldset:       func() Element { return &Fieldset{} },
	KindDateInput:      func() Element { return &DateInput{} },
	KindTimeInput:      func() Element { return &TimeInput{} },
	KindDateTimeInput:  func() Element { return &DateTimeInput{} },
	KindColorPicker:    func() Element { return &ColorPicker{} },
	KindFileUpload:     func() Element { return &FileUpload{} },
	KindProgress:       func() Element { return &Progress{} },
	KindToggle:         func() Element { return &Toggle{} },
	KindTabs:           func() Element { return &Tabs{} },
	KindAccordion:      func() Element { return &Accordion{} },
	KindDialog:         func() Element { return &Dialog{} },
	KindTooltip:        func() Element { return &Tooltip{} },
	KindPopover:        func() Element { return &Popover{} },
	KindBadge:          func() Element { return &Badge{} },
	KindTag:            func() Element { return &Tag{} },
	KindAlert:          func() Element { return &Alert{} },
	KindSpinner:        func() Element { return &Spinner{} },
	KindCounter:        func() Element { return &Counter{} },
	KindSearchInput:    func() Element { return &SearchInput{} },
	KindCopyButton:     func() Element { return &CopyButton{} },
	KindPagination:     func() Element { return &Pagination{} },
	KindBreadcrumb:     func() Element { return &Breadcrumb{} },
	KindAvatar:         func() Element { return &Avatar{} },
	KindChipInput:      func() Element { return &ChipInput{} },
	KindNav:            func() Element { return &Nav{} },
	KindNavigationMenu: func() Element { return &NavigationMenu{} },
	KindURL:            func() Element { return &URL{} },
	KindEmail:          func() Element { return &Email{} },
	KindRating:         func() Element { return &Rating{} },
}

var kindAliases = map[string]Kind{
	"modal": KindDialog,
}

// Kinds lists every element discriminator in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(elementFactories))
	for k := range elementFactories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// LookupKind resolves a discriminator, including aliases.
func LookupKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	if alias, ok := kindAliases[name]; ok {
		return alias, true
	}
	k := Kind(name)
	_, ok := elementFactories[k]
	return k, ok
}

// UnmarshalYAML decodes a sequence of `element:`-tagged mappings into typed elements.
func (e *Elements) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*e = nil
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: children must be a list", value.Line)
	}

	out := make(Elements, 0, len(value.Content))
	for _, item := range value.Content {
		el, err := decodeElement(item)
		if err != nil {
			return err
		}
		out = append(out, el)
	}
	*e = out
	return nil
}

func decodeElement(node *yaml.Node) (Element, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: element must be a mapping", node.Line)
	}

	var base struct {
		Element string `yaml:"element"`
	}
	if err := node.Decode(&base); err != nil {
		return nil, err
	}
	if base.Element == "" {
		return nil, fmt.Errorf("line %d: element kind is missing", node.Line)
	}

	kind, ok := LookupKind(base.Element)
	if !ok {
		return nil, fmt.Errorf("line %d: unknown element kind %q", node.Line, base.Element)
	}

	el := elementFactories[kind]()
	if err := node.Decode(el); err != nil {
		return nil, err
	}
	return el, nil
}

// UnmarshalYAML keeps the field order of the `validation:` mapping, which fixes the order of the emitted checks.
func (v *FieldValidations) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*v = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: validation must be a mapping of field to rules", value.Line)
	}

	out := make(FieldValidations, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		rulesNode := value.Content[i+1]

		var rules []ValidationRule
		switch rulesNode.Kind {
		case yaml.SequenceNode:
			if err := rulesNode.Decode(&rules); err != nil {
				return err
			}
		case yaml.MappingNode:
			var rule ValidationRule
			if err := rulesNode.Decode(&rule); err != nil {
				return err
			}
			rules = []ValidationRule{rule}
		default:
			return fmt.Errorf("line %d: rules for %q must be a list", rulesNode.Line, key.Value)
		}

		out = append(out, FieldValidation{Field: key.Value, Rules: rules})
	}
	*v = out
	return nil
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if strings.EqualFold(node.Content[i].Value, key) {
			return true
		}
	}
	return false
}
