package document

// Kind is the `element:` discriminator of an element.
type Kind string

const (
	KindHeading        Kind = "heading"
	KindText           Kind = "text"
	KindButton         Kind = "button"
	KindCard           Kind = "card"
	KindList           Kind = "list"
	KindLayout         Kind = "layout"
	KindInput          Kind = "input"
	KindImage          Kind = "image"
	KindSpacer         Kind = "spacer"
	KindContainer      Kind = "container"
	KindCheckbox       Kind = "checkbox"
	KindSlider         Kind = "slider"
	KindSelect         Kind = "select"
	KindRadioGroup     Kind = "radio-group"
	KindTextarea       Kind = "textarea"
	KindForm           Kind = "form"
	KindField          Kind = "field"
	KindFieldset       Kind = "fieldset"
	KindDateInput      Kind = "date-input"
	KindTimeInput      Kind = "time-input"
	KindDateTimeInput  Kind = "datetime-input"
	KindColorPicker    Kind = "color-picker"
	KindFileUpload     Kind = "file-upload"
	KindProgress       Kind = "progress"
	KindToggle         Kind = "toggle"
	KindTabs           Kind = "tabs"
	KindAccordion      Kind = "accordion"
	KindDialog         Kind = "dialog"
	KindTooltip        Kind = "tooltip"
	KindPopover        Kind = "popover"
	KindBadge          Kind = "badge"
	KindTag            Kind = "tag"
	KindAlert          Kind = "alert"
	KindSpinner        Kind = "spinner"
	KindCounter        Kind = "counter"
	KindSearchInput    Kind = "search-input"
	KindCopyButton     Kind = "copy-button"
	KindPagination     Kind = "pagination"
	KindBreadcrumb     Kind = "breadcrumb"
	KindAvatar         Kind = "avatar"
	KindChipInput      Kind = "chip-input"
	KindNav            Kind = "nav"
	KindNavigationMenu Kind = "navigation-menu"
	KindURL            Kind = "url"
	KindEmail          Kind = "email"
	KindRating         Kind = "rating"
)

// Element is one node of a page tree. The set of implementations is closed:
// only this package can add a kind.
type Element interface {
	Kind() Kind
	sealed()
}

// Elements is an ordered child list decoded from tagged YAML objects.
type Elements []Element

type Heading struct {
	Content string   `yaml:"content"`
	Style   []string `yaml:"style,omitempty"`
}

type Text struct {
	Content string   `yaml:"content"`
	Style   []string `yaml:"style,omitempty"`
}

type Button struct {
	Content string   `yaml:"content"`
	OnClick string   `yaml:"onClick,omitempty"`
	Style   []string `yaml:"style,omitempty"`
}

type Card struct {
	Children Elements `yaml:"children,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type ListItem struct {
	Content string `yaml:"content"`
	OnClick string `yaml:"onClick,omitempty"`
}

// List renders static items, or repeats its children over a state array when Data is set.
type List struct {
	Items    []ListItem `yaml:"items,omitempty" validate:"omitempty,dive"`
	Data     string     `yaml:"data,omitempty"`
	As       string     `yaml:"as,omitempty"`
	OnClick  string     `yaml:"onClick,omitempty"`
	Children Elements   `yaml:"children,omitempty"`
	Style    []string   `yaml:"style,omitempty"`
}

type LayoutElement struct {
	Layout   Layout   `yaml:"layout" validate:"required"`
	Children Elements `yaml:"children,omitempty"`
}

type Input struct {
	Placeholder string   `yaml:"placeholder,omitempty"`
	Value       string   `yaml:"value,omitempty"`
	Bind        string   `yaml:"bind,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type Image struct {
	Src   string   `yaml:"src,omitempty"`
	Alt   string   `yaml:"alt,omitempty"`
	Style []string `yaml:"style,omitempty"`
}

type Spacer struct {
	Size string `yaml:"size,omitempty"`
}

type Container struct {
	Children Elements `yaml:"children,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type Checkbox struct {
	Label    string   `yaml:"label,omitempty"`
	Bind     string   `yaml:"bind,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type Slider struct {
	Bind     string   `yaml:"bind,omitempty"`
	Min      *int     `yaml:"min,omitempty"`
	Max      *int     `yaml:"max,omitempty"`
	Step     *int     `yaml:"step,omitempty"`
	Label    string   `yaml:"label,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

// Option is one choice of a select or radio group. Label defaults to Value.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// DisplayLabel returns Label, falling back to Value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

type Select struct {
	Placeholder string   `yaml:"placeholder,omitempty"`
	Bind        string   `yaml:"bind,omitempty"`
	Options     []Option `yaml:"options,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type RadioGroup struct {
	Label    string   `yaml:"label,omitempty"`
	Bind     string   `yaml:"bind,omitempty"`
	Options  []Option `yaml:"options,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type Textarea struct {
	Placeholder string   `yaml:"placeholder,omitempty"`
	Bind        string   `yaml:"bind,omitempty"`
	Rows        int      `yaml:"rows,omitempty" validate:"omitempty,min=1"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type CaptchaProvider string

const (
	CaptchaCloudflare CaptchaProvider = "cloudflare"
	CaptchaRecaptcha  CaptchaProvider = "recaptcha"
	CaptchaHCaptcha   CaptchaProvider = "hcaptcha"
)

type Captcha struct {
	Provider CaptchaProvider `yaml:"provider" validate:"required,captcha_provider"`
	SiteKey  string          `yaml:"siteKey,omitempty"`
	Theme    string          `yaml:"theme,omitempty"`
	Version  string          `yaml:"version,omitempty"`
	Action   string          `yaml:"action,omitempty"`
}

// ValidationRule is one check applied to a form field on submit.
type ValidationRule struct {
	Required  bool   `yaml:"required,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" validate:"omitempty,min=0"`
	MaxLength *int   `yaml:"maxLength,omitempty" validate:"omitempty,min=0"`
	Message   string `yaml:"message,omitempty"`
}

// FieldValidation holds the rules of one field in declaration order.
type FieldValidation struct {
	Field string
	Rules []ValidationRule `validate:"dive"`
}

// FieldValidations preserves the key order of the YAML `validation:` mapping.
type FieldValidations []FieldValidation

type Form struct {
	OnSubmit          string           `yaml:"onSubmit,omitempty"`
	Validation        FieldValidations `yaml:"validation,omitempty" validate:"omitempty,dive"`
	Captcha           *Captcha         `yaml:"captcha,omitempty" validate:"omitempty"`
	OnValidationError string           `yaml:"onValidationError,omitempty"`
	Children          Elements         `yaml:"children,omitempty"`
	Style             []string         `yaml:"style,omitempty"`
}

type Field struct {
	Name        string   `yaml:"name" validate:"required"`
	Label       string   `yaml:"label,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type Fieldset struct {
	Legend   string   `yaml:"legend,omitempty"`
	Children Elements `yaml:"children,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type DateInput struct {
	Bind        string   `yaml:"bind,omitempty"`
	Min         string   `yaml:"min,omitempty"`
	Max         string   `yaml:"max,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type TimeInput struct {
	Bind        string   `yaml:"bind,omitempty"`
	Min         string   `yaml:"min,omitempty"`
	Max         string   `yaml:"max,omitempty"`
	Step        int      `yaml:"step,omitempty" validate:"omitempty,min=1"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type DateTimeInput struct {
	Bind        string   `yaml:"bind,omitempty"`
	Min         string   `yaml:"min,omitempty"`
	Max         string   `yaml:"max,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type ColorPicker struct {
	Bind        string   `yaml:"bind,omitempty"`
	ShowPalette bool     `yaml:"showPalette,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type FileUpload struct {
	Bind     string   `yaml:"bind,omitempty"`
	Accept   string   `yaml:"accept,omitempty"`
	MaxSize  string   `yaml:"maxSize,omitempty"`
	Multiple bool     `yaml:"multiple,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type Progress struct {
	Value     string   `yaml:"value,omitempty"`
	Bind      string   `yaml:"bind,omitempty"`
	Max       int      `yaml:"max,omitempty" validate:"omitempty,min=1"`
	ShowLabel bool     `yaml:"showLabel,omitempty"`
	Style     []string `yaml:"style,omitempty"`
}

type Toggle struct {
	Label    string   `yaml:"label,omitempty"`
	Bind     string   `yaml:"bind,omitempty"`
	OnColor  string   `yaml:"onColor,omitempty"`
	OffColor string   `yaml:"offColor,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

// TabOption is one tab; YAML spells its value `id`.
type TabOption struct {
	Value string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

// DisplayLabel returns Label, falling back to Value.
func (o TabOption) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

type Tabs struct {
	Label    string      `yaml:"label,omitempty"`
	Bind     string      `yaml:"bind,omitempty"`
	Options  []TabOption `yaml:"options,omitempty"`
	OnChange string      `yaml:"onChange,omitempty"`
	Style    []string    `yaml:"style,omitempty"`
}

type AccordionItem struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Icon    string `yaml:"icon,omitempty"`
}

type Accordion struct {
	Multiple bool            `yaml:"multiple,omitempty"`
	Bind     string          `yaml:"bind,omitempty"`
	Items    []AccordionItem `yaml:"items,omitempty"`
	Style    []string        `yaml:"style,omitempty"`
}

// Dialog is also reachable as `element: modal`. Open names the state field that controls visibility.
type Dialog struct {
	Title    string   `yaml:"title,omitempty"`
	Open     string   `yaml:"open,omitempty"`
	OnClose  string   `yaml:"onClose,omitempty"`
	Children Elements `yaml:"children,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type Tooltip struct {
	Content string   `yaml:"content"`
	Trigger string   `yaml:"trigger,omitempty"`
	Open    string   `yaml:"open,omitempty"`
	Side    string   `yaml:"side,omitempty"`
	Style   []string `yaml:"style,omitempty"`
}

type Popover struct {
	Content string   `yaml:"content"`
	Trigger string   `yaml:"trigger,omitempty"`
	Open    string   `yaml:"open,omitempty"`
	Side    string   `yaml:"side,omitempty"`
	Title   string   `yaml:"title,omitempty"`
	Style   []string `yaml:"style,omitempty"`
}

type Badge struct {
	Content string   `yaml:"content"`
	Variant string   `yaml:"variant,omitempty"`
	Style   []string `yaml:"style,omitempty"`
}

type Tag struct {
	Content   string   `yaml:"content"`
	Removable bool     `yaml:"removable,omitempty"`
	OnRemove  string   `yaml:"onRemove,omitempty"`
	Style     []string `yaml:"style,omitempty"`
}

type Alert struct {
	Content     string   `yaml:"content"`
	AlertType   string   `yaml:"alertType,omitempty"`
	Dismissible bool     `yaml:"dismissible,omitempty"`
	OnDismiss   string   `yaml:"onDismiss,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type Spinner struct {
	Size  string   `yaml:"size,omitempty"`
	Label string   `yaml:"label,omitempty"`
	Style []string `yaml:"style,omitempty"`
}

type Counter struct {
	Bind     string   `yaml:"bind,omitempty"`
	Min      *int     `yaml:"min,omitempty"`
	Max      *int     `yaml:"max,omitempty"`
	Step     *int     `yaml:"step,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type SearchInput struct {
	Bind        string   `yaml:"bind,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Clearable   bool     `yaml:"clearable,omitempty"`
	OnSearch    string   `yaml:"onSearch,omitempty"`
	OnChange    string   `yaml:"onChange,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

// CopyButton copies Content to the clipboard; Text is the button label.
type CopyButton struct {
	Content string   `yaml:"content,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	OnCopy  string   `yaml:"onCopy,omitempty"`
	Style   []string `yaml:"style,omitempty"`
}

type Pagination struct {
	Bind     string   `yaml:"bind,omitempty"`
	Total    int      `yaml:"total,omitempty" validate:"omitempty,min=0"`
	PerPage  int      `yaml:"perPage,omitempty" validate:"omitempty,min=1"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type BreadcrumbItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href,omitempty"`
}

type Breadcrumb struct {
	Items []BreadcrumbItem `yaml:"items,omitempty"`
	Style []string         `yaml:"style,omitempty"`
}

type Avatar struct {
	Src      string   `yaml:"src,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Size     string   `yaml:"size,omitempty"`
	Fallback string   `yaml:"fallback,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

type ChipInput struct {
	Bind        string   `yaml:"bind,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	OnAdd       string   `yaml:"onAdd,omitempty"`
	OnRemove    string   `yaml:"onRemove,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

type NavLink struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href,omitempty"`
	Active bool   `yaml:"active,omitempty"`
}

// Key is the value a bound nav compares against: the href, or the label without one.
func (l NavLink) Key() string {
	if l.Href != "" {
		return l.Href
	}
	return l.Label
}

type Nav struct {
	Links       []NavLink `yaml:"links,omitempty"`
	Logo        string    `yaml:"logo,omitempty"`
	Sticky      bool      `yaml:"sticky,omitempty"`
	Transparent bool      `yaml:"transparent,omitempty"`
	Bind        string    `yaml:"bind,omitempty"`
	Style       []string  `yaml:"style,omitempty"`
}

type NavigationMenu struct {
	Items            []NavLink `yaml:"items,omitempty"`
	Logo             string    `yaml:"logo,omitempty"`
	MobileBreakpoint int       `yaml:"mobileBreakpoint,omitempty"`
	Hamburger        bool      `yaml:"hamburger,omitempty"`
	MobileStyle      []string  `yaml:"mobileStyle,omitempty"`
	Bind             string    `yaml:"bind,omitempty"`
	Style            []string  `yaml:"style,omitempty"`
}

type URL struct {
	Href        string   `yaml:"href,omitempty"`
	Content     string   `yaml:"content,omitempty"`
	Target      string   `yaml:"target,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Bind        string   `yaml:"bind,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

// IsInput reports whether the url renders as an input rather than an anchor.
func (u *URL) IsInput() bool { return u.Placeholder != "" || u.Bind != "" }

type Email struct {
	Address     string   `yaml:"address,omitempty"`
	Subject     string   `yaml:"subject,omitempty"`
	Content     string   `yaml:"content,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Bind        string   `yaml:"bind,omitempty"`
	Style       []string `yaml:"style,omitempty"`
}

// IsInput reports whether the email renders as an input rather than a mailto link.
func (e *Email) IsInput() bool { return e.Placeholder != "" || e.Bind != "" }

type Rating struct {
	Bind     string   `yaml:"bind,omitempty"`
	Value    *int     `yaml:"value,omitempty"`
	Max      int      `yaml:"max,omitempty" validate:"omitempty,min=1,max=10"`
	Label    string   `yaml:"label,omitempty"`
	ReadOnly bool     `yaml:"readOnly,omitempty"`
	OnChange string   `yaml:"onChange,omitempty"`
	Style    []string `yaml:"style,omitempty"`
}

func (*Heading) Kind() Kind        { return KindHeading }
func (*Text) Kind() Kind           { return KindText }
func (*Button) Kind() Kind         { return KindButton }
func (*Card) Kind() Kind           { return KindCard }
func (*List) Kind() Kind           { return KindList }
func (*LayoutElement) Kind() Kind  { return KindLayout }
func (*Input) Kind() Kind          { return KindInput }
func (*Image) Kind() Kind          { return KindImage }
func (*Spacer) Kind() Kind         { return KindSpacer }
func (*Container) Kind() Kind      { return KindContainer }
func (*Checkbox) Kind() Kind       { return KindCheckbox }
func (*Slider) Kind() Kind         { return KindSlider }
func (*Select) Kind() Kind         { return KindSelect }
func (*RadioGroup) Kind() Kind     { return KindRadioGroup }
func (*Textarea) Kind() Kind       { return KindTextarea }
func (*Form) Kind() Kind           { return KindForm }
func (*Field) Kind() Kind          { return KindField }
func (*Fieldset) Kind() Kind       { return KindFieldset }
func (*DateInput) Kind() Kind      { return KindDateInput }
func (*TimeInput) Kind() Kind      { return KindTimeInput }
func (*DateTimeInput) Kind() Kind  { return KindDateTimeInput }
func (*ColorPicker) Kind() Kind    { return KindColorPicker }
func (*FileUpload) Kind() Kind     { return KindFileUpload }
func (*Progress) Kind() Kind       { return KindProgress }
func (*Toggle) Kind() Kind         { return KindToggle }
func (*Tabs) Kind() Kind           { return KindTabs }
func (*Accordion) Kind() Kind      { return KindAccordion }
func (*Dialog) Kind() Kind         { return KindDialog }
func (*Tooltip) Kind() Kind        { return KindTooltip }
func (*Popover) Kind() Kind        { return KindPopover }
func (*Badge) Kind() Kind          { return KindBadge }
func (*Tag) Kind() Kind            { return KindTag }
func (*Alert) Kind() Kind          { return KindAlert }
func (*Spinner) Kind() Kind        { return KindSpinner }
func (*Counter) Kind() Kind        { return KindCounter }
func (*SearchInput) Kind() Kind    { return KindSearchInput }
func (*CopyButton) Kind() Kind     { return KindCopyButton }
func (*Pagination) Kind() Kind     { return KindPagination }
func (*Breadcrumb) Kind() Kind     { return KindBreadcrumb }
func (*Avatar) Kind() Kind         { return KindAvatar }
func (*ChipInput) Kind() Kind      { return KindChipInput }
func (*Nav) Kind() Kind            { return KindNav }
func (*NavigationMenu) Kind() Kind { return KindNavigationMenu }
func (*URL) Kind() Kind            { return KindURL }
func (*Email) Kind() Kind          { return KindEmail }
func (*Rating) Kind() Kind         { return KindRating }

func (*Heading) sealed()        {}
func (*Text) sealed()           {}
func (*Button) sealed()         {}
func (*Card) sealed()           {}
func (*List) sealed()           {}
func (*LayoutElement) sealed()  {}
func (*Input) sealed()          {}
func (*Image) sealed()          {}
func (*Spacer) sealed()         {}
func (*Container) sealed()      {}
func (*Checkbox) sealed()       {}
func (*Slider) sealed()         {}
func (*Select) sealed()         {}
func (*RadioGroup) sealed()     {}
func (*Textarea) sealed()       {}
func (*Form) sealed()           {}
func (*Field) sealed()          {}
func (*Fieldset) sealed()       {}
func (*DateInput) sealed()      {}
func (*TimeInput) sealed()      {}
func (*DateTimeInput) sealed()  {}
func (*ColorPicker) sealed()    {}
func (*FileUpload) sealed()     {}
func (*Progress) sealed()       {}
func (*Toggle) sealed()         {}
func (*Tabs) sealed()           {}
func (*Accordion) sealed()      {}
func (*Dialog) sealed()         {}
func (*Tooltip) sealed()        {}
func (*Popover) sealed()        {}
func (*Badge) sealed()          {}
func (*Tag) sealed()            {}
func (*Alert) sealed()          {}
func (*Spinner) sealed()        {}
func (*Counter) sealed()        {}
func (*SearchInput) sealed()    {}
func (*CopyButton) sealed()     {}
func (*Pagination) sealed()     {}
func (*Breadcrumb) sealed()     {}
func (*Avatar) sealed()         {}
func (*ChipInput) sealed()      {}
func (*Nav) sealed()            {}
func (*NavigationMenu) sealed() {}
func (*URL) sealed()            {}
func (*Email) sealed()          {}
func (*Rating) sealed()         {}
