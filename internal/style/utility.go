package style

// utilities maps utility class tokens to the declaration they stand for when
// resolving theme precedence. Tokens missing here are left to the utility
// class engine of the generated app.
var utilities = map[string]Declaration{
	// font size
	"text-sm":   {Property: "font-size", Value: "0.875rem"},
	"text-base": {Property: "font-size", Value: "1rem"},
	"text-lg":   {Property: "font-size", Value: "1.125rem"},
	"text-xl":   {Property: "font-size", Value: "1.25rem"},
	"text-2xl":  {Property: "font-size", Value: "1.5rem"},
	"text-3xl":  {Property: "font-size", Value: "1.875rem"},
	"text-4xl":  {Property: "font-size", Value: "2.25rem"},
	"text-5xl":  {Property: "font-size", Value: "3rem"},

	// font weight
	"font-normal":   {Property: "font-weight", Value: "400"},
	"font-medium":   {Property: "font-weight", Value: "500"},
	"font-semibold": {Property: "font-weight", Value: "600"},
	"font-bold":     {Property: "font-weight", Value: "700"},

	// alignment
	"text-center": {Property: "text-align", Value: "center"},
	"text-left":   {Property: "text-align", Value: "left"},
	"text-right":  {Property: "text-align", Value: "right"},

	// text color
	"text-white":      {Property: "color", Value: "#ffffff"},
	"text-black":      {Property: "color", Value: "#000000"},
	"text-gray-300":   {Property: "color", Value: "#d1d5db"},
	"text-gray-400":   {Property: "color", Value: "#9ca3af"},
	"text-gray-500":   {Property: "color", Value: "#6b7280"},
	"text-gray-600":   {Property: "color", Value: "#4b5563"},
	"text-gray-700":   {Property: "color", Value: "#374151"},
	"text-gray-900":   {Property: "color", Value: "#111827"},
	"text-blue-400":   {Property: "color", Value: "#60a5fa"},
	"text-blue-500":   {Property: "color", Value: "#3b82f6"},
	"text-blue-600":   {Property: "color", Value: "#2563eb"},
	"text-cyan-400":   {Property: "color", Value: "#22d3ee"},
	"text-orange-500": {Property: "color", Value: "#f97316"},
	"text-green-400":  {Property: "color", Value: "#4ade80"},
	"text-yellow-400": {Property: "color", Value: "#facc15"},

	// background
	"bg-white":     {Property: "background-color", Value: "#ffffff"},
	"bg-black":     {Property: "background-color", Value: "#000000"},
	"bg-gray-50":   {Property: "background-color", Value: "#f9fafb"},
	"bg-gray-100":  {Property: "background-color", Value: "#f3f4f6"},
	"bg-gray-200":  {Property: "background-color", Value: "#e5e7eb"},
	"bg-gray-800":  {Property: "background-color", Value: "#1f2937"},
	"bg-gray-900":  {Property: "background-color", Value: "#111827"},
	"bg-blue-500":  {Property: "background-color", Value: "#3b82f6"},
	"bg-blue-600":  {Property: "background-color", Value: "#2563eb"},
	"bg-blue-700":  {Property: "background-color", Value: "#1d4ed8"},
	"bg-green-400": {Property: "background-color", Value: "#4ade80"},

	// padding
	"p-1":   {Property: "padding", Value: "0.25rem"},
	"p-2":   {Property: "padding", Value: "0.5rem"},
	"p-3":   {Property: "padding", Value: "0.75rem"},
	"p-4":   {Property: "padding", Value: "1rem"},
	"p-6":   {Property: "padding", Value: "1.5rem"},
	"px-2":  {Property: "padding-left", Value: "0.5rem"},
	"px-3":  {Property: "padding-left", Value: "0.75rem"},
	"px-4":  {Property: "padding-left", Value: "1rem"},
	"px-6":  {Property: "padding-left", Value: "1.5rem"},
	"px-8":  {Property: "padding-left", Value: "2rem"},
	"py-1":  {Property: "padding-top", Value: "0.25rem"},
	"py-2":  {Property: "padding-top", Value: "0.5rem"},
	"py-3":  {Property: "padding-top", Value: "0.75rem"},
	"py-4":  {Property: "padding-top", Value: "1rem"},
	"py-12": {Property: "padding-top", Value: "3rem"},
	"py-16": {Property: "padding-top", Value: "4rem"},
	"py-20": {Property: "padding-top", Value: "5rem"},

	// margin
	"mb-1":    {Property: "margin-bottom", Value: "0.25rem"},
	"mb-2":    {Property: "margin-bottom", Value: "0.5rem"},
	"mb-3":    {Property: "margin-bottom", Value: "0.75rem"},
	"mb-4":    {Property: "margin-bottom", Value: "1rem"},
	"mb-6":    {Property: "margin-bottom", Value: "1.5rem"},
	"mb-8":    {Property: "margin-bottom", Value: "2rem"},
	"mt-2":    {Property: "margin-top", Value: "0.5rem"},
	"mt-4":    {Property: "margin-top", Value: "1rem"},
	"mt-6":    {Property: "margin-top", Value: "1.5rem"},
	"mt-12":   {Property: "margin-top", Value: "3rem"},
	"mx-auto": {Property: "margin-left", Value: "auto"},

	// flex
	"flex":            {Property: "display", Value: "flex"},
	"inline-flex":     {Property: "display", Value: "inline-flex"},
	"flex-row":        {Property: "flex-direction", Value: "row"},
	"flex-col":        {Property: "flex-direction", Value: "column"},
	"flex-wrap":       {Property: "flex-wrap", Value: "wrap"},
	"items-center":    {Property: "align-items", Value: "center"},
	"items-start":     {Property: "align-items", Value: "flex-start"},
	"items-end":       {Property: "align-items", Value: "flex-end"},
	"justify-center":  {Property: "justify-content", Value: "center"},
	"justify-between": {Property: "justify-content", Value: "space-between"},
	"justify-end":     {Property: "justify-content", Value: "flex-end"},
	"gap-1":           {Property: "gap", Value: "0.25rem"},
	"gap-2":           {Property: "gap", Value: "0.5rem"},
	"gap-3":           {Property: "gap", Value: "0.75rem"},
	"gap-4":           {Property: "gap", Value: "1rem"},
	"gap-6":           {Property: "gap", Value: "1.5rem"},
	"gap-8":           {Property: "gap", Value: "2rem"},
	"flex-1":          {Property: "flex", Value: "1 1 0%"},

	// border
	"border":       {Property: "border-width", Value: "1px"},
	"border-2":     {Property: "border-width", Value: "2px"},
	"rounded":      {Property: "border-radius", Value: "0.25rem"},
	"rounded-lg":   {Property: "border-radius", Value: "0.5rem"},
	"rounded-xl":   {Property: "border-radius", Value: "0.75rem"},
	"rounded-full": {Property: "border-radius", Value: "9999px"},

	// sizing
	"w-5":       {Property: "width", Value: "1.25rem"},
	"h-5":       {Property: "height", Value: "1.25rem"},
	"min-w-280": {Property: "min-width", Value: "70rem"},
	"max-w-2xl": {Property: "max-width", Value: "42rem"},
	"max-w-4xl": {Property: "max-width", Value: "56rem"},

	"shadow-lg":            {Property: "box-shadow", Value: "0 10px 15px -3px rgb(0 0 0 / 0.1)"},
	"cursor-pointer":       {Property: "cursor", Value: "pointer"},
	"overflow-hidden":      {Property: "overflow", Value: "hidden"},
	"text-decoration-none": {Property: "text-decoration", Value: "none"},
}

// Translate resolves a utility class token.
func Translate(class string) (Declaration, bool) {
	d, ok := utilities[class]
	return d, ok
}
