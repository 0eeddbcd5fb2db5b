package components

import "time"

// PageStatus is the lifecycle of one route during a build.
type PageStatus string

const (
	PagePending  PageStatus = "pending"
	PageRunning  PageStatus = "running"
	PageCompiled PageStatus = "compiled"
	PageFailed   PageStatus = "failed"
)

// Done reports whether the page reached a final state.
func (s PageStatus) Done() bool {
	return s == PageCompiled || s == PageFailed
}

// PageEntry is one row of the page list.
type PageEntry struct {
	Route     string
	Page      string
	Component string
	Status    PageStatus
	Duration  time.Duration
	Err       error
}

// PageList holds the rows in route order.
type PageList struct {
	order []string
	rows  map[string]PageEntry
}

// NewPageList returns an empty list.
func NewPageList() PageList {
	return PageList{rows: make(map[string]PageEntry)}
}

// Ensure adds a pending row for route unless it exists. It reports whether a
// row was added.
func (l *PageList) Ensure(route, page string) bool {
	if l.rows == nil {
		l.rows = make(map[string]PageEntry)
	}
	if _, ok := l.rows[route]; ok {
		return false
	}
	l.rows[route] = PageEntry{Route: route, Page: page, Status: PagePending}
	l.order = append(l.order, route)
	return true
}

// Get returns the row of route.
func (l PageList) Get(route string) (PageEntry, bool) {
	e, ok := l.rows[route]
	return e, ok
}

// Set replaces the row of route, adding it when missing.
func (l *PageList) Set(entry PageEntry) {
	l.Ensure(entry.Route, entry.Page)
	l.rows[entry.Route] = entry
}

// Len is the number of rows.
func (l PageList) Len() int {
	return len(l.order)
}

// Entries returns a copy of the rows in insertion order.
func (l PageList) Entries() []PageEntry {
	entries := make([]PageEntry, 0, len(l.order))
	for _, route := range l.order {
		entries = append(entries, l.rows[route])
	}
	return entries
}
