package project

import "time"

// EventType identifies a build progress event.
type EventType string

const (
	// EventBuildStarted is emitted once the project file is loaded.
	EventBuildStarted EventType = "build.started"
	// EventPageStarted is emitted before a route's page is parsed.
	EventPageStarted EventType = "page.started"
	// EventPageCompiled is emitted when a page produced its component source.
	EventPageCompiled EventType = "page.compiled"
	// EventPageFailed is emitted when parsing or generating a page fails.
	EventPageFailed EventType = "page.failed"
	// EventFileWritten is emitted after each output file is handed to the writer.
	EventFileWritten EventType = "file.written"
	// EventBuildCompleted is emitted after the router module is written.
	EventBuildCompleted EventType = "build.completed"
)

// Event reports build progress. Fields irrelevant to Type are empty.
type Event struct {
	Type      EventType
	Route     string
	Page      string
	Component string
	Path      string
	// Total is the number of routes, set on EventBuildStarted.
	Total    int
	Duration time.Duration
	Err      error
}
