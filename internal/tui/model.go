// Package tui renders build progress with bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/internal/tui/components"
)

// EventMsg forwards a build event to the model.
type EventMsg struct {
	Event project.Event
}

// DoneMsg reports that the build returned.
type DoneMsg struct {
	Err error
}

type tickMsg struct{}

// Model is the bubbletea state of a build.
type Model struct {
	project        string
	pages          components.PageList
	files          []string
	compiled       int
	failed         int
	finished       bool
	cancelled      bool
	err            error
	nonInteractive bool
}

// NewModel tracks the routes of cfg in declaration order.
func NewModel(cfg *document.ProjectConfig, nonInteractive bool) Model {
	m := Model{pages: components.NewPageList(), nonInteractive: nonInteractive}
	if cfg != nil {
		m.project = cfg.Name
		for _, r := range cfg.Routes {
			m.pages.Ensure(r.Path, r.Page)
		}
	}
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalPages returns the number of tracked routes.
func (m Model) TotalPages() int {
	return m.pages.Len()
}

// CompiledPages returns the number of routes that compiled.
func (m Model) CompiledPages() int {
	return m.compiled
}

// Files lists the project-relative paths written so far.
func (m Model) Files() []string {
	return append([]string(nil), m.files...)
}

// IsFinished reports whether the build ended.
func (m Model) IsFinished() bool {
	return m.finished
}

// Err is the error the build returned, if any.
func (m Model) Err() error {
	return m.err
}

// Page returns the row of route.
func (m Model) Page(route string) (components.PageEntry, bool) {
	return m.pages.Get(route)
}

// Cancelled reports whether the user interrupted the program.
func (m Model) Cancelled() bool {
	return m.cancelled
}
