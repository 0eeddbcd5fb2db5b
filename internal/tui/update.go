package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/internal/tui/components"
)

// Update applies a message to the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case EventMsg:
		m.apply(msg.Event)
		return m, nil
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}
	return m, nil
}

func (m *Model) apply(ev project.Event) {
	switch ev.Type {
	case project.EventPageStarted:
		m.pages.Ensure(ev.Route, ev.Page)
		entry, _ := m.pages.Get(ev.Route)
		entry.Status = components.PageRunning
		m.pages.Set(entry)
	case project.EventPageCompiled, project.EventPageFailed:
		m.pages.Ensure(ev.Route, ev.Page)
		entry, _ := m.pages.Get(ev.Route)
		if entry.Status.Done() {
			return
		}
		entry.Component = ev.Component
		entry.Duration = ev.Duration
		if ev.Type == project.EventPageFailed {
			entry.Status = components.PageFailed
			entry.Err = ev.Err
			m.failed++
		} else {
			entry.Status = components.PageCompiled
			m.compiled++
		}
		m.pages.Set(entry)
	case project.EventFileWritten:
		m.files = append(m.files, ev.Path)
	case project.EventBuildCompleted:
		m.finished = true
	}
}
