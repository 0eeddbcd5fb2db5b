package tui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/internal/tui/components"
)

func demoConfig() *document.ProjectConfig {
	return &document.ProjectConfig{
		Name: "Demo",
		Routes: []document.RouteConfig{
			{Path: "/", Page: "home.yaml"},
			{Path: "/about", Page: "about.yaml"},
		},
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func TestNewModelTracksRoutesInOrder(t *testing.T) {
	t.Parallel()

	m := NewModel(demoConfig(), false)
	require.Equal(t, 2, m.TotalPages())
	require.Zero(t, m.CompiledPages())
	require.False(t, m.IsFinished())
	require.NotNil(t, m.Init())

	home, ok := m.Page("/")
	require.True(t, ok)
	require.Equal(t, components.PagePending, home.Status)
	require.Equal(t, "home.yaml", home.Page)
}

func TestUpdateFollowsPageLifecycle(t *testing.T) {
	t.Parallel()

	m := update(t, NewModel(demoConfig(), false),
		EventMsg{Event: project.Event{Type: project.EventPageStarted, Route: "/", Page: "home.yaml"}},
	)
	home, _ := m.Page("/")
	require.Equal(t, components.PageRunning, home.Status)

	compiled := EventMsg{Event: project.Event{Type: project.EventPageCompiled, Route: "/", Page: "home.yaml", Component: "Home", Duration: 3 * time.Millisecond}}
	m = update(t, m, compiled, compiled)
	home, _ = m.Page("/")
	require.Equal(t, components.PageCompiled, home.Status)
	require.Equal(t, "Home", home.Component)
	require.Equal(t, 1, m.CompiledPages())

	m = update(t, m,
		EventMsg{Event: project.Event{Type: project.EventFileWritten, Path: "src/home.tsx"}},
		EventMsg{Event: project.Event{Type: project.EventBuildCompleted}},
	)
	require.Equal(t, []string{"src/home.tsx"}, m.Files())
	require.True(t, m.IsFinished())
}

func TestUpdateRecordsFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("page not found: about.yaml")
	m := update(t, NewModel(demoConfig(), false),
		EventMsg{Event: project.Event{Type: project.EventPageFailed, Route: "/about", Page: "about.yaml", Err: boom}},
		DoneMsg{Err: boom},
	)

	about, _ := m.Page("/about")
	require.Equal(t, components.PageFailed, about.Status)
	require.ErrorIs(t, about.Err, boom)
	require.ErrorIs(t, m.Err(), boom)
	require.True(t, m.IsFinished())
}

func TestUpdateAddsUnknownRoutes(t *testing.T) {
	t.Parallel()

	m := update(t, NewModel(nil, false),
		EventMsg{Event: project.Event{Type: project.EventPageStarted, Route: "/new", Page: "new.yaml"}},
	)
	require.Equal(t, 1, m.TotalPages())
}

func TestUpdateHandlesCtrlC(t *testing.T) {
	t.Parallel()

	updated, cmd := NewModel(demoConfig(), false).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	m := updated.(Model)
	require.True(t, m.Cancelled())
	require.True(t, m.IsFinished())
}

func TestViewRendersPagesAndSummary(t *testing.T) {
	t.Parallel()

	m := update(t, NewModel(demoConfig(), false),
		EventMsg{Event: project.Event{Type: project.EventPageCompiled, Route: "/", Page: "home.yaml", Component: "Home"}},
	)
	view := m.View()
	require.Contains(t, view, "NWL • Demo")
	require.Contains(t, view, "1/2 pages")
	require.Contains(t, view, "/about")
	require.Contains(t, view, "Home")
	require.NotContains(t, view, "Summary")

	m = update(t, m,
		EventMsg{Event: project.Event{Type: project.EventPageCompiled, Route: "/about", Page: "about.yaml", Component: "About"}},
		DoneMsg{},
	)
	view = m.View()
	require.Contains(t, view, "Summary")
	require.Contains(t, view, "Build successful! Routes generated automatically.")
}

func TestNonInteractiveSessionPrintsFinalView(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := NewSession(NewModel(demoConfig(), true), false, &out)
	s.Start()
	s.Progress(project.Event{Type: project.EventPageCompiled, Route: "/", Page: "home.yaml", Component: "Home"})
	s.Progress(project.Event{Type: project.EventPageCompiled, Route: "/about", Page: "about.yaml", Component: "About"})
	require.Empty(t, out.String())

	require.NoError(t, s.Finish(nil))
	require.Contains(t, out.String(), "2/2 pages")
	require.Contains(t, out.String(), "Build successful!")
	require.Equal(t, 2, s.Model().CompiledPages())
}
