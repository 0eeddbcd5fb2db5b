package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nwl/internal/tui/components"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)

type statusGlyph struct {
	glyph string
	style lipgloss.Style
}

var statusGlyphs = map[components.PageStatus]statusGlyph{
	components.PagePending:  {"…", lipgloss.NewStyle().Foreground(lipgloss.Color("240"))},
	components.PageRunning:  {"⏳", lipgloss.NewStyle().Foreground(lipgloss.Color("33"))},
	components.PageCompiled: {"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("42"))},
	components.PageFailed:   {"✗", errorStyle},
}
