package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nwl/internal/tui/components"
)

// View renders the heading, the progress bar, one line per page and, once
// the build is over, its summary.
func (m Model) View() string {
	name := strings.TrimSpace(m.project)
	if name == "" {
		name = "Build"
	}

	blocks := []string{
		titleStyle.Render("NWL • " + name),
		sectionStyle.Render("Progress"),
		components.NewProgress(m.pages.Len()).View(m.compiled, m.failed),
	}

	if entries := m.pages.Entries(); len(entries) > 0 {
		rows := make([]string, len(entries))
		for i, e := range entries {
			rows[i] = pageRow(e)
		}
		blocks = append(blocks, sectionStyle.Render("Pages"), strings.Join(rows, "\n"))
	}

	summary := components.NewSummary(components.SummaryData{
		Total:     m.pages.Len(),
		Compiled:  m.compiled,
		Failed:    m.failed,
		Files:     len(m.files),
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Err:       m.err,
	}).View()
	if strings.TrimSpace(summary) != "" {
		blocks = append(blocks, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}

// pageRow renders "<glyph> <route> <file> → <Component> (<elapsed>)" with the
// error on its own line.
func pageRow(e components.PageEntry) string {
	var b strings.Builder
	b.WriteString(" " + statusIcon(e.Status) + " " + e.Route + " " + pathStyle.Render(e.Page))
	if e.Component != "" {
		b.WriteString(" → " + e.Component)
	}
	if e.Duration > 0 {
		fmt.Fprintf(&b, " (%s)", e.Duration.Truncate(time.Millisecond))
	}
	if e.Err != nil {
		b.WriteString("\n   " + errorStyle.Render(e.Err.Error()))
	}
	return b.String()
}

func statusIcon(status components.PageStatus) string {
	g, ok := statusGlyphs[status]
	if !ok {
		g = statusGlyphs[components.PagePending]
	}
	return g.style.Render(g.glyph)
}
