package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

var (
	progressLabel  = lipgloss.NewStyle().Bold(true)
	progressFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Progress is the page counter of a build. Failed pages count as settled,
// so the bar reaches the end when every page has either compiled or failed.
type Progress struct {
	bar   progress.Model
	total int
}

func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressWidth
	return Progress{bar: bar, total: total}
}

// View renders "done/total pages", the bar, and the failure count when
// non-zero. The label is not clamped to total.
func (p Progress) View(done int, failed ...int) string {
	var nFailed int
	for _, n := range failed {
		nFailed += n
	}

	var settled float64
	if p.total > 0 {
		settled = float64(done+nFailed) / float64(p.total)
		if settled > 1 {
			settled = 1
		}
	}

	parts := []string{
		progressLabel.Render(fmt.Sprintf("%d/%d pages", done, p.total)),
		p.bar.ViewAs(settled),
	}
	if nFailed > 0 {
		parts = append(parts, progressFailed.Render(fmt.Sprintf("%d failed", nFailed)))
	}
	return strings.Join(parts, " ")
}
