package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates the counts of a build.
type SummaryData struct {
	Total     int
	Compiled  int
	Failed    int
	Files     int
	Finished  bool
	Cancelled bool
	Err       error
}

// Summary renders the closing lines of a build.
type Summary struct {
	data SummaryData
}

// NewSummary creates a Summary.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary. It is empty while the build runs.
func (s Summary) View() string {
	d := s.data
	if !d.Finished && !d.Cancelled {
		return ""
	}

	var lines []string
	if d.Total > 0 {
		lines = append(lines, fmt.Sprintf("Pages: %d/%d compiled", d.Compiled, d.Total))
	}
	if d.Files > 0 {
		lines = append(lines, fmt.Sprintf("Files written: %d", d.Files))
	}

	switch {
	case d.Cancelled:
		lines = append(lines, "Build cancelled")
	case d.Err != nil || d.Failed > 0:
		lines = append(lines, "Build failed")
		if d.Err != nil {
			lines = append(lines, "  "+d.Err.Error())
		}
	default:
		lines = append(lines, "Build successful! Routes generated automatically.")
	}
	return strings.Join(lines, "\n")
}
