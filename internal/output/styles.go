package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorCyan marks nouns: project names and paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck marks the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

var (
	// StyleNoun styles identifiable nouns such as project names and paths.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	styleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)
)

// Summary is what a generation run reports once it is done.
type Summary struct {
	Name  string
	Dir   string
	Files []string
	Steps []string
}

// PrintSummary writes the created files and completed tool steps to w.
func PrintSummary(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		styleCheck.Render("✔"),
		StyleSummary.Render("Created"),
		StyleNoun.Render(s.Name),
	)
	if s.Dir != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("in"), StyleNoun.Render(s.Dir))
	}
	for _, f := range s.Files {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("+"), f)
	}
	for _, step := range s.Steps {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("ran"), step)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
