package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// report writes a small styled document: a title, aligned key/value rows
// and bulleted lists.
type report struct {
	out io.Writer
}

func newReport(out io.Writer, title string) report {
	r := report{out: out}
	fmt.Fprintln(out, TitleStyle.Render(title))
	return r
}

func (r report) field(label string, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(fmt.Sprintf("%-14s", label+":")), ValueStyle.Render(value))
}

func (r report) list(label string, values []string) {
	fmt.Fprintf(r.out, "  %s\n", LabelStyle.Render(label+":"))
	if len(values) == 0 {
		fmt.Fprintf(r.out, "    %s\n", LabelStyle.Render("(none)"))
		return
	}
	for _, value := range values {
		fmt.Fprintf(r.out, "    - %s\n", value)
	}
}

func (r report) warnings(values []string) {
	for _, value := range values {
		fmt.Fprintf(r.out, "  %s\n", WarningStyle.Render("warning: "+value))
	}
}

func (r report) success(message string) {
	fmt.Fprintln(r.out, SuccessStyle.Render(message))
}

func joinOrDash(values []string, sep string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, sep)
}
