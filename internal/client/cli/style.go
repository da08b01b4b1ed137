package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	muted   = lipgloss.Color("#6B7280")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(success)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(warning)
	labelStyle   = lipgloss.NewStyle().Foreground(muted).Width(14)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func heading(w io.Writer, s string) {
	fmt.Fprintln(w, headingStyle.Render(s))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintln(w, labelStyle.Render(label)+value)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
