package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"
)

// Shared styles used by the text output of every command.
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	HeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// write prints v in the requested output format. text renders the human
// readable form and is only called for the "text" format.
func write(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := fmt.Fprintln(w, text())
		return err
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// row lays out cells in columns of the given widths.
func row(widths []int, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		style := lipgloss.NewStyle().PaddingRight(1)
		if i < len(widths) {
			style = style.Width(widths[i])
		}
		rendered[i] = style.Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
