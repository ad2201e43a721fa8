package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var styleErrorWrapper = lipgloss.NewStyle().Padding(0, 0).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E1244C"))
var styleErrorHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1244C")).Bold(true)
var styleErrorBodyStyle = lipgloss.NewStyle().PaddingLeft(3).Foreground(lipgloss.Color("#E1244C")).Width(80).MaxWidth(80)

func renderError(err error) string {
	return styleErrorWrapper.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styleErrorHeadingStyle.Render("💥 HWCHECK COULD NOT COMPLETE"),
			styleErrorBodyStyle.Render(err.Error()),
			styleErrorBodyStyle.MarginTop(1).Render("Run again with -v for debug output."),
		),
	)
}
