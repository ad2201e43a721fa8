package probe

import (
	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")
var colorFailure = lipgloss.Color("#E1244C")

var styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleName = lipgloss.NewStyle().Bold(true)
var stylePass = lipgloss.NewStyle().Foreground(colorSuccess)
var styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff"))

var styleSummaryPass = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleSummaryFail = lipgloss.NewStyle().Foreground(colorFailure).Bold(true)
