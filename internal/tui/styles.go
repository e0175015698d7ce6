package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0E7490")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	LeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FACC15")).
			Bold(true)

	TotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Score cell styles. Earlier rounds are frozen and drawn muted; the current
// round keeps softer colors since its values are still being entered.
var (
	cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)

	pastPlainStyle = cellStyle.
			Foreground(lipgloss.Color("#9CA3AF"))

	pastBestStyle = cellStyle.
			Foreground(lipgloss.Color("#FACC15")).
			Bold(true)

	pastWorstStyle = cellStyle.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#DC2626")).
			Bold(true)

	currentPlainStyle = cellStyle.
				Foreground(lipgloss.Color("#FAFAFA"))

	currentBestStyle = cellStyle.
				Foreground(lipgloss.Color("#67E8F9"))

	currentWorstStyle = cellStyle.
				Foreground(lipgloss.Color("#FCA5A5"))

	headerCellStyle = cellStyle.
			Foreground(lipgloss.Color("#D1D5DB")).
			Bold(true)

	leaderCellStyle = cellStyle.
			Foreground(lipgloss.Color("#FDE047")).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
