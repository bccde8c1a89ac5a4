package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the bingo screens.
type Theme struct {
	// Board cells
	Cell         lipgloss.Style
	CellCursor   lipgloss.Style
	CellDone     lipgloss.Style
	CellInLine   lipgloss.Style
	CellBlank    lipgloss.Style
	CellIcon     lipgloss.Style
	CellIconDone lipgloss.Style

	// Header
	Title    lipgloss.Style
	Dates    lipgloss.Style
	ModeTag  lipgloss.Style
	Progress lipgloss.Style

	// Reward card
	RewardBox     lipgloss.Style
	RewardLocked  lipgloss.Style
	RewardOpen    lipgloss.Style
	RewardClaimed lipgloss.Style
	StarOn        lipgloss.Style
	StarOff       lipgloss.Style

	// Overlay dialogs
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Setup form
	FormLabel       lipgloss.Style
	FormLabelActive lipgloss.Style
	FormOption      lipgloss.Style
	FormOptionOn    lipgloss.Style
	FormButton      lipgloss.Style
	FormButtonOn    lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Align(lipgloss.Center, lipgloss.Center)

	return Theme{
		Cell:         cell,
		CellCursor:   cell.BorderForeground(lipgloss.Color("226")),
		CellDone:     cell.BorderForeground(lipgloss.Color("46")).Foreground(lipgloss.Color("46")),
		CellInLine:   cell.BorderForeground(lipgloss.Color("205")).Foreground(lipgloss.Color("205")).Bold(true),
		CellBlank:    cell.Foreground(lipgloss.Color("238")),
		CellIcon:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		CellIconDone: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),

		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Dates:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ModeTag:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("135")).Padding(0, 1),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		RewardBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("135")).Padding(0, 2),
		RewardLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		RewardOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		RewardClaimed: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		StarOn:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		StarOff:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		OverlayBorder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("255")).Padding(1, 3),
		OverlayTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		FormLabel:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		FormLabelActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Width(12),
		FormOption:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		FormOptionOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")).Padding(0, 1),
		FormButton:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder()).Padding(0, 2),
		FormButtonOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("226")).Padding(0, 2),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.CellDone = theme.Cell.Bold(true)
	theme.CellInLine = theme.Cell.Bold(true).Underline(true)
	theme.CellIcon = lipgloss.NewStyle()
	theme.CellIconDone = lipgloss.NewStyle().Bold(true)
	return theme
}
