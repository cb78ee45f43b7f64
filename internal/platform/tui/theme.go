package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/french-arcade/internal/core"
)

// Theme contains every visual style of the interface.
type Theme struct {
	Name string

	// Cells maps board roles to styles.
	Cells map[core.Color]lipgloss.Style

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Text       lipgloss.Style
	Dim        lipgloss.Style
	Accent     lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
	Notice     lipgloss.Style
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	Card       lipgloss.Style
	Overlay    lipgloss.Style
	Border     lipgloss.Color
	Selected   lipgloss.Style
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorGrid:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")), // Cheese yellow
			core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
			core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		Good:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Bad:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Italic(true),
		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		Overlay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Padding(0, 2),
		Border:   lipgloss.Color("240"),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}

// LightTheme suits light terminal backgrounds.
func LightTheme() Theme {
	theme := DarkTheme()
	theme.Name = "light"
	theme.Cells = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorGrid:    lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
		core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	}
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true)
	theme.Subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	theme.Text = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	theme.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true)
	theme.Good = lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true)
	theme.Bad = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	theme.Notice = lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Italic(true)
	theme.ItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true)
	theme.Card = theme.Card.BorderForeground(lipgloss.Color("250"))
	theme.Overlay = lipgloss.NewStyle().
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color("254")).
		Padding(0, 2)
	theme.Border = lipgloss.Color("250")
	theme.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25"))
	return theme
}

// ThemeByName returns the named theme, dark for anything unknown.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return DarkTheme()
	}
	return LightTheme()
}
