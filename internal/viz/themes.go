package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeEmber = Theme{
		Name:       "ember",
		Primary:    lipgloss.Color("#ff6b35"), // Flame orange
		Secondary:  lipgloss.Color("#ffb347"),
		Accent:     lipgloss.Color("#fff275"),
		Background: lipgloss.Color("#140a05"),
		Text:       lipgloss.Color("#fff0e0"),
		Muted:      lipgloss.Color("#8a5a44"),
		Success:    lipgloss.Color("#8fff6b"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff2e2e"),
	}

	ThemeAurora = Theme{
		Name:       "aurora",
		Primary:    lipgloss.Color("#35ffb5"), // Polar green
		Secondary:  lipgloss.Color("#5ac8fa"),
		Accent:     lipgloss.Color("#c77dff"),
		Background: lipgloss.Color("#03101a"),
		Text:       lipgloss.Color("#e0fff4"),
		Muted:      lipgloss.Color("#3d6b5e"),
		Success:    lipgloss.Color("#35ffb5"),
		Warning:    lipgloss.Color("#ffd166"),
		Error:      lipgloss.Color("#ff4d6d"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#888888"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#555555"),
		Success:    lipgloss.Color("#ffffff"),
		Warning:    lipgloss.Color("#aaaaaa"),
		Error:      lipgloss.Color("#ffffff"),
	}

	ThemeNeon = Theme{
		Name:       "neon",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
	}

	// Default theme
	CurrentTheme = ThemeEmber

	// All available themes
	Themes = []Theme{
		ThemeEmber,
		ThemeAurora,
		ThemeMono,
		ThemeNeon,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
