package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/dataset"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

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
	// Roles colors bars, nodes and edges by their role in the current step.
	Roles [dataset.NumColors]lipgloss.Color
}

// Role returns the color for c, Text for an unknown role.
func (t Theme) Role(c dataset.Color) lipgloss.Color {
	if int(c) < len(t.Roles) && t.Roles[c] != "" {
		return t.Roles[c]
	}
	return t.Text
}

func (t Theme) Style(c dataset.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Role(c))
}

func roles(def, left, right, compared, swapped, current, sorted, active string) [dataset.NumColors]lipgloss.Color {
	return [dataset.NumColors]lipgloss.Color{
		dataset.Default:      lipgloss.Color(def),
		dataset.CompareLeft:  lipgloss.Color(left),
		dataset.CompareRight: lipgloss.Color(right),
		dataset.Compared:     lipgloss.Color(compared),
		dataset.Swapped:      lipgloss.Color(swapped),
		dataset.Current:      lipgloss.Color(current),
		dataset.Sorted:       lipgloss.Color(sorted),
		dataset.Active:       lipgloss.Color(active),
	}
}

// Available themes
var (
	// ThemeClassic is the default palette.
	ThemeClassic = Theme{
		Name:       "classic",
		Primary:    lipgloss.Color("#1f77b4"),
		Secondary:  lipgloss.Color("#00aaff"),
		Accent:     lipgloss.Color("#ff5c8a"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#eeeeee"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00aa00"),
		Warning:    lipgloss.Color("#ff7700"),
		Error:      lipgloss.Color("#ff0000"),
		Roles:      roles("#cccccc", "#ff7700", "#00aaff", "#ff0000", "#ff0000", "#ff7700", "#00aa00", "#ff5c8a"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
		Roles:      roles("#666688", "#ff00ff", "#00ffff", "#ff0000", "#ff8800", "#ffff00", "#00ff00", "#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
		Roles:      roles("#007700", "#ffff00", "#88ff88", "#ff0000", "#ffaa00", "#ffff00", "#00ff00", "#ccffcc"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
		Roles:      roles("#888888", "#0088ff", "#00ccff", "#ff0000", "#ffaa00", "#ffffff", "#00ff00", "#0088ff"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
		Roles:      roles("#4488aa", "#ffd700", "#00a8cc", "#ff4444", "#ffcc00", "#ffd700", "#00ff88", "#ffd700"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
		Roles:      roles("#8b6b8c", "#feca57", "#ff9ff3", "#ff4757", "#ffc048", "#feca57", "#5fd068", "#ff6b6b"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// LookupTheme returns the named theme or ErrUnknownTheme.
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// GetTheme returns a theme by name, classic when the name is unknown.
func GetTheme(name string) Theme {
	if t, err := LookupTheme(name); err == nil {
		return t
	}
	return ThemeClassic
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
