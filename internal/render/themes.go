package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/steps"
)

// Theme assigns a color to each bar role plus the chrome around the board.
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Candidate lipgloss.Color
	Compared  lipgloss.Color
	Swapped   lipgloss.Color
	Sorted    lipgloss.Color
	Arrow     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

// Color returns the fill for a bar with the given role.
func (t Theme) Color(r steps.Role) lipgloss.Color {
	switch r {
	case steps.RoleCandidate:
		return t.Candidate
	case steps.RoleCompared:
		return t.Compared
	case steps.RoleSwapped:
		return t.Swapped
	case steps.RoleSorted:
		return t.Sorted
	default:
		return t.Bar
	}
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Bar:       lipgloss.Color("#ff00ff"),
		Candidate: lipgloss.Color("#00ff00"),
		Compared:  lipgloss.Color("#ff0000"),
		Swapped:   lipgloss.Color("#ffff00"),
		Sorted:    lipgloss.Color("#666666"),
		Arrow:     lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	// ThemePlayground is the classic palette: purple bars, green minimum,
	// red comparison, yellow exchange, gray when done.
	ThemePlayground = Theme{
		Name:      "playground",
		Bar:       lipgloss.Color("#af52de"),
		Candidate: lipgloss.Color("#34c759"),
		Compared:  lipgloss.Color("#ff3b30"),
		Swapped:   lipgloss.Color("#ffcc00"),
		Sorted:    lipgloss.Color("#8e8e93"),
		Arrow:     lipgloss.Color("#007aff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#8e8e93"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Bar:       lipgloss.Color("#00cc00"),
		Candidate: lipgloss.Color("#88ff88"),
		Compared:  lipgloss.Color("#ffff00"),
		Swapped:   lipgloss.Color("#ff0000"),
		Sorted:    lipgloss.Color("#005500"),
		Arrow:     lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Bar:       lipgloss.Color("#cccccc"),
		Candidate: lipgloss.Color("#00ff00"),
		Compared:  lipgloss.Color("#0088ff"),
		Swapped:   lipgloss.Color("#ffaa00"),
		Sorted:    lipgloss.Color("#888888"),
		Arrow:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Bar:       lipgloss.Color("#0077be"),
		Candidate: lipgloss.Color("#00ff88"),
		Compared:  lipgloss.Color("#ff4444"),
		Swapped:   lipgloss.Color("#ffd700"),
		Sorted:    lipgloss.Color("#4488aa"),
		Arrow:     lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Bar:       lipgloss.Color("#ff6b6b"),
		Candidate: lipgloss.Color("#5fd068"),
		Compared:  lipgloss.Color("#ff4757"),
		Swapped:   lipgloss.Color("#feca57"),
		Sorted:    lipgloss.Color("#8b6b8c"),
		Arrow:     lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemePlayground,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
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

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
