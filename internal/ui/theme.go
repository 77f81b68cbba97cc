package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for a menu listing. Empty colors leave the
// terminal default in place.
type Theme struct {
	Name string

	Restaurant string
	Option     string
	Separator  string
	Main       string
	Extras     string
	Muted      string
	Accent     string
}

// Styles returns Lipgloss styles for this theme bound to r. A nil renderer
// uses lipgloss's default (stdout) renderer.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Restaurant: colored(r, t.Restaurant).Bold(true),
		Option:     colored(r, t.Option),
		Separator:  colored(r, t.Separator),
		Main:       colored(r, t.Main).Bold(true),
		Extras:     colored(r, t.Extras),
		Muted:      colored(r, t.Muted),
		Accent:     colored(r, t.Accent).Bold(true),
	}
}

func colored(r *lipgloss.Renderer, color string) lipgloss.Style {
	style := r.NewStyle()
	if color == "" {
		return style
	}
	return style.Foreground(lipgloss.Color(color))
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Restaurant lipgloss.Style
	Option     lipgloss.Style
	Separator  lipgloss.Style
	Main       lipgloss.Style
	Extras     lipgloss.Style

	// browser chrome
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Classic":  classicTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Classic", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return classicTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func classicTheme() Theme {
	// 16-color ANSI palette
	return Theme{
		Name: "Classic",

		Restaurant: "3", // yellow
		Separator:  "2", // green
		Extras:     "6", // cyan
		Muted:      "8", // bright black
		Accent:     "3",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Restaurant: "#dbc074", // yellow
		Option:     "#cdcecf", // fg1
		Separator:  "#81b29a", // green
		Main:       "#cdcecf", // fg1
		Extras:     "#63cdcf", // cyan
		Muted:      "#738091", // comment
		Accent:     "#719cd6", // blue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Restaurant: "#f59e0b", // amber-500
		Option:     "#94a3b8", // slate-400
		Separator:  "#22c55e", // green-500
		Main:       "#f1f5f9", // slate-100
		Extras:     "#06b6d4", // cyan-500
		Muted:      "#64748b", // slate-500
		Accent:     "#38bdf8", // sky-400
	}
}
