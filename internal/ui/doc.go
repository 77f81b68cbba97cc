// Package ui renders menus in the terminal.
//
// # Overview
//
// Two front ends share one Renderer:
//
//   - Renderer: prints menu.Boards to any io.Writer, one pass, used by the
//     default `ruoka` command
//   - Model: a Bubble Tea program (`ruoka browse`) that shows the same
//     listing in a scrollable viewport and re-filters it as the user types
//
// # Layout
//
// For a terminal W columns wide:
//
//	                 Newton                     header centered at W/2
//	      Rohee > Chicken curry, Rice, Salad    option name right-aligned in W/5
//	Reilu kevyt > Tomato soup, Bread, Butt...   extras cut to fit, ending in ...
//
// The main dish is never truncated; extra dishes get whatever is left after
// the option column, the separator and the main dish, minus one column.
// Widths are counted in runes.
//
// # Themes
//
// Classic uses the 16-color ANSI palette (bold yellow restaurant, green
// separator, bold main dish, cyan extras). Nightfox and Slate use true-color
// palettes. Styles are bound to a lipgloss.Renderer so output written to a
// pipe degrades to plain text.
//
// # Browser Keys
//
//   - /: edit the filter (applied on every keystroke)
//   - enter / esc: keep / discard the edited filter
//   - x: clear the filter
//   - T: cycle theme
//   - q, ctrl+c: quit
package ui
