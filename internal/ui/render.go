package ui

import (
	"fmt"
	"io"

	"github.com/five82/ruoka/internal/menu"
)

// DefaultSeparator sits between the option name and its dishes.
const DefaultSeparator = " > "

// Renderer prints boards as width-bounded, styled text.
type Renderer struct {
	Out       io.Writer
	Width     int
	Styles    Styles
	Separator string
}

// NewRenderer returns a Renderer using DefaultSeparator.
func NewRenderer(out io.Writer, width int, styles Styles) Renderer {
	return Renderer{Out: out, Width: width, Styles: styles, Separator: DefaultSeparator}
}

// Board prints the centered restaurant name, one line per entry and a blank
// line. An empty board prints nothing.
func (r Renderer) Board(b menu.Board) error {
	if b.Empty() {
		return nil
	}
	if _, err := fmt.Fprintln(r.Out, r.Header(b.Restaurant.Name)); err != nil {
		return err
	}
	for _, entry := range b.Entries {
		if _, err := fmt.Fprintln(r.Out, r.Line(entry)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.Out)
	return err
}

// Header centers name within the terminal width.
func (r Renderer) Header(name string) string {
	return spaces(r.Width/2-runeLen(name)/2) + r.Styles.Restaurant.Render(name)
}

// Line renders a single entry: the option name right-aligned in the first
// fifth of the width, the separator, the main dish and as many extra dishes
// as fit.
func (r Renderer) Line(e menu.Entry) string {
	column := r.Width / 5
	main := e.Main()
	extras := truncate(e.Extras(), r.ExtrasLimit(main))

	line := r.Styles.Option.Render(padLeft(e.Name, column)) +
		r.Styles.Separator.Render(r.separator()) +
		r.Styles.Main.Render(main)
	if extras != "" {
		line += r.Styles.Extras.Render(extras)
	}
	return line
}

// ExtrasLimit is the room left for extra dishes after the option column,
// main dish and separator, keeping the last column free.
func (r Renderer) ExtrasLimit(main string) int {
	return r.Width - (r.Width/5 + runeLen(main) + runeLen(r.separator())) - 1
}

func (r Renderer) separator() string {
	if r.Separator == "" {
		return DefaultSeparator
	}
	return r.Separator
}
