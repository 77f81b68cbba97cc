// Package menu arranges a kitchen's meal options into display order and
// applies keyword filters.
package menu

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/ruoka/internal/filter"
	"github.com/five82/ruoka/internal/juvenes"
)

// Restaurant identifies one kitchen feed.
type Restaurant struct {
	Name       string
	KitchenID  int
	MenuTypeID int
}

// OptionDef maps a service-side category key to its display name.
type OptionDef struct {
	Key  string
	Name string
}

// Entry is one displayable meal option.
type Entry struct {
	Key   string
	Name  string
	Items []string
}

// ItemSeparator joins dish names.
const ItemSeparator = ", "

// Main returns the first dish, with ItemSeparator appended when more follow.
func (e Entry) Main() string {
	if len(e.Items) == 0 {
		return ""
	}
	if len(e.Items) > 1 {
		return e.Items[0] + ItemSeparator
	}
	return e.Items[0]
}

// Extras returns every dish after the first.
func (e Entry) Extras() string {
	if len(e.Items) < 2 {
		return ""
	}
	return strings.Join(e.Items[1:], ItemSeparator)
}

// Source is a fetched menu that has not been arranged yet. Menu is nil when
// the service had nothing for the day.
type Source struct {
	Restaurant Restaurant
	Menu       *juvenes.Menu
}

// Board is the filtered listing for one restaurant.
type Board struct {
	Restaurant Restaurant
	Entries    []Entry
}

// Empty reports whether nothing survived filtering.
func (b Board) Empty() bool {
	return len(b.Entries) == 0
}

var (
	upper = cases.Upper(language.Finnish)
	lower = cases.Lower(language.Finnish)
)

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upper.String(s[:size]) + lower.String(s[size:])
}

// EffectiveOptions returns defs followed by one synthesized definition per
// category in options that defs does not know, in first-seen order.
func EffectiveOptions(defs []OptionDef, options []juvenes.MealOption) []OptionDef {
	known := make(map[string]struct{}, len(defs)+len(options))
	for _, def := range defs {
		known[def.Key] = struct{}{}
	}
	out := make([]OptionDef, len(defs), len(defs)+len(options))
	copy(out, defs)
	for _, opt := range options {
		if _, ok := known[opt.Name]; ok {
			continue
		}
		known[opt.Name] = struct{}{}
		out = append(out, OptionDef{Key: opt.Name, Name: Capitalize(opt.Name)})
	}
	return out
}

// Arrange pairs each effective option with its category. A category is
// consumed by the first definition that claims it and never rendered twice.
// When the payload repeats a category name the last occurrence wins.
func Arrange(defs []OptionDef, options []juvenes.MealOption) []Entry {
	byName := make(map[string]juvenes.MealOption, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}

	var entries []Entry
	for _, def := range EffectiveOptions(defs, options) {
		opt, ok := byName[def.Key]
		if !ok {
			continue
		}
		delete(byName, def.Key)
		items := opt.ItemNames()
		if len(items) == 0 {
			continue
		}
		entries = append(entries, Entry{Key: def.Key, Name: def.Name, Items: items})
	}
	return entries
}

// FilterText is the text keywords are matched against.
func FilterText(r Restaurant, e Entry) string {
	parts := make([]string, 0, len(e.Items)+2)
	parts = append(parts, r.Name, e.Name)
	parts = append(parts, e.Items...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Build arranges m for r and keeps the entries q matches. A nil menu yields
// an empty board.
func Build(r Restaurant, defs []OptionDef, m *juvenes.Menu, q filter.Query) Board {
	board := Board{Restaurant: r}
	if m == nil {
		return board
	}
	for _, entry := range Arrange(defs, m.MealOptions) {
		if !q.Match(FilterText(r, entry)) {
			continue
		}
		board.Entries = append(board.Entries, entry)
	}
	return board
}
