package filter

import (
	"errors"
	"strings"
)

const (
	// LanguageFlag selects the menu language; its value is the next token.
	LanguageFlag = "-lang"
	// ExcludeMarker prefixes keywords that must not appear.
	ExcludeMarker = "-"
)

// ErrMissingLanguage is returned when LanguageFlag is the last token.
var ErrMissingLanguage = errors.New("-lang requires a language code")

// Keyword is a single case-insensitive substring test.
type Keyword struct {
	Text    string
	Exclude bool
}

// Query holds the keywords an entry must satisfy.
type Query struct {
	Keywords []Keyword
}

// Args is the parsed invocation.
type Args struct {
	Language string // empty when -lang was not given
	Query    Query
}

// Parse extracts the language code and keywords from args (program name
// already removed).
func Parse(args []string) (Args, error) {
	var out Args
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] != LanguageFlag {
			rest = append(rest, args[i])
			continue
		}
		if i+1 >= len(args) {
			return Args{}, ErrMissingLanguage
		}
		out.Language = strings.TrimSpace(args[i+1])
		i++
	}
	out.Query = newQuery(rest)
	return out, nil
}

// ParseLine splits a free-form filter line on whitespace. It does not
// recognise LanguageFlag.
func ParseLine(line string) Query {
	return newQuery(strings.Fields(line))
}

func newQuery(tokens []string) Query {
	var q Query
	for _, tok := range tokens {
		kw := Keyword{Text: tok}
		if strings.HasPrefix(tok, ExcludeMarker) {
			kw = Keyword{Text: strings.TrimPrefix(tok, ExcludeMarker), Exclude: true}
		}
		kw.Text = strings.ToLower(kw.Text)
		if kw.Text == "" {
			continue
		}
		q.Keywords = append(q.Keywords, kw)
	}
	return q
}

// Empty reports whether the query has no keywords.
func (q Query) Empty() bool {
	return len(q.Keywords) == 0
}

// Match reports whether text contains every inclusion keyword and none of
// the exclusion keywords, ignoring case.
func (q Query) Match(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range q.Keywords {
		if strings.Contains(text, kw.Text) == kw.Exclude {
			return false
		}
	}
	return true
}

// String renders the query back into command-line form.
func (q Query) String() string {
	parts := make([]string, 0, len(q.Keywords))
	for _, kw := range q.Keywords {
		if kw.Exclude {
			parts = append(parts, ExcludeMarker+kw.Text)
			continue
		}
		parts = append(parts, kw.Text)
	}
	return strings.Join(parts, " ")
}
