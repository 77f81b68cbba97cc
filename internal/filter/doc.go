// Package filter parses ruoka's command line.
//
//	ruoka [-lang <code>] [keyword ...]
//
// Keywords are matched case-insensitively against the restaurant name, the
// option name and every dish name of an entry. A keyword starting with "-"
// excludes entries containing the rest of the keyword; any other keyword
// must be present. "-lang" is the only flag and must be followed by a value.
package filter
