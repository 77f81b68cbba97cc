// Package terminal probes the controlling terminal for its column count.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when no terminal is attached and COLUMNS is unset.
const DefaultWidth = 80

var getSize = term.GetSize

// Width returns the column count of the first of files attached to a
// terminal, then $COLUMNS, then DefaultWidth.
func Width(files ...*os.File) int {
	for _, f := range files {
		if f == nil {
			continue
		}
		if cols, _, err := getSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return fromEnv(os.Getenv("COLUMNS"))
}

func fromEnv(value string) int {
	cols, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || cols <= 0 {
		return DefaultWidth
	}
	return cols
}
