package lox

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatCodeFrame renders the source line at pos with a caret under the
// offending column. Hosts that keep the source text around use it to
// decorate diagnostics; the interpreter itself never retains the source.
func FormatCodeFrame(source string, pos Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	text := strings.TrimRight(lines[pos.Line-1], "\r")
	gutter := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(gutter))

	col := pos.Column
	if col < 1 {
		col = 1
	}
	if max := utf8.RuneCountInString(text) + 1; col > max {
		col = max
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  --> line %d, column %d\n", pos.Line, pos.Column)
	fmt.Fprintf(&b, " %s | %s\n", gutter, text)
	fmt.Fprintf(&b, " %s | %s^", pad, strings.Repeat(" ", col-1))
	return b.String()
}
