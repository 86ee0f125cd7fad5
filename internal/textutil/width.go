package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes escape sequences so width math sees only visible text.
func StripANSI(s string) string {
	if s == "" || !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the terminal display width of s, grapheme by
// grapheme, ignoring embedded escape sequences.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(StripANSI(s))
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// PadRight pads s with trailing spaces up to visible width w.
func PadRight(s string, w int) string {
	return s + spaces(w-VisibleWidth(s))
}

// PadLeft pads s with leading spaces up to visible width w.
func PadLeft(s string, w int) string {
	return spaces(w-VisibleWidth(s)) + s
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
