// Package sysinfo - Terminal text utilities
package sysinfo

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI SGR escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI colour escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth calculates the visible width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal cells the text occupies, counting wide runes as two
//
// This is essential for proper alignment when strings contain color codes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// PadRight pads a string with spaces to reach a minimum visible width.
//
// Parameters:
//   - s: The string to pad (may contain ANSI color codes)
//   - width: The desired minimum width in terminal cells
//
// Returns:
//   - The padded string
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Plural returns "s" if count is not 1, empty string otherwise.
func Plural(count uint64) string {
	if count != 1 {
		return "s"
	}
	return ""
}
