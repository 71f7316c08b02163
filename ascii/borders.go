// Package ascii provides the glyph sets used to frame terminal panels.
// Rounded uses Unicode box-drawing characters; Plain sticks to 7-bit ASCII
// for terminals and fonts without them.
package ascii

import "strings"

// Border is a set of glyphs for drawing a box with one divider row.
type Border struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	TeeLeft     string
	TeeRight    string
	Horizontal  string
	Vertical    string
}

// Rounded draws boxes with rounded Unicode corners.
var Rounded = Border{
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
	TeeLeft:     "├",
	TeeRight:    "┤",
	Horizontal:  "─",
	Vertical:    "│",
}

// Plain draws boxes with ASCII characters only.
var Plain = Border{
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
	TeeLeft:     "+",
	TeeRight:    "+",
	Horizontal:  "-",
	Vertical:    "|",
}

// Top returns the top edge for a box whose content is width cells wide.
//
// Parameters:
//   - width: Content width between the vertical bars, excluding the one-cell
//     margin on each side
//
// Returns:
//   - The top edge, width+4 cells long
func (b Border) Top(width int) string {
	return b.TopLeft + b.rule(width) + b.TopRight
}

// Divider returns a horizontal separator joining both sides of the box.
func (b Border) Divider(width int) string {
	return b.TeeLeft + b.rule(width) + b.TeeRight
}

// Bottom returns the bottom edge.
func (b Border) Bottom(width int) string {
	return b.BottomLeft + b.rule(width) + b.BottomRight
}

func (b Border) rule(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat(b.Horizontal, width+2)
}
