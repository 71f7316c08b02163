package display

import (
	"fmt"

	"github.com/fatih/color"
)

var bandAttrs = map[Band][]color.Attribute{
	BandLow:      {color.FgGreen},
	BandModerate: {color.FgYellow},
	BandHigh:     {color.FgRed},
	BandCritical: {color.FgHiRed, color.Bold},
}

// theme applies colour to already-formatted text. A disabled theme returns
// its input unchanged.
type theme struct {
	enabled bool
}

func (t theme) paint(text string, attrs ...color.Attribute) string {
	if !t.enabled {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

func (t theme) label(text string) string {
	return t.paint(text, color.FgBlue, color.Bold)
}

func (t theme) border(text string) string {
	return t.paint(text, color.FgCyan)
}

func (t theme) load(v float64) string {
	return t.paint(fmt.Sprintf("%.2f", v), bandAttrs[Classify(v)]...)
}

func (t theme) mode(container bool) string {
	if container {
		return t.paint("container", color.FgMagenta)
	}
	return t.paint("native", color.FgGreen)
}
