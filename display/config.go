// Package display renders system snapshots as text: the classic uptime
// line, a human sentence, a machine-readable line, the boot timestamp, and
// a bordered interactive panel.
// Rendering is pure: the same snapshot and Config always produce the same
// string.
package display

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the display style.
type Format int

const (
	Standard Format = iota
	Pretty
	Raw
	Since
	Interactive
)

var formatNames = map[Format]string{
	Standard:    "standard",
	Pretty:      "pretty",
	Raw:         "raw",
	Since:       "since",
	Interactive: "interactive",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatNames lists the accepted format names in declaration order.
func FormatNames() []string {
	return []string{"standard", "pretty", "raw", "since", "interactive"}
}

// ParseFormat converts a format name to a Format. Matching ignores case
// and surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return Standard, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(FormatNames(), ", "))
}

// Config controls how a snapshot is rendered.
type Config struct {
	Format Format

	// ShowContainer annotates the output as container uptime
	ShowContainer bool

	// ShowSince appends the boot timestamp to Standard output
	ShowSince bool

	// Color enables ANSI decoration; it never changes the text itself
	Color bool

	// ASCIIBorders draws the interactive panel with 7-bit characters
	ASCIIBorders bool

	// Location is the time zone for clock and boot timestamps; nil means local
	Location *time.Location
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
