package display

import (
	"fmt"
	"strings"

	"uptime/ascii"
	"uptime/sysinfo"
)

const panelTitle = "System Uptime"

type panelRow struct {
	label string
	value string
}

// renderPanel draws the interactive dashboard: a framed box with one row
// per metric and colour-banded load averages.
func renderPanel(s sysinfo.Snapshot, cfg Config) string {
	t := theme{enabled: cfg.Color}
	loc := cfg.location()

	rows := []panelRow{
		{"Time", s.CollectedAt.In(loc).Format(clockLayout)},
		{"Uptime", strings.Join(Components(s.UptimeSeconds), " ")},
		{"Booted", bootStamp(s, cfg)},
		{"Users", fmt.Sprintf("%d", s.Users)},
		{"Load", fmt.Sprintf("%s  %s  %s", t.load(s.Load1), t.load(s.Load5), t.load(s.Load15))},
		{"Mode", t.mode(cfg.ShowContainer)},
	}

	labelWidth := 0
	for _, r := range rows {
		if w := sysinfo.VisibleWidth(r.label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, t.label(sysinfo.PadRight(r.label, labelWidth))+"  "+r.value)
	}

	width := sysinfo.VisibleWidth(panelTitle)
	for _, line := range lines {
		if w := sysinfo.VisibleWidth(line); w > width {
			width = w
		}
	}

	border := ascii.Rounded
	if cfg.ASCIIBorders {
		border = ascii.Plain
	}
	side := t.border(border.Vertical)

	var b strings.Builder
	b.WriteString(t.border(border.Top(width)))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s %s\n", side, sysinfo.PadRight(t.label(panelTitle), width), side)
	b.WriteString(t.border(border.Divider(width)))
	b.WriteByte('\n')
	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s %s\n", side, sysinfo.PadRight(line, width), side)
	}
	b.WriteString(t.border(border.Bottom(width)))
	return b.String()
}
