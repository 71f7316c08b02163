package display

import (
	"fmt"
	"math"
	"strings"
	"time"

	"uptime/sysinfo"
)

const (
	clockLayout     = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Render formats a snapshot according to cfg. It never fails; values out
// of the usual range are printed as they are.
func Render(s sysinfo.Snapshot, cfg Config) string {
	switch cfg.Format {
	case Raw:
		return renderRaw(s)
	case Pretty:
		return renderPretty(s)
	case Since:
		return bootStamp(s, cfg)
	case Interactive:
		return renderPanel(s, cfg)
	default:
		return renderStandard(s, cfg)
	}
}

// renderRaw prints "boot uptime idle load1 load5 load15". Idle is left
// unclamped and may exceed uptime on multi-core machines.
func renderRaw(s sysinfo.Snapshot) string {
	return fmt.Sprintf("%d %.6f %d %.2f %.2f %.2f",
		s.BootTime, s.UptimeSeconds, int64(math.Trunc(s.IdleSeconds)),
		s.Load1, s.Load5, s.Load15)
}

// renderPretty prints "up H hours, M minutes". Hours do not roll over
// into days.
func renderPretty(s sysinfo.Snapshot) string {
	secs := wholeSeconds(s.UptimeSeconds)
	hours := secs / secondsPerHour
	minutes := (secs % secondsPerHour) / secondsPerMinute

	switch {
	case hours >= 1 && minutes > 0:
		return fmt.Sprintf("up %d hour%s, %d minute%s",
			hours, sysinfo.Plural(hours), minutes, sysinfo.Plural(minutes))
	case hours >= 1:
		return fmt.Sprintf("up %d hour%s", hours, sysinfo.Plural(hours))
	case minutes > 0:
		return fmt.Sprintf("up %d minute%s", minutes, sysinfo.Plural(minutes))
	default:
		return "up less than a minute"
	}
}

func renderStandard(s sysinfo.Snapshot, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, " %s up %s", s.CollectedAt.In(cfg.location()).Format(clockLayout), standardUptime(s.UptimeSeconds))
	if cfg.ShowContainer {
		b.WriteString(" (container)")
	}

	users := uint64(s.Users)
	label := "users"
	if users == 1 {
		label = "user"
	}
	fmt.Fprintf(&b, ", %d %s, load average: %.2f, %.2f, %.2f", users, label, s.Load1, s.Load5, s.Load15)

	if cfg.ShowSince {
		fmt.Fprintf(&b, ", since %s", bootStamp(s, cfg))
	}
	return b.String()
}

// standardUptime follows the classic uptime layout: "D day(s)" or "D:HH"
// past a day, "H:MM" past an hour, otherwise "M min".
func standardUptime(seconds float64) string {
	secs := wholeSeconds(seconds)
	days := secs / secondsPerDay
	hours := (secs % secondsPerDay) / secondsPerHour
	minutes := (secs % secondsPerHour) / secondsPerMinute

	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%d:%02d", days, hours)
	case days > 0:
		return fmt.Sprintf("%d day%s", days, sysinfo.Plural(days))
	case hours > 0:
		return fmt.Sprintf("%d:%02d", hours, minutes)
	default:
		return fmt.Sprintf("%d min", minutes)
	}
}

func bootStamp(s sysinfo.Snapshot, cfg Config) string {
	return time.Unix(int64(s.BootTime), 0).In(cfg.location()).Format(timestampLayout)
}

// Components breaks an uptime into non-zero "1d", "2h", "3m", "4s" parts.
// A zero uptime yields "0s".
func Components(seconds float64) []string {
	secs := wholeSeconds(seconds)
	units := []struct {
		size   uint64
		suffix string
	}{
		{secondsPerDay, "d"},
		{secondsPerHour, "h"},
		{secondsPerMinute, "m"},
		{1, "s"},
	}

	var parts []string
	for _, u := range units {
		n := secs / u.size
		secs %= u.size
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "0s")
	}
	return parts
}

// wholeSeconds truncates an uptime for calendar breakdowns. Values that
// cannot be broken down (negative, NaN) count as zero.
func wholeSeconds(seconds float64) uint64 {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	if seconds >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(seconds)
}
