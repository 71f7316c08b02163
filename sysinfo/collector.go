package sysinfo

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// Collector reads snapshots from an Environment.
// Every source is read independently; a missing or malformed source only
// degrades its own metric to the default value.
type Collector struct {
	env   Environment
	now   func() time.Time
	log   *slog.Logger
	tiers []Tier
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock replaces time.Now as the collector's wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// WithLogger sets the logger degraded sources are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithTiers replaces the user detection chain.
func WithTiers(tiers ...Tier) Option {
	return func(c *Collector) {
		c.tiers = tiers
	}
}

// NewCollector creates a Collector over env.
func NewCollector(env Environment, opts ...Option) *Collector {
	c := &Collector{
		env:   env,
		now:   time.Now,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tiers: DefaultTiers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// prober is implemented by environments that can tell up front whether
// they are reachable at all.
type prober interface {
	Probe() error
}

// Collect takes a snapshot of the current system state.
//
// Returns:
//   - The snapshot; sources that failed hold their zero defaults
//   - An error wrapping ErrProcUnavailable if the environment cannot be
//     accessed at all, in which case the snapshot is Default(now)
func (c *Collector) Collect() (Snapshot, error) {
	now := c.now()

	if p, ok := c.env.(prober); ok {
		if err := p.Probe(); err != nil {
			c.log.Debug("proc probe failed", "err", err)
			return Default(now), fmt.Errorf("%w: %v", ErrProcUnavailable, err)
		}
	}

	snap := Snapshot{CollectedAt: now}

	uptime, idle, err := readUptime(c.env)
	if err != nil {
		c.log.Debug("source unavailable", "source", "uptime", "err", err)
	} else {
		snap.UptimeSeconds = uptime
		snap.IdleSeconds = idle
	}

	load1, load5, load15, err := readLoadAvg(c.env)
	if err != nil {
		c.log.Debug("source unavailable", "source", "loadavg", "err", err)
	} else {
		snap.Load1, snap.Load5, snap.Load15 = load1, load5, load15
	}

	snap.Users = CountUsers(c.env, c.tiers...)
	snap.BootTime = BootTime(now, snap.UptimeSeconds)

	return snap, nil
}

// Refresh discards prev and collects a new snapshot.
func (c *Collector) Refresh(prev Snapshot) (Snapshot, error) {
	next, err := c.Collect()
	c.log.Debug("refreshed",
		"elapsed", next.CollectedAt.Sub(prev.CollectedAt),
		"uptime_delta", next.UptimeSeconds-prev.UptimeSeconds,
	)
	return next, err
}

// BootTime derives the boot timestamp from a wall-clock reading and the
// uptime at that instant. The result is never after now and never negative.
func BootTime(now time.Time, uptimeSeconds float64) uint64 {
	secs := now.Unix()
	if secs <= 0 {
		return 0
	}
	if math.IsNaN(uptimeSeconds) || uptimeSeconds <= 0 {
		return uint64(secs)
	}
	up := math.Floor(uptimeSeconds)
	if up >= float64(secs) {
		return 0
	}
	return uint64(secs - int64(up))
}

// readUptime parses the "uptime" source: seconds since boot followed by
// cumulative idle seconds.
func readUptime(env Environment) (float64, float64, error) {
	content, err := env.ReadFile("uptime")
	if err != nil {
		return 0, 0, err
	}
	parts := strings.Fields(string(content))
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("uptime: %w: %q", ErrMalformed, strings.TrimSpace(string(content)))
	}

	uptime, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("uptime: %w", err)
	}
	idle, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("uptime idle: %w", err)
	}
	return uptime, idle, nil
}

// readLoadAvg parses the first three fields of the "loadavg" source.
func readLoadAvg(env Environment) (float64, float64, float64, error) {
	content, err := env.ReadFile("loadavg")
	if err != nil {
		return 0, 0, 0, err
	}
	parts := strings.Fields(string(content))
	if len(parts) < 3 {
		return 0, 0, 0, fmt.Errorf("loadavg: %w: %q", ErrMalformed, strings.TrimSpace(string(content)))
	}

	var loads [3]float64
	for i := range loads {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("loadavg field %d: %w", i+1, err)
		}
		loads[i] = v
	}
	return loads[0], loads[1], loads[2], nil
}
