// Package sysinfo collects operating-system uptime, idle time, load averages
// and logged-in user counts from the kernel's proc filesystem.
// It defines the snapshot value handed to renderers and the narrow Source
// interface callers depend on.
package sysinfo

import (
	"errors"
	"time"
)

var (
	// ErrProcUnavailable reports that the proc filesystem itself cannot be
	// accessed. Snapshots returned alongside it carry default values.
	ErrProcUnavailable = errors.New("proc filesystem unavailable")

	// ErrMalformed reports a source that was readable but not in the
	// expected format.
	ErrMalformed = errors.New("malformed source")
)

// Snapshot represents one collection of system state.
// A Snapshot is a plain value: refreshing produces a new one and never
// modifies an existing Snapshot.
type Snapshot struct {
	// UptimeSeconds is the time since boot with sub-second precision
	UptimeSeconds float64

	// IdleSeconds is idle time summed over all logical CPUs, so it may
	// exceed UptimeSeconds on multi-core machines
	IdleSeconds float64

	// Load1, Load5 and Load15 are the 1, 5 and 15 minute load averages
	Load1  float64
	Load5  float64
	Load15 float64

	// Users is the number of distinct login users; never zero
	Users uint

	// BootTime is the UNIX timestamp of boot, derived from CollectedAt and
	// UptimeSeconds
	BootTime uint64

	// CollectedAt is the wall-clock time the snapshot was taken
	CollectedAt time.Time
}

// LoadAverages returns the 1, 5 and 15 minute load averages.
func (s Snapshot) LoadAverages() (float64, float64, float64) {
	return s.Load1, s.Load5, s.Load15
}

// Source provides snapshots of current system state.
type Source interface {
	// Collect reads all sources and returns a fresh snapshot. A non-nil
	// error wraps ErrProcUnavailable; the snapshot is still usable.
	Collect() (Snapshot, error)

	// Refresh collects again, replacing prev in the caller.
	Refresh(prev Snapshot) (Snapshot, error)
}

// Default returns the snapshot used when nothing can be read: zero uptime,
// idle time and load, a single user, and a boot time equal to now.
func Default(now time.Time) Snapshot {
	return Snapshot{
		Users:       1,
		BootTime:    BootTime(now, 0),
		CollectedAt: now,
	}
}
