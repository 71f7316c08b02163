package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return fixedNow }

func TestCollect(t *testing.T) {
	tree := newProcTree(t)
	tree.write("uptime", "12345.67 45678.90\n")
	tree.write("loadavg", "0.52 1.25 3.07 2/611 48213\n")
	tree.process(310, "bash", 1000, 34816)
	tree.process(412, "zsh", 1001, 34817)

	snap, err := NewCollector(tree.env(nil), WithClock(fixedClock)).Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if snap.UptimeSeconds != 12345.67 {
		t.Errorf("UptimeSeconds = %v; want 12345.67", snap.UptimeSeconds)
	}
	if snap.IdleSeconds != 45678.90 {
		t.Errorf("IdleSeconds = %v; want 45678.90 (idle may exceed uptime)", snap.IdleSeconds)
	}
	l1, l5, l15 := snap.LoadAverages()
	if l1 != 0.52 || l5 != 1.25 || l15 != 3.07 {
		t.Errorf("LoadAverages = %v %v %v; want 0.52 1.25 3.07", l1, l5, l15)
	}
	if snap.Users != 2 {
		t.Errorf("Users = %d; want 2", snap.Users)
	}
	if want := uint64(1_700_000_000 - 12345); snap.BootTime != want {
		t.Errorf("BootTime = %d; want %d", snap.BootTime, want)
	}
	if !snap.CollectedAt.Equal(fixedNow) {
		t.Errorf("CollectedAt = %v; want %v", snap.CollectedAt, fixedNow)
	}
}

func TestCollectDegradesSourcesIndependently(t *testing.T) {
	tests := []struct {
		name       string
		uptime     string
		loadavg    string
		wantUptime float64
		wantLoad1  float64
	}{
		{"both missing", "", "", 0, 0},
		{"uptime malformed", "garbage\n", "1.00 2.00 3.00 1/1 1\n", 0, 1},
		{"uptime one field", "100.5\n", "1.00 2.00 3.00 1/1 1\n", 0, 1},
		{"loadavg short", "100.5 50.1\n", "1.00 2.00\n", 100.5, 0},
		{"loadavg non-numeric", "100.5 50.1\n", "a b c\n", 100.5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := newProcTree(t)
			if tc.uptime != "" {
				tree.write("uptime", tc.uptime)
			}
			if tc.loadavg != "" {
				tree.write("loadavg", tc.loadavg)
			}

			snap, err := NewCollector(tree.env(nil), WithClock(fixedClock)).Collect()
			if err != nil {
				t.Fatalf("Collect returned error for a partial failure: %v", err)
			}
			if snap.UptimeSeconds != tc.wantUptime {
				t.Errorf("UptimeSeconds = %v; want %v", snap.UptimeSeconds, tc.wantUptime)
			}
			if snap.Load1 != tc.wantLoad1 {
				t.Errorf("Load1 = %v; want %v", snap.Load1, tc.wantLoad1)
			}
			if snap.Users != 1 {
				t.Errorf("Users = %d; want floor of 1", snap.Users)
			}
		})
	}
}

func TestCollectProcUnavailable(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	env := NewProcFS(root, mapLookup(map[string]string{"DISPLAY": ":0", "UID": "1001"}))

	snap, err := NewCollector(env, WithClock(fixedClock)).Collect()
	if !errors.Is(err, ErrProcUnavailable) {
		t.Fatalf("Collect error = %v; want ErrProcUnavailable", err)
	}
	if snap != Default(fixedNow) {
		t.Fatalf("snapshot = %+v; want defaults", snap)
	}
	if !strings.Contains(err.Error(), root) {
		t.Fatalf("Collect error %q does not name the proc root %s", err, root)
	}
	if snap.Users != 1 || snap.BootTime != uint64(fixedNow.Unix()) {
		t.Fatalf("defaults = %+v; want 1 user and boot time now", snap)
	}
}

func TestRefreshReturnsNewSnapshot(t *testing.T) {
	tree := newProcTree(t)
	tree.write("uptime", "100.00 10.00\n")
	tree.write("loadavg", "0.10 0.20 0.30 1/1 1\n")

	now := fixedNow
	c := NewCollector(tree.env(nil), WithClock(func() time.Time { return now }))

	first, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	now = now.Add(5 * time.Second)
	tree.write("uptime", "105.00 12.00\n")
	second, err := c.Refresh(first)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if first.UptimeSeconds != 100 {
		t.Fatalf("Refresh modified the previous snapshot: %+v", first)
	}
	if second.UptimeSeconds != 105 {
		t.Fatalf("refreshed UptimeSeconds = %v; want 105", second.UptimeSeconds)
	}
	if first.BootTime != second.BootTime {
		t.Fatalf("boot time drifted: %d vs %d", first.BootTime, second.BootTime)
	}
}

func TestBootTime(t *testing.T) {
	now := time.Unix(1000, 0)
	tests := []struct {
		uptime float64
		want   uint64
	}{
		{0, 1000},
		{0.9, 1000},
		{1.1, 999},
		{999.99, 1},
		{1000, 0},
		{5000, 0},
		{-3, 1000},
	}
	for _, tc := range tests {
		if got := BootTime(now, tc.uptime); got != tc.want {
			t.Errorf("BootTime(1000, %v) = %d; want %d", tc.uptime, got, tc.want)
		}
	}
}

func TestCollectLive(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("proc filesystem only on linux")
	}
	if _, err := os.ReadFile("/proc/uptime"); err != nil {
		t.Skipf("/proc/uptime unreadable: %v", err)
	}

	c := NewCollector(NewProcFS("", nil))
	first, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	second, err := c.Refresh(first)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if second.UptimeSeconds <= first.UptimeSeconds {
		t.Errorf("uptime did not advance: %v then %v", first.UptimeSeconds, second.UptimeSeconds)
	}
	for _, snap := range []Snapshot{first, second} {
		if snap.Users < 1 {
			t.Errorf("Users = %d; want at least 1", snap.Users)
		}
		if snap.Load1 < 0 || snap.Load5 < 0 || snap.Load15 < 0 {
			t.Errorf("negative load average: %v %v %v", snap.Load1, snap.Load5, snap.Load15)
		}

		now := float64(snap.CollectedAt.Unix())
		boot := float64(snap.BootTime)
		if boot > now {
			t.Errorf("boot time %v is after collection time %v", boot, now)
		}
		if boot < now-snap.UptimeSeconds-1 {
			t.Errorf("boot time %v is earlier than now-uptime %v", boot, now-snap.UptimeSeconds)
		}
	}
}

func TestNewProcFSDefaults(t *testing.T) {
	p := NewProcFS("", nil)
	if p.Root() != DefaultProcRoot {
		t.Fatalf("Root() = %q; want %q", p.Root(), DefaultProcRoot)
	}
	if got := NewProcFS("/host/proc", nil).Root(); got != "/host/proc" {
		t.Fatalf("Root() = %q; want /host/proc", got)
	}
}
