package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultProcRoot is where Linux mounts the proc filesystem.
const DefaultProcRoot = "/proc"

// Environment is the operating-system view the collector reads from.
// Paths given to ReadFile are relative to the proc root, e.g. "uptime"
// or "1234/status".
type Environment interface {
	ReadFile(name string) ([]byte, error)
	PIDs() ([]int, error)
	FDTargets(pid int) ([]string, error)
	LookupEnv(key string) (string, bool)
}

// ProcFS is an Environment backed by a proc filesystem mount and a process
// environment lookup.
type ProcFS struct {
	root   string
	lookup func(string) (string, bool)
}

// NewProcFS returns an Environment rooted at root.
//
// Parameters:
//   - root: proc mount point; empty means DefaultProcRoot
//   - lookup: environment variable lookup; nil means os.LookupEnv
//
// Returns:
//   - A ProcFS ready for use by a Collector
func NewProcFS(root string, lookup func(string) (string, bool)) *ProcFS {
	if root == "" {
		root = DefaultProcRoot
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &ProcFS{root: root, lookup: lookup}
}

// Root returns the proc mount point.
func (p *ProcFS) Root() string {
	return p.root
}

// Probe reports whether the proc root can be read at all. The error names
// the root so a misconfigured mount point is obvious in logs.
func (p *ProcFS) Probe() error {
	if err := checkAccess(p.Root()); err != nil {
		return fmt.Errorf("%s: %w", p.Root(), err)
	}
	return nil
}

// ReadFile reads a file relative to the proc root, e.g. "loadavg".
func (p *ProcFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.root, name))
}

// PIDs lists the numeric entries of the proc root.
func (p *ProcFS) PIDs() ([]int, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, err
	}

	pids := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// FDTargets resolves the symbolic links in a process's fd table. Links
// that vanish or cannot be read are skipped.
func (p *ProcFS) FDTargets(pid int) ([]string, error) {
	dir := filepath.Join(p.root, strconv.Itoa(pid), "fd")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0, len(entries))
	for _, entry := range entries {
		target, err := os.Readlink(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// LookupEnv looks up an environment variable through the configured lookup.
func (p *ProcFS) LookupEnv(key string) (string, bool) {
	return p.lookup(key)
}
