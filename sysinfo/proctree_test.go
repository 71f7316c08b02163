package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// procTree builds a fake proc filesystem under a temporary directory.
type procTree struct {
	t    *testing.T
	root string
}

func newProcTree(t *testing.T) *procTree {
	t.Helper()
	return &procTree{t: t, root: t.TempDir()}
}

func (p *procTree) write(name, content string) {
	p.t.Helper()
	path := filepath.Join(p.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.t.Fatalf("write %s: %v", path, err)
	}
}

// process adds a process owned by uid with the given tty_nr and fd targets.
func (p *procTree) process(pid int, comm string, uid uint32, tty int, fds ...string) {
	p.t.Helper()
	dir := strconv.Itoa(pid)
	p.write(dir+"/stat", fmt.Sprintf("%d (%s) S 1 %d %d %d -1 4194560 1203 0 0 0 2 1 0 0 20 0 1 0 4021 10000 200\n", pid, comm, pid, pid, tty))
	p.write(dir+"/status", fmt.Sprintf("Name:\t%s\nUmask:\t0022\nState:\tS (sleeping)\nTgid:\t%d\nPid:\t%d\nUid:\t%d\t%d\t%d\t%d\nGid:\t%d\t%d\t%d\t%d\n", comm, pid, pid, uid, uid, uid, uid, uid, uid, uid, uid))

	fdDir := filepath.Join(p.root, dir, "fd")
	if err := os.MkdirAll(fdDir, 0o755); err != nil {
		p.t.Fatalf("mkdir %s: %v", fdDir, err)
	}
	for i, target := range fds {
		if err := os.Symlink(target, filepath.Join(fdDir, strconv.Itoa(i))); err != nil {
			p.t.Fatalf("symlink %s: %v", target, err)
		}
	}
}

func (p *procTree) env(vars map[string]string) *ProcFS {
	return NewProcFS(p.root, mapLookup(vars))
}

func mapLookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
