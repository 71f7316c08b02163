package sysinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// firstHumanUID is the conventional boundary between system/service
// accounts and regular login accounts.
const firstHumanUID = 1000

// terminalPrefixes are fd targets that indicate an interactive terminal.
var terminalPrefixes = []string{"/dev/pts/", "/dev/tty"}

// displayVars indicate a graphical session.
var displayVars = []string{"DISPLAY", "WAYLAND_DISPLAY"}

// UserSet is a deduplicated set of numeric user ids.
type UserSet map[uint32]struct{}

// Add inserts uid into the set.
func (s UserSet) Add(uid uint32) {
	s[uid] = struct{}{}
}

// Has reports whether uid is in the set.
func (s UserSet) Has(uid uint32) bool {
	_, ok := s[uid]
	return ok
}

// Tier is one user detection strategy. Tiers are tried in order and the
// first non-empty result wins.
type Tier func(env Environment) UserSet

// DefaultTiers is the detection chain used when none is configured.
var DefaultTiers = []Tier{TerminalOwners, FDOwners, SessionEnvironment}

// DetectUsers runs tiers in order and returns the first non-empty set, or
// an empty set if every tier came up empty.
func DetectUsers(env Environment, tiers ...Tier) UserSet {
	for _, tier := range tiers {
		if users := tier(env); len(users) > 0 {
			return users
		}
	}
	return UserSet{}
}

// CountUsers returns the number of distinct users found by the detection
// chain (DefaultTiers when tiers is empty). It never returns zero: with no
// evidence at all the invoking user is assumed.
func CountUsers(env Environment, tiers ...Tier) uint {
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}
	users := DetectUsers(env, tiers...)
	if len(users) == 0 {
		return 1
	}
	return uint(len(users))
}

// TerminalOwners collects the owners of processes that have a controlling
// terminal.
func TerminalOwners(env Environment) UserSet {
	users := UserSet{}
	pids, err := env.PIDs()
	if err != nil {
		return users
	}

	for _, pid := range pids {
		tty, err := readTTY(env, pid)
		if err != nil || tty == 0 {
			continue
		}
		addOwner(env, pid, users)
	}
	return users
}

// FDOwners collects the owners of processes holding a terminal device open.
func FDOwners(env Environment) UserSet {
	users := UserSet{}
	pids, err := env.PIDs()
	if err != nil {
		return users
	}

	for _, pid := range pids {
		targets, err := env.FDTargets(pid)
		if err != nil || !anyTerminal(targets) {
			continue
		}
		addOwner(env, pid, users)
	}
	return users
}

// SessionEnvironment guesses from environment variables: a graphical
// display implies a regular user, and UID names the invoking user.
func SessionEnvironment(env Environment) UserSet {
	users := UserSet{}
	for _, key := range displayVars {
		if _, ok := env.LookupEnv(key); ok {
			users.Add(firstHumanUID)
			break
		}
	}
	if value, ok := env.LookupEnv("UID"); ok {
		if uid, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32); err == nil {
			users.Add(uint32(uid))
		}
	}
	return users
}

func addOwner(env Environment, pid int, users UserSet) {
	uid, err := readUID(env, pid)
	if err != nil {
		return
	}
	if isLoginUID(uid) {
		users.Add(uid)
	}
}

// isLoginUID keeps root and regular accounts; ids 1-999 belong to services.
func isLoginUID(uid uint32) bool {
	return uid == 0 || uid >= firstHumanUID
}

func anyTerminal(targets []string) bool {
	for _, target := range targets {
		for _, prefix := range terminalPrefixes {
			if strings.HasPrefix(target, prefix) {
				return true
			}
		}
	}
	return false
}

// readTTY returns the tty_nr field of <pid>/stat. Fields are counted from
// the last ')' because the command name may itself contain spaces or
// parentheses.
func readTTY(env Environment, pid int) (int64, error) {
	content, err := env.ReadFile(strconv.Itoa(pid) + "/stat")
	if err != nil {
		return 0, err
	}
	end := bytes.LastIndexByte(content, ')')
	if end < 0 {
		return 0, fmt.Errorf("%d/stat: %w", pid, ErrMalformed)
	}
	// state ppid pgrp session tty_nr ...
	fields := strings.Fields(string(content[end+1:]))
	if len(fields) < 5 {
		return 0, fmt.Errorf("%d/stat: %w", pid, ErrMalformed)
	}
	return strconv.ParseInt(fields[4], 10, 64)
}

// readUID returns the real user id from the Uid: line of <pid>/status.
func readUID(env Environment, pid int) (uint32, error) {
	content, err := env.ReadFile(strconv.Itoa(pid) + "/status")
	if err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		uid, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%d/status uid: %w", pid, err)
		}
		return uint32(uid), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%d/status: %w: no Uid line", pid, ErrMalformed)
}
