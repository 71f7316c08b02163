package sysinfo

import "testing"

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"load", 4},
		{"\x1b[32m0.50\x1b[0m", 4},
		{"\x1b[1;31m4.00\x1b[22;39m", 4},
		{"日本", 4},
	}

	for _, tc := range tests {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Fatalf("VisibleWidth(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[33m1.50\x1b[0m users"); got != "1.50 users" {
		t.Fatalf("StripANSI failed: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
	if got := PadRight("\x1b[32mHi\x1b[0m", 4); got != "\x1b[32mHi\x1b[0m  " {
		t.Fatalf("PadRight colored failed: got %q", got)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
	}
	for _, tc := range tests {
		if got := Plural(tc.in); got != tc.want {
			t.Fatalf("Plural(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
