package sysinfo

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512B"},
		{1536, "1.5KiB"},
		{1024 * 1024, "1.0MiB"},
		{16 * 1024 * 1024 * 1024, "16.0GiB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMemory(t *testing.T) {
	const gib = 1 << 30
	if got := FormatMemory(3*gib, 16*gib, "gib"); got != "3.0GiB / 16.0GiB" {
		t.Fatalf("FormatMemory gib failed: got %q", got)
	}
	if got := FormatMemory(3*gib, 16*gib, "mib"); got != "3072MiB / 16384MiB" {
		t.Fatalf("FormatMemory mib failed: got %q", got)
	}
	if got := FormatMemory(1<<20, 2<<20, "bogus"); got != "1MiB / 2MiB" {
		t.Fatalf("FormatMemory default unit failed: got %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	d := 2*24*time.Hour + 5*time.Hour + 1*time.Minute
	tests := []struct {
		shorthand string
		in        time.Duration
		want      string
	}{
		{"on", d, "2 days, 5 hours, 1 min"},
		{"off", d, "2 days, 5 hours, 1 minute"},
		{"tiny", d, "2d 5h 1m"},
		{"on", 30 * time.Second, "0 mins"},
		{"tiny", 0, "0m"},
		{"on", 24 * time.Hour, "1 day"},
		{"on", -time.Hour, "0 mins"},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.in, tc.shorthand); got != tc.want {
			t.Fatalf("FormatUptime(%s, %q) = %q; want %q", tc.in, tc.shorthand, got, tc.want)
		}
	}
}

func TestColorBlocks(t *testing.T) {
	full := ColorBlocks(0, 15, 3)
	lines := strings.Split(full, "\n")
	if len(lines) != 2 {
		t.Fatalf("ColorBlocks(0, 15) gave %d lines; want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "\033[40m   \033[0m") {
		t.Fatalf("first row should start with background 40: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "\033[107m   \033[0m") {
		t.Fatalf("second row should end with background 107: %q", lines[1])
	}

	bright := ColorBlocks(8, 15, 1)
	if strings.Contains(bright, "\n") || !strings.HasPrefix(bright, "\033[100m \033[0m") {
		t.Fatalf("ColorBlocks(8, 15) = %q", bright)
	}

	if got := ColorBlocks(3, 1, 3); got != "" {
		t.Fatalf("empty range should render nothing, got %q", got)
	}
}

func TestShortHostname(t *testing.T) {
	if got := ShortHostname("box.example.com"); got != "box" {
		t.Fatalf("ShortHostname failed: got %q", got)
	}
	if got := ShortHostname("box"); got != "box" {
		t.Fatalf("ShortHostname no-domain failed: got %q", got)
	}
}

func TestCleanCPUName(t *testing.T) {
	got := CleanCPUName("Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz")
	if got != "Intel Core i7-8700 @ 3.20GHz" {
		t.Fatalf("CleanCPUName failed: got %q", got)
	}
}
