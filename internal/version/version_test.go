package version

import (
	"strings"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	info := Get()
	if info.Version == "" || info.Commit == "" || info.BuildDate == "" {
		t.Fatalf("expected defaults, got %+v", info)
	}
}

func TestGetEmptyFallsBackToDev(t *testing.T) {
	old := Version
	Version = ""
	defer func() { Version = old }()

	if got := Get().Version; got != "dev" {
		t.Fatalf("expected dev fallback, got %q", got)
	}
}

func TestString(t *testing.T) {
	s := Info{Version: "1.2.3", Commit: "abc", BuildDate: "2026-01-01"}.String()
	if !strings.Contains(s, "1.2.3") || !strings.Contains(s, "abc") {
		t.Fatalf("unexpected string: %q", s)
	}
}
