package buildinfo

import (
	"strings"
	"testing"
)

func TestCacheScope(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	tests := []struct{ version, want string }{
		{"dev", "dev:"},
		{"", "dev:"},
		{"v0.3.0", "v0.3.0:"},
		{"0.3.0", "v0.3.0:"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := CacheScope(); got != tt.want {
			t.Errorf("CacheScope() with Version=%q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	old := Commit
	defer func() { Commit = old }()

	Commit = "0123456789abcdef"
	if got := Template(); !strings.Contains(got, "(0123456,") {
		t.Errorf("Template() = %q, want short commit", got)
	}
}
