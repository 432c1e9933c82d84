package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestXDGDirs(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		env  string
		fn   func() (string, error)
		set  string
		want string
	}{
		{"cache default", "XDG_CACHE_HOME", cacheDir, "", filepath.Join(home, ".cache", appName)},
		{"cache xdg", "XDG_CACHE_HOME", cacheDir, "/tmp/xdg-cache", filepath.Join("/tmp/xdg-cache", appName)},
		{"config default", "XDG_CONFIG_HOME", configDir, "", filepath.Join(home, ".config", appName)},
		{"config xdg", "XDG_CONFIG_HOME", configDir, "/tmp/xdg-config", filepath.Join("/tmp/xdg-config", appName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.set)
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-config", appName, "config.toml"); path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
