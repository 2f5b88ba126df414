package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilemerge.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded YAML is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
game:
  variant: big
  seed: 77
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.Variant != "big" || cfg.Game.Seed != 77 {
		t.Errorf("game = %+v, want variant big seed 77", cfg.Game)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Game.TileSize != 40 || cfg.Server.SSHAddr != ":23234" {
		t.Errorf("defaults lost: tile %v ssh %q", cfg.Game.TileSize, cfg.Server.SSHAddr)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := writeConfig(t, "game: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "game:\n  seed: 1\n")
	t.Setenv(EnvSeed, "4242")
	t.Setenv(EnvSize, "5")
	t.Setenv(EnvDB, "/tmp/scores.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSSHAddr, ":2222")
	t.Setenv(EnvHTTPAddr, "127.0.0.1:9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.Seed != 4242 {
		t.Errorf("seed = %d, want 4242", cfg.Game.Seed)
	}
	if cfg.Game.Size != 5 {
		t.Errorf("size = %d, want 5", cfg.Game.Size)
	}
	if cfg.Storage.Path != "/tmp/scores.db" {
		t.Errorf("db = %q", cfg.Storage.Path)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Server.SSHAddr != ":2222" || cfg.Server.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"seed not a number", EnvSeed, "abc"},
		{"size not a number", EnvSize, "four"},
		{"size too large", EnvSize, "9"},
		{"unknown log level", EnvLogLevel, "chatty"},
	}

	path := writeConfig(t, "{}\n")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"size from variant", func(c *Config) { c.Game.Size = 0 }, true},
		{"min size", func(c *Config) { c.Game.Size = MinSize }, true},
		{"max size", func(c *Config) { c.Game.Size = MaxSize }, true},
		{"size too small", func(c *Config) { c.Game.Size = 1 }, false},
		{"size too large", func(c *Config) { c.Game.Size = MaxSize + 1 }, false},
		{"zero tile size", func(c *Config) { c.Game.TileSize = 0 }, false},
		{"negative spacer", func(c *Config) { c.Game.Spacer = -1 }, false},
		{"zero spacer", func(c *Config) { c.Game.Spacer = 0 }, true},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -5 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 9

	rc := cfg.RuntimeConfig(4, 100, 40)
	if rc.BoardSize != 4 || rc.ScreenW != 100 || rc.ScreenH != 40 || rc.Seed != 9 {
		t.Errorf("RuntimeConfig = %+v", rc)
	}

	cfg.Game.Size = 6
	if rc := cfg.RuntimeConfig(4, 80, 24); rc.BoardSize != 6 {
		t.Errorf("explicit size should win, got %d", rc.BoardSize)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.tilemerge/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".tilemerge", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tilemerge") {
		t.Errorf("warn message missing or unprefixed: %q", out)
	}
}
