package config

import (
	_ "embed"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Variant:  "classic",
			TileSize: 40,
			Spacer:   10,
		},
		Storage: StorageConfig{
			Path: "~/.tilemerge/scores.db",
		},
		Server: ServerConfig{
			SSHAddr:     ":23234",
			HTTPAddr:    ":8080",
			IdleTimeout: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
