// Package config provides YAML-based configuration loading for tilemerge,
// with .env and environment overrides layered on top.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tilemerge settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the board and randomness of new sessions.
type GameConfig struct {
	Variant  string  `yaml:"variant"`   // Registered variant ID
	Size     int     `yaml:"size"`      // Overrides the variant size when > 0
	TileSize float64 `yaml:"tile_size"` // Side of one tile in layout units
	Spacer   float64 `yaml:"spacer"`    // Gap between tiles and around the border
	Seed     int64   `yaml:"seed"`      // 0 = seeded from the clock
}

// StorageConfig locates the leaderboard database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the remote play listeners.
type ServerConfig struct {
	SSHAddr     string `yaml:"ssh_addr"`
	HTTPAddr    string `yaml:"http_addr"`
	HostKeyPath string `yaml:"host_key_path"` // Empty = ~/.tilemerge/host_key
	IdleTimeout int    `yaml:"idle_timeout"`  // Minutes
}

// LogConfig defines log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// MinSize and MaxSize bound the configurable board size.
const (
	MinSize = 2
	MaxSize = 8
)

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Game.Size != 0 && (c.Game.Size < MinSize || c.Game.Size > MaxSize) {
		return fmt.Errorf("%w: game.size %d outside [%d, %d]", ErrInvalid, c.Game.Size, MinSize, MaxSize)
	}
	if c.Game.TileSize <= 0 {
		return fmt.Errorf("%w: game.tile_size must be positive, got %v", ErrInvalid, c.Game.TileSize)
	}
	if c.Game.Spacer < 0 {
		return fmt.Errorf("%w: game.spacer must not be negative, got %v", ErrInvalid, c.Game.Spacer)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative, got %d", ErrInvalid, c.Server.IdleTimeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// RuntimeConfig converts the game section into engine settings for a
// screen of the given size. The variant size applies unless Size is set.
func (c Config) RuntimeConfig(variantSize, screenW, screenH int) core.RuntimeConfig {
	size := variantSize
	if c.Game.Size > 0 {
		size = c.Game.Size
	}
	return core.RuntimeConfig{
		ScreenW:   screenW,
		ScreenH:   screenH,
		BoardSize: size,
		TileSize:  c.Game.TileSize,
		Spacer:    c.Game.Spacer,
		Seed:      c.Game.Seed,
	}
}
