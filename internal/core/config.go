package core

// RuntimeConfig contains configuration passed to a game session at creation.
// Screen dimensions are only consulted by the platform layer.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	BoardSize int     // Tiles per side
	TileSize  float64 // Physical tile pitch, used by renderers
	Spacer    float64 // Physical gap between tiles
	Seed      int64   // RNG seed for reproducible spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BoardSize: 4,
		TileSize:  40,
		Spacer:    10,
		Seed:      0, // 0 means use current time in platform layer
	}
}
