package engine

import "github.com/vovakirdan/tilemerge/internal/registry"

// DefaultVariant is the board used when none is named.
const DefaultVariant = "classic"

func init() {
	registry.Register(registry.Variant{ID: "mini", Title: "Mini 3x3", Size: 3})
	registry.Register(registry.Variant{ID: DefaultVariant, Title: "Classic 4x4", Size: 4})
	registry.Register(registry.Variant{ID: "big", Title: "Big 5x5", Size: 5})
	registry.Register(registry.Variant{ID: "huge", Title: "Huge 6x6", Size: 6})
}
