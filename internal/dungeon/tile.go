// Package dungeon provides the dungeon tile model, procedural generation
// strategies, and entrance-to-exit pathfinding. The package is UI-agnostic
// and deterministic under a fixed seed.
package dungeon

// Tile is the semantic code of a single dungeon cell.
type Tile byte

const (
	Wall     Tile = 0
	Floor    Tile = 1
	Entrance Tile = 2
	Exit     Tile = 3
)

// String returns a human-readable name for the tile code.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Entrance:
		return "entrance"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Passable reports whether the tile can be walked on.
// Everything except walls is passable.
func (t Tile) Passable() bool {
	return t != Wall
}
