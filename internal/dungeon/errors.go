package dungeon

import "errors"

var (
	// ErrOutOfBounds signals a coordinate beyond the grid dimensions.
	ErrOutOfBounds = errors.New("dungeon: coordinate out of bounds")

	// ErrUnknownMethod signals a generation method selector that does not
	// name any known algorithm.
	ErrUnknownMethod = errors.New("dungeon: unknown generation method")

	// ErrNotImplemented signals a recognized method with no registered
	// generator. The dungeon is left untouched.
	ErrNotImplemented = errors.New("dungeon: generation method not implemented")

	// ErrNoEntrance and ErrNoExit signal pathfinding preconditions.
	ErrNoEntrance = errors.New("dungeon: entrance not set")
	ErrNoExit     = errors.New("dungeon: exit not set")

	// ErrNoPath signals that no passable route joins entrance and exit.
	ErrNoPath = errors.New("dungeon: no path between entrance and exit")
)
