package dungeon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/daedalus-crawl/daedalus/internal/grid"
)

// Dungeon is a rectangular tile map with an entrance, an exit, and a seeded
// random generator that drives procedural generation. All tiles start as
// Wall (the zero tile code).
type Dungeon struct {
	tiles *grid.Grid[Tile]

	entrance    Coord
	exit        Coord
	hasEntrance bool
	hasExit     bool

	seed int64
	rng  *rand.Rand

	hotPath []Coord
}

// New creates a dungeon with the given dimensions. A seed of 0 derives the
// seed from the current time; pass an explicit seed for reproducible runs.
func New(rows, cols int, seed int64) (*Dungeon, error) {
	tiles, err := grid.New[Tile](rows, cols)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dungeon{
		tiles: tiles,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Restore reconstructs a dungeon from previously exported tiles, e.g. when
// loading from storage. The tiles slice must hold exactly rows*cols codes in
// row-major order. Entrance and exit are recovered from the tile codes.
func Restore(rows, cols int, seed int64, tiles []Tile) (*Dungeon, error) {
	d, err := New(rows, cols, seed)
	if err != nil {
		return nil, err
	}
	if err := d.tiles.Restore(tiles); err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch t, _ := d.tiles.At(i, j); t {
			case Entrance:
				d.entrance = At(i, j)
				d.hasEntrance = true
			case Exit:
				d.exit = At(i, j)
				d.hasExit = true
			}
		}
	}
	return d, nil
}

// Rows returns the number of rows.
func (d *Dungeon) Rows() int {
	return d.tiles.Rows()
}

// Cols returns the number of columns.
func (d *Dungeon) Cols() int {
	return d.tiles.Cols()
}

// Seed returns the seed the dungeon's generator was initialized with.
func (d *Dungeon) Seed() int64 {
	return d.seed
}

// Rand exposes the dungeon's seeded random generator. Generation strategies
// must draw all randomness from it.
func (d *Dungeon) Rand() *rand.Rand {
	return d.rng
}

// InBounds reports whether (i, j) addresses a cell of the dungeon.
func (d *Dungeon) InBounds(i, j int) bool {
	return d.tiles.InBounds(i, j)
}

// TileAt returns the tile code at (i, j).
func (d *Dungeon) TileAt(i, j int) (Tile, error) {
	t, ok := d.tiles.At(i, j)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, i, j)
	}
	return t, nil
}

// SetTile overwrites the tile code at (i, j).
func (d *Dungeon) SetTile(i, j int, t Tile) error {
	if !d.tiles.Set(i, j, t) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, i, j)
	}
	return nil
}

// IsWall reports whether the tile at (i, j) is a wall. Out-of-bounds
// positions count as walls: the world edge is solid.
func (d *Dungeon) IsWall(i, j int) bool {
	t, ok := d.tiles.At(i, j)
	if !ok {
		return true
	}
	return t == Wall
}

// IsExit reports whether the tile at (i, j) is the exit.
// Out-of-bounds positions are not.
func (d *Dungeon) IsExit(i, j int) bool {
	t, ok := d.tiles.At(i, j)
	return ok && t == Exit
}

// SetEntrance records the entrance coordinate and writes the Entrance tile
// code there. A previously set entrance tile reverts to floor.
func (d *Dungeon) SetEntrance(i, j int) error {
	if !d.tiles.InBounds(i, j) {
		return fmt.Errorf("%w: entrance (%d,%d)", ErrOutOfBounds, i, j)
	}
	if d.hasEntrance {
		d.tiles.Set(d.entrance.Row, d.entrance.Col, Floor)
	}
	d.entrance = At(i, j)
	d.hasEntrance = true
	d.tiles.Set(i, j, Entrance)
	return nil
}

// SetExit records the exit coordinate and writes the Exit tile code there.
// A previously set exit tile reverts to floor.
func (d *Dungeon) SetExit(i, j int) error {
	if !d.tiles.InBounds(i, j) {
		return fmt.Errorf("%w: exit (%d,%d)", ErrOutOfBounds, i, j)
	}
	if d.hasExit {
		d.tiles.Set(d.exit.Row, d.exit.Col, Floor)
	}
	d.exit = At(i, j)
	d.hasExit = true
	d.tiles.Set(i, j, Exit)
	return nil
}

// EntrancePos returns the entrance coordinate, if one has been set.
func (d *Dungeon) EntrancePos() (Coord, bool) {
	return d.entrance, d.hasEntrance
}

// ExitPos returns the exit coordinate, if one has been set.
func (d *Dungeon) ExitPos() (Coord, bool) {
	return d.exit, d.hasExit
}

// Export copies the tile codes into dst in row-major order and returns the
// resulting slice.
func (d *Dungeon) Export(dst []Tile) []Tile {
	return d.tiles.Export(dst)
}

// ExportBytes returns the tile codes as raw bytes, for persistence.
func (d *Dungeon) ExportBytes() []byte {
	tiles := d.tiles.Export(nil)
	out := make([]byte, len(tiles))
	for k, t := range tiles {
		out[k] = byte(t)
	}
	return out
}

// TilesFromBytes converts persisted raw bytes back to tile codes.
func TilesFromBytes(raw []byte) []Tile {
	tiles := make([]Tile, len(raw))
	for k, b := range raw {
		tiles[k] = Tile(b)
	}
	return tiles
}

// Generate populates the dungeon using the registered strategy for method.
// On any failure the dungeon's prior tile state, entrance, and exit are left
// unchanged, so callers can distinguish "did nothing" from "succeeded" by
// the returned error alone.
func (d *Dungeon) Generate(method Method) error {
	gen, err := NewGenerator(method)
	if err != nil {
		return err
	}
	return d.GenerateWith(gen)
}

// GenerateWith runs a specific (possibly parameterized) generator against
// the dungeon with the same all-or-nothing contract as Generate.
func (d *Dungeon) GenerateWith(gen Generator) error {
	snapshot := d.tiles.Export(nil)
	entrance, hasEntrance := d.entrance, d.hasEntrance
	exit, hasExit := d.exit, d.hasExit

	if err := gen.Generate(d); err != nil {
		d.tiles.Restore(snapshot)
		d.entrance, d.hasEntrance = entrance, hasEntrance
		d.exit, d.hasExit = exit, hasExit
		return fmt.Errorf("generate %s: %w", gen.Method(), err)
	}
	d.hotPath = nil
	return nil
}

// PlaceRoom stamps a rectangular floor region between two corner
// coordinates, inclusive. Fails with ErrOutOfBounds when the rectangle lies
// partially or fully outside the grid; overlap with existing floor is
// permitted and overwrites.
func (d *Dungeon) PlaceRoom(from, to Coord) error {
	r0, r1 := min(from.Row, to.Row), max(from.Row, to.Row)
	c0, c1 := min(from.Col, to.Col), max(from.Col, to.Col)

	if !d.tiles.InBounds(r0, c0) || !d.tiles.InBounds(r1, c1) {
		return fmt.Errorf("%w: room %s..%s", ErrOutOfBounds, from, to)
	}
	for i := r0; i <= r1; i++ {
		for j := c0; j <= c1; j++ {
			d.tiles.Set(i, j, Floor)
		}
	}
	return nil
}
