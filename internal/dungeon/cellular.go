package dungeon

// CellularGen seeds the interior with random walls and smooths the result
// with a neighbour-count automaton, then keeps only the largest cavern so
// the map is a single connected region.
type CellularGen struct {
	WallChance float64 // initial wall probability (default 0.45)
	Iterations int     // smoothing passes (default 5)
	WallLimit  int     // 3x3 wall count at or above which a cell stays wall (default 5)
}

func init() {
	RegisterGenerator(func() Generator { return CellularGen{} })
}

// Method returns the selector this generator implements.
func (CellularGen) Method() Method { return MethodCellularAutomata }

// Title returns a human-readable name for display.
func (CellularGen) Title() string { return "Cellular automata" }

func (g CellularGen) withDefaults() CellularGen {
	if g.WallChance <= 0 || g.WallChance >= 1 {
		g.WallChance = 0.45
	}
	if g.Iterations <= 0 {
		g.Iterations = 5
	}
	if g.WallLimit <= 0 {
		g.WallLimit = 5
	}
	return g
}

// Generate seeds, smooths, and extracts the main cavern.
func (g CellularGen) Generate(d *Dungeon) error {
	g = g.withDefaults()
	rng := d.Rand()
	rows, cols := d.Rows(), d.Cols()

	d.fillAll(Wall)
	for i := 1; i < rows-1; i++ {
		for j := 1; j < cols-1; j++ {
			if rng.Float64() >= g.WallChance {
				d.tiles.Set(i, j, Floor)
			}
		}
	}

	buf := make([]Tile, 0, rows*cols)
	for pass := 0; pass < g.Iterations; pass++ {
		buf = d.tiles.Export(buf)
		for i := 1; i < rows-1; i++ {
			for j := 1; j < cols-1; j++ {
				walls := 0
				for di := -1; di <= 1; di++ {
					for dj := -1; dj <= 1; dj++ {
						if buf[(i+di)*cols+(j+dj)] == Wall {
							walls++
						}
					}
				}
				if walls >= g.WallLimit {
					d.tiles.Set(i, j, Wall)
				} else {
					d.tiles.Set(i, j, Floor)
				}
			}
		}
	}

	if d.keepLargestRegion() < 2 {
		// Automaton collapsed; fall back to a minimal chamber so the
		// dungeon stays usable.
		if err := d.carveFallbackChamber(); err != nil {
			return err
		}
	}

	return d.placeEndpoints()
}
