package dungeon

// DrunkenWalkGen carves floor with a random walker starting at the map
// center. The walk stops once the target floor ratio is reached or the step
// cap runs out, whichever comes first.
type DrunkenWalkGen struct {
	FloorRatio float64 // fraction of the interior to carve (default 0.45)
	MaxSteps   int     // hard step cap (default 50 per interior cell)
}

func init() {
	RegisterGenerator(func() Generator { return DrunkenWalkGen{} })
}

// Method returns the selector this generator implements.
func (DrunkenWalkGen) Method() Method { return MethodDrunkenWalk }

// Title returns a human-readable name for display.
func (DrunkenWalkGen) Title() string { return "Drunken walk" }

// Generate runs the walker until the floor target is met.
func (g DrunkenWalkGen) Generate(d *Dungeon) error {
	rng := d.Rand()
	rows, cols := d.Rows(), d.Cols()

	interior := (rows - 2) * (cols - 2)
	if interior < 2 {
		return ErrNoPath
	}
	if g.FloorRatio <= 0 || g.FloorRatio > 1 {
		g.FloorRatio = 0.45
	}
	if g.MaxSteps <= 0 {
		g.MaxSteps = interior * 50
	}
	target := int(g.FloorRatio * float64(interior))
	if target < 2 {
		target = 2
	}

	d.fillAll(Wall)

	i, j := rows/2, cols/2
	d.tiles.Set(i, j, Floor)
	carved := 1

	for step := 0; step < g.MaxSteps && carved < target; step++ {
		off := neighborOffsets[rng.Intn(len(neighborOffsets))]
		ni, nj := i+off[0], j+off[1]
		// The walker never leaves the interior, so the border stays solid.
		if ni < 1 || ni > rows-2 || nj < 1 || nj > cols-2 {
			continue
		}
		i, j = ni, nj
		if t, _ := d.tiles.At(i, j); t != Floor {
			d.tiles.Set(i, j, Floor)
			carved++
		}
	}

	return d.placeEndpoints()
}
