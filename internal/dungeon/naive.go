package dungeon

// NaiveGen scatters random rectangular rooms (overlap allowed) and joins
// consecutive room centers with L-shaped corridors. The entrance lands in
// the first room, the exit in the last.
type NaiveGen struct {
	RoomAttempts int // rooms to place (default 10)
	MinRoomSize  int // minimum room edge (default 3)
	MaxRoomSize  int // maximum room edge (default 9)
}

func init() {
	RegisterGenerator(func() Generator { return NaiveGen{} })
}

// Method returns the selector this generator implements.
func (NaiveGen) Method() Method { return MethodNaive }

// Title returns a human-readable name for display.
func (NaiveGen) Title() string { return "Naive rooms" }

func (g NaiveGen) withDefaults() NaiveGen {
	if g.RoomAttempts <= 0 {
		g.RoomAttempts = 10
	}
	if g.MinRoomSize <= 0 {
		g.MinRoomSize = 3
	}
	if g.MaxRoomSize < g.MinRoomSize {
		g.MaxRoomSize = g.MinRoomSize + 6
	}
	return g
}

// Generate carves rooms and corridors into the dungeon.
func (g NaiveGen) Generate(d *Dungeon) error {
	g = g.withDefaults()
	rng := d.Rand()
	rows, cols := d.Rows(), d.Cols()

	d.fillAll(Wall)

	// Interior available for rooms, keeping the border solid.
	maxH := min(g.MaxRoomSize, rows-2)
	maxW := min(g.MaxRoomSize, cols-2)
	minH := min(g.MinRoomSize, maxH)
	minW := min(g.MinRoomSize, maxW)
	if maxH < 1 || maxW < 1 {
		return ErrNoPath
	}

	var centers []Coord
	for n := 0; n < g.RoomAttempts; n++ {
		h := minH + rng.Intn(maxH-minH+1)
		w := minW + rng.Intn(maxW-minW+1)
		i0 := 1 + rng.Intn(rows-1-h)
		j0 := 1 + rng.Intn(cols-1-w)

		if err := d.PlaceRoom(At(i0, j0), At(i0+h-1, j0+w-1)); err != nil {
			return err
		}
		centers = append(centers, At(i0+h/2, j0+w/2))
	}

	for k := 1; k < len(centers); k++ {
		d.carveCorridor(centers[k-1], centers[k])
	}

	enter := centers[0]
	leave := centers[len(centers)-1]
	if enter.Equal(leave) {
		// Single room or coincident centers: push the exit to the far
		// corner of the carved area.
		var ok bool
		if leave, ok = d.lastFloor(); !ok || enter.Equal(leave) {
			return ErrNoPath
		}
	}
	if err := d.SetEntrance(enter.Row, enter.Col); err != nil {
		return err
	}
	return d.SetExit(leave.Row, leave.Col)
}
