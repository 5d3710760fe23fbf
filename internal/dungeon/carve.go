package dungeon

// Carving helpers shared by the generation strategies. All of them assume
// the caller stays in bounds where noted; the generators only produce
// in-bounds geometry.

// fillAll sets every tile to t.
func (d *Dungeon) fillAll(t Tile) {
	d.tiles.Fill(t)
}

// wallBorder turns the outermost ring of tiles into walls.
func (d *Dungeon) wallBorder() {
	rows, cols := d.Rows(), d.Cols()
	for j := 0; j < cols; j++ {
		d.tiles.Set(0, j, Wall)
		d.tiles.Set(rows-1, j, Wall)
	}
	for i := 0; i < rows; i++ {
		d.tiles.Set(i, 0, Wall)
		d.tiles.Set(i, cols-1, Wall)
	}
}

// carveCorridor digs an L-shaped floor corridor between two cells:
// horizontal leg first, then vertical.
func (d *Dungeon) carveCorridor(from, to Coord) {
	j := from.Col
	step := 1
	if to.Col < from.Col {
		step = -1
	}
	for ; j != to.Col; j += step {
		d.tiles.Set(from.Row, j, Floor)
	}
	i := from.Row
	step = 1
	if to.Row < from.Row {
		step = -1
	}
	for ; i != to.Row; i += step {
		d.tiles.Set(i, to.Col, Floor)
	}
	d.tiles.Set(to.Row, to.Col, Floor)
}

// floorCount returns the number of floor tiles.
func (d *Dungeon) floorCount() int {
	count := 0
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			if t, _ := d.tiles.At(i, j); t == Floor {
				count++
			}
		}
	}
	return count
}

// firstFloor returns the first floor cell in row-major order.
func (d *Dungeon) firstFloor() (Coord, bool) {
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			if t, _ := d.tiles.At(i, j); t == Floor {
				return At(i, j), true
			}
		}
	}
	return Coord{}, false
}

// lastFloor returns the last floor cell in row-major order.
func (d *Dungeon) lastFloor() (Coord, bool) {
	for i := d.Rows() - 1; i >= 0; i-- {
		for j := d.Cols() - 1; j >= 0; j-- {
			if t, _ := d.tiles.At(i, j); t == Floor {
				return At(i, j), true
			}
		}
	}
	return Coord{}, false
}

// placeEndpoints sets the entrance on the first floor tile and the exit on
// the last, in row-major order. Used by the cave-style generators where no
// room structure suggests better anchors.
func (d *Dungeon) placeEndpoints() error {
	enter, ok := d.firstFloor()
	if !ok {
		return ErrNoPath
	}
	leave, _ := d.lastFloor()
	if enter.Equal(leave) {
		return ErrNoPath
	}
	if err := d.SetEntrance(enter.Row, enter.Col); err != nil {
		return err
	}
	return d.SetExit(leave.Row, leave.Col)
}

// carveFallbackChamber resets the map to solid wall and carves a minimal
// room at the center. Used when a generation pass leaves too little floor
// to host both endpoints; the reset walls out any stray one-cell region so
// the chamber is the only walkable area left.
func (d *Dungeon) carveFallbackChamber() error {
	d.fillAll(Wall)
	ci, cj := d.Rows()/2, d.Cols()/2
	return d.PlaceRoom(At(max(1, ci-1), max(1, cj-1)),
		At(min(d.Rows()-2, ci+1), min(d.Cols()-2, cj+1)))
}

// keepLargestRegion flood-fills the 4-connected floor regions and turns
// every region except the largest back into wall. Returns the size of the
// kept region (0 when the map has no floor at all).
func (d *Dungeon) keepLargestRegion() int {
	rows, cols := d.Rows(), d.Cols()
	label := make([]int32, rows*cols)
	for k := range label {
		label[k] = -1
	}

	var sizes []int
	var stack []int

	for start := 0; start < rows*cols; start++ {
		if label[start] != -1 {
			continue
		}
		if t, _ := d.tiles.At(start/cols, start%cols); t != Floor {
			continue
		}

		id := int32(len(sizes))
		size := 0
		stack = append(stack[:0], start)
		label[start] = id
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			ci, cj := idx/cols, idx%cols
			for _, off := range neighborOffsets {
				ni, nj := ci+off[0], cj+off[1]
				if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
					continue
				}
				next := ni*cols + nj
				if label[next] != -1 {
					continue
				}
				if t, _ := d.tiles.At(ni, nj); t != Floor {
					continue
				}
				label[next] = id
				stack = append(stack, next)
			}
		}
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		return 0
	}

	largest := 0
	for id, size := range sizes {
		if size > sizes[largest] {
			largest = id
		}
	}
	for idx, id := range label {
		if id != -1 && id != int32(largest) {
			d.tiles.Set(idx/cols, idx%cols, Wall)
		}
	}
	return sizes[largest]
}
