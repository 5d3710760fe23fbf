package dungeon

// BSPGen recursively partitions the map into leaves, carves one room per
// terminal leaf, and connects sibling subtrees through their room centers.
type BSPGen struct {
	MinLeafSize int // smallest allowed leaf edge (default 6)
	MaxLeafSize int // leaves larger than this always split (default 16)
	MinRoomSize int // minimum room edge inside a leaf (default 3)
	Padding     int // gap between a room and its leaf edge (default 1)
}

func init() {
	RegisterGenerator(func() Generator { return BSPGen{} })
}

// Method returns the selector this generator implements.
func (BSPGen) Method() Method { return MethodBSP }

// Title returns a human-readable name for display.
func (BSPGen) Title() string { return "Binary space partitioning" }

func (g BSPGen) withDefaults() BSPGen {
	if g.MinLeafSize <= 0 {
		g.MinLeafSize = 6
	}
	if g.MaxLeafSize <= g.MinLeafSize {
		g.MaxLeafSize = g.MinLeafSize + 10
	}
	if g.MinRoomSize <= 0 {
		g.MinRoomSize = 3
	}
	if g.Padding < 0 {
		g.Padding = 1
	}
	return g
}

// bspLeaf is a node in the partition tree. Row/Col is the top-left corner.
type bspLeaf struct {
	Row, Col, H, W int
	left, right    *bspLeaf
	roomCenter     *Coord
}

// split divides the leaf into two children. Returns false when the leaf is
// too small to divide.
func (l *bspLeaf) split(d *Dungeon, g BSPGen) bool {
	if l.left != nil || l.right != nil {
		return false // already split
	}

	// Split across the longer axis; roughly square leaves flip a coin.
	horizontal := d.Rand().Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		horizontal = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		horizontal = true
	}

	maxSize := l.H
	if !horizontal {
		maxSize = l.W
	}
	if maxSize < g.MinLeafSize*2 {
		return false
	}

	lo := g.MinLeafSize
	hi := maxSize - g.MinLeafSize
	if lo > hi {
		return false
	}
	at := lo + d.Rand().Intn(hi-lo+1)

	if horizontal {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, H: at, W: l.W}
		l.right = &bspLeaf{Row: l.Row + at, Col: l.Col, H: l.H - at, W: l.W}
	} else {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, H: l.H, W: at}
		l.right = &bspLeaf{Row: l.Row, Col: l.Col + at, H: l.H, W: l.W - at}
	}
	return true
}

// carveRooms places one room in every terminal leaf and records centers.
func (l *bspLeaf) carveRooms(d *Dungeon, g BSPGen, rooms *[]Coord) error {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			if err := l.left.carveRooms(d, g, rooms); err != nil {
				return err
			}
		}
		if l.right != nil {
			if err := l.right.carveRooms(d, g, rooms); err != nil {
				return err
			}
		}
		return nil
	}

	rng := d.Rand()
	pad := g.Padding

	availH := l.H - 2*pad
	availW := l.W - 2*pad
	if availH < g.MinRoomSize || availW < g.MinRoomSize {
		return nil // leaf too cramped, skip
	}

	h := g.MinRoomSize + rng.Intn(availH-g.MinRoomSize+1)
	w := g.MinRoomSize + rng.Intn(availW-g.MinRoomSize+1)
	i0 := l.Row + pad + rng.Intn(availH-h+1)
	j0 := l.Col + pad + rng.Intn(availW-w+1)

	if err := d.PlaceRoom(At(i0, j0), At(i0+h-1, j0+w-1)); err != nil {
		return err
	}
	center := At(i0+h/2, j0+w/2)
	l.roomCenter = &center
	*rooms = append(*rooms, center)
	return nil
}

// anyRoom returns a room center from this subtree, if one exists.
func (l *bspLeaf) anyRoom() *Coord {
	if l.roomCenter != nil {
		return l.roomCenter
	}
	if l.left != nil {
		if c := l.left.anyRoom(); c != nil {
			return c
		}
	}
	if l.right != nil {
		if c := l.right.anyRoom(); c != nil {
			return c
		}
	}
	return nil
}

// connect carves corridors between the rooms of sibling subtrees.
func (l *bspLeaf) connect(d *Dungeon) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connect(d)
	l.right.connect(d)

	from := l.left.anyRoom()
	to := l.right.anyRoom()
	if from != nil && to != nil {
		d.carveCorridor(*from, *to)
	}
}

// Generate builds the partition tree and carves rooms and corridors.
func (g BSPGen) Generate(d *Dungeon) error {
	g = g.withDefaults()
	rows, cols := d.Rows(), d.Cols()

	d.fillAll(Wall)

	root := &bspLeaf{Row: 1, Col: 1, H: rows - 2, W: cols - 2}
	if root.H < g.MinRoomSize || root.W < g.MinRoomSize {
		return ErrNoPath
	}

	// Grow the tree until no leaf wants to split. Oversized leaves always
	// split; the rest split three times out of four for variety.
	leaves := []*bspLeaf{root}
	for {
		split := false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.H > g.MaxLeafSize || leaf.W > g.MaxLeafSize ||
				d.Rand().Float64() < 0.75 {
				if leaf.split(d, g) {
					next = append(next, leaf.left, leaf.right)
					split = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
		if !split {
			break
		}
	}

	var rooms []Coord
	if err := root.carveRooms(d, g, &rooms); err != nil {
		return err
	}
	if len(rooms) == 0 {
		// Degenerate map, fall back to one centered room.
		if err := d.PlaceRoom(At(1, 1), At(rows-2, cols-2)); err != nil {
			return err
		}
		rooms = append(rooms, At(rows/2, cols/2))
	}
	root.connect(d)

	enter := rooms[0]
	leave := rooms[len(rooms)-1]
	if enter.Equal(leave) {
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
