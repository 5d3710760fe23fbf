package dungeon

// VoronoiGen scatters random sites labelled floor or wall and assigns every
// tile the label of its Manhattan-nearest site, producing blobby chambers.
// Floor sites are then chained with corridors so the chambers connect.
type VoronoiGen struct {
	Sites      int     // number of sites (default 16)
	FloorShare float64 // probability a site is floor (default 0.55)
}

func init() {
	RegisterGenerator(func() Generator { return VoronoiGen{} })
}

// Method returns the selector this generator implements.
func (VoronoiGen) Method() Method { return MethodVoronoi }

// Title returns a human-readable name for display.
func (VoronoiGen) Title() string { return "Voronoi chambers" }

// Generate assigns tiles to sites and links the floor chambers.
func (g VoronoiGen) Generate(d *Dungeon) error {
	rng := d.Rand()
	rows, cols := d.Rows(), d.Cols()

	if rows < 3 || cols < 3 {
		return ErrNoPath
	}
	if g.Sites <= 0 {
		g.Sites = 16
	}
	if g.FloorShare <= 0 || g.FloorShare >= 1 {
		g.FloorShare = 0.55
	}

	sites := make([]Coord, g.Sites)
	isFloor := make([]bool, g.Sites)
	for k := range sites {
		sites[k] = At(1+rng.Intn(rows-2), 1+rng.Intn(cols-2))
		isFloor[k] = rng.Float64() < g.FloorShare
	}
	isFloor[0] = true // at least one floor chamber

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			here := At(i, j)
			best := 0
			bestDist := here.Manhattan(sites[0])
			for k := 1; k < len(sites); k++ {
				if dist := here.Manhattan(sites[k]); dist < bestDist {
					best = k
					bestDist = dist
				}
			}
			if isFloor[best] {
				d.tiles.Set(i, j, Floor)
			} else {
				d.tiles.Set(i, j, Wall)
			}
		}
	}

	// Chain the floor chambers together through their sites.
	var prev *Coord
	for k := range sites {
		if !isFloor[k] {
			continue
		}
		if prev != nil {
			d.carveCorridor(*prev, sites[k])
		}
		site := sites[k]
		prev = &site
	}

	d.wallBorder()
	d.keepLargestRegion()
	return d.placeEndpoints()
}
