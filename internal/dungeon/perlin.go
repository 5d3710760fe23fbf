package dungeon

import "math"

// PerlinGen thresholds a fractal gradient-noise field into floor and wall.
// The permutation table is shuffled from the dungeon's generator, so the
// terrain is reproducible under a fixed seed.
type PerlinGen struct {
	Octaves     int     // noise layers (default 4)
	Frequency   float64 // base sample frequency (default 0.09)
	Amplitude   float64 // base layer amplitude (default 1.0)
	Persistence float64 // amplitude falloff per octave (default 0.5)
	Lacunarity  float64 // frequency growth per octave (default 2.0)
	Threshold   float64 // noise below this becomes floor (default 0.10)
}

func init() {
	RegisterGenerator(func() Generator { return PerlinGen{} })
}

// Method returns the selector this generator implements.
func (PerlinGen) Method() Method { return MethodPerlinNoise }

// Title returns a human-readable name for display.
func (PerlinGen) Title() string { return "Perlin noise caves" }

func (g PerlinGen) withDefaults() PerlinGen {
	if g.Octaves <= 0 {
		g.Octaves = 4
	}
	if g.Frequency <= 0 {
		g.Frequency = 0.09
	}
	if g.Amplitude <= 0 {
		g.Amplitude = 1.0
	}
	if g.Persistence <= 0 {
		g.Persistence = 0.5
	}
	if g.Lacunarity <= 0 {
		g.Lacunarity = 2.0
	}
	if g.Threshold == 0 {
		g.Threshold = 0.10
	}
	return g
}

// Generate samples the noise field over the grid and thresholds it.
func (g PerlinGen) Generate(d *Dungeon) error {
	g = g.withDefaults()
	rows, cols := d.Rows(), d.Cols()

	noise := newPerlinField(d)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			value := 0.0
			freq := g.Frequency
			amp := g.Amplitude
			for o := 0; o < g.Octaves; o++ {
				value += noise.at(float64(j)*freq, float64(i)*freq) * amp
				freq *= g.Lacunarity
				amp *= g.Persistence
			}
			if value < g.Threshold {
				d.tiles.Set(i, j, Floor)
			} else {
				d.tiles.Set(i, j, Wall)
			}
		}
	}

	d.wallBorder()
	if d.keepLargestRegion() < 2 {
		if err := d.carveFallbackChamber(); err != nil {
			return err
		}
	}
	return d.placeEndpoints()
}

// perlinField is classic 2D Perlin gradient noise over a shuffled
// permutation table.
type perlinField struct {
	perm [512]int
}

func newPerlinField(d *Dungeon) *perlinField {
	f := &perlinField{}
	var p [256]int
	for k := range p {
		p[k] = k
	}
	d.Rand().Shuffle(len(p), func(a, b int) {
		p[a], p[b] = p[b], p[a]
	})
	for k := 0; k < 512; k++ {
		f.perm[k] = p[k&255]
	}
	return f
}

// at returns the noise value at (x, y), roughly in [-1, 1].
func (f *perlinField) at(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := f.perm[f.perm[xi]+yi]
	ab := f.perm[f.perm[xi]+yi+1]
	ba := f.perm[f.perm[xi+1]+yi]
	bb := f.perm[f.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
