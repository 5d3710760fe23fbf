package dungeon

import "fmt"

// Method selects a procedural generation algorithm.
type Method int

const (
	MethodNaive Method = iota
	MethodBSP
	MethodDrunkenWalk
	MethodCellularAutomata
	MethodVoronoi
	MethodPerlinNoise

	methodCount // sentinel, keep last
)

// Valid reports whether m names one of the known generation methods.
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// String returns the method identifier used on the CLI and in storage.
func (m Method) String() string {
	switch m {
	case MethodNaive:
		return "naive"
	case MethodBSP:
		return "bsp"
	case MethodDrunkenWalk:
		return "drunken-walk"
	case MethodCellularAutomata:
		return "cellular"
	case MethodVoronoi:
		return "voronoi"
	case MethodPerlinNoise:
		return "perlin"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod resolves a method identifier back to its Method value.
func ParseMethod(s string) (Method, error) {
	for m := Method(0); m < methodCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Methods returns all known generation methods in declaration order.
func Methods() []Method {
	out := make([]Method, 0, methodCount)
	for m := Method(0); m < methodCount; m++ {
		out = append(out, m)
	}
	return out
}
