package dungeon

import (
	"fmt"
	"sort"
	"sync"
)

// Generator is a single procedural generation strategy. Implementations
// carve tiles on the dungeon they are handed and must place an entrance and
// an exit before returning. All randomness must come from the dungeon's own
// generator so results are reproducible under a fixed seed.
type Generator interface {
	// Method returns the selector this generator implements.
	Method() Method

	// Title returns a human-readable name for display.
	Title() string

	// Generate populates the dungeon's tiles. On error the caller restores
	// the dungeon's prior state, so partial carving is acceptable here.
	Generate(d *Dungeon) error
}

// Factory creates a generator with default parameters.
type Factory func() Generator

var (
	factories = make(map[Method]Factory)
	titles    = make(map[Method]string)
	mu        sync.RWMutex
)

// RegisterGenerator adds a generator factory to the registry.
// Called from init() in each algorithm file.
// Panics if the method is already registered.
func RegisterGenerator(f Factory) {
	mu.Lock()
	defer mu.Unlock()

	g := f()
	m := g.Method()
	if _, exists := factories[m]; exists {
		panic(fmt.Sprintf("dungeon: generator %q already registered", m))
	}
	factories[m] = f
	titles[m] = g.Title()
}

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	Method Method
	Title  string
}

// Generators returns information about all registered generators,
// sorted by method.
func Generators() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(factories))
	for m := range factories {
		result = append(result, GeneratorInfo{Method: m, Title: titles[m]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Method < result[j].Method
	})
	return result
}

// NewGenerator instantiates a default-parameter generator for the method.
// Returns ErrUnknownMethod for invalid selectors and ErrNotImplemented for
// valid selectors with no registered strategy.
func NewGenerator(m Method) (Generator, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}

	mu.RLock()
	f, ok := factories[m]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, m)
	}
	return f(), nil
}

// Implemented reports whether a generator is registered for the method.
func Implemented(m Method) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[m]
	return ok
}
