// Package config provides YAML-backed configuration for dungeon generation.
// Each generation method has its own parameter section; a loader resolves
// user overrides with an embedded default as the final fallback.
package config

import (
	"fmt"

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

// MapConfig sets the dungeon dimensions.
type MapConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// NaiveConfig parameterizes the naive room scatterer.
type NaiveConfig struct {
	RoomAttempts int `yaml:"room_attempts"`
	MinRoomSize  int `yaml:"min_room_size"`
	MaxRoomSize  int `yaml:"max_room_size"`
}

// BSPConfig parameterizes the binary space partitioning generator.
type BSPConfig struct {
	MinLeafSize int `yaml:"min_leaf_size"`
	MaxLeafSize int `yaml:"max_leaf_size"`
	MinRoomSize int `yaml:"min_room_size"`
	Padding     int `yaml:"padding"`
}

// DrunkenWalkConfig parameterizes the random walker.
type DrunkenWalkConfig struct {
	FloorRatio float64 `yaml:"floor_ratio"`
	MaxSteps   int     `yaml:"max_steps"`
}

// CellularConfig parameterizes the cellular automaton.
type CellularConfig struct {
	WallChance float64 `yaml:"wall_chance"`
	Iterations int     `yaml:"iterations"`
	WallLimit  int     `yaml:"wall_limit"`
}

// VoronoiConfig parameterizes the Voronoi chamber generator.
type VoronoiConfig struct {
	Sites      int     `yaml:"sites"`
	FloorShare float64 `yaml:"floor_share"`
}

// PerlinConfig parameterizes the noise cave generator.
type PerlinConfig struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Threshold   float64 `yaml:"threshold"`
}

// DungeonConfig aggregates the map shape and all per-method parameters.
type DungeonConfig struct {
	Map         MapConfig         `yaml:"map"`
	Naive       NaiveConfig       `yaml:"naive"`
	BSP         BSPConfig         `yaml:"bsp"`
	DrunkenWalk DrunkenWalkConfig `yaml:"drunken_walk"`
	Cellular    CellularConfig    `yaml:"cellular"`
	Voronoi     VoronoiConfig     `yaml:"voronoi"`
	Perlin      PerlinConfig      `yaml:"perlin"`
}

// Validate checks the values a bad config file could break generation with.
func (c DungeonConfig) Validate() error {
	if c.Map.Rows < 3 || c.Map.Cols < 3 {
		return fmt.Errorf("config: map must be at least 3x3, got %dx%d",
			c.Map.Rows, c.Map.Cols)
	}
	if c.Naive.MinRoomSize > c.Naive.MaxRoomSize {
		return fmt.Errorf("config: naive min_room_size %d exceeds max_room_size %d",
			c.Naive.MinRoomSize, c.Naive.MaxRoomSize)
	}
	if c.DrunkenWalk.FloorRatio < 0 || c.DrunkenWalk.FloorRatio > 1 {
		return fmt.Errorf("config: drunken_walk floor_ratio %v outside [0,1]",
			c.DrunkenWalk.FloorRatio)
	}
	if c.Cellular.WallChance < 0 || c.Cellular.WallChance > 1 {
		return fmt.Errorf("config: cellular wall_chance %v outside [0,1]",
			c.Cellular.WallChance)
	}
	if c.Voronoi.FloorShare < 0 || c.Voronoi.FloorShare > 1 {
		return fmt.Errorf("config: voronoi floor_share %v outside [0,1]",
			c.Voronoi.FloorShare)
	}
	return nil
}

// GeneratorFor builds a parameterized generator for the given method.
func (c DungeonConfig) GeneratorFor(m dungeon.Method) (dungeon.Generator, error) {
	switch m {
	case dungeon.MethodNaive:
		return dungeon.NaiveGen{
			RoomAttempts: c.Naive.RoomAttempts,
			MinRoomSize:  c.Naive.MinRoomSize,
			MaxRoomSize:  c.Naive.MaxRoomSize,
		}, nil
	case dungeon.MethodBSP:
		return dungeon.BSPGen{
			MinLeafSize: c.BSP.MinLeafSize,
			MaxLeafSize: c.BSP.MaxLeafSize,
			MinRoomSize: c.BSP.MinRoomSize,
			Padding:     c.BSP.Padding,
		}, nil
	case dungeon.MethodDrunkenWalk:
		return dungeon.DrunkenWalkGen{
			FloorRatio: c.DrunkenWalk.FloorRatio,
			MaxSteps:   c.DrunkenWalk.MaxSteps,
		}, nil
	case dungeon.MethodCellularAutomata:
		return dungeon.CellularGen{
			WallChance: c.Cellular.WallChance,
			Iterations: c.Cellular.Iterations,
			WallLimit:  c.Cellular.WallLimit,
		}, nil
	case dungeon.MethodVoronoi:
		return dungeon.VoronoiGen{
			Sites:      c.Voronoi.Sites,
			FloorShare: c.Voronoi.FloorShare,
		}, nil
	case dungeon.MethodPerlinNoise:
		return dungeon.PerlinGen{
			Octaves:     c.Perlin.Octaves,
			Frequency:   c.Perlin.Frequency,
			Amplitude:   c.Perlin.Amplitude,
			Persistence: c.Perlin.Persistence,
			Lacunarity:  c.Perlin.Lacunarity,
			Threshold:   c.Perlin.Threshold,
		}, nil
	default:
		return nil, fmt.Errorf("config: no parameters for method %s", m)
	}
}
