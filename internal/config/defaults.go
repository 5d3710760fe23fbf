package config

import (
	_ "embed"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// DefaultDungeonConfig returns the hardcoded default configuration, used
// when even the embedded YAML fails to parse.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Map: MapConfig{
			Rows: 24,
			Cols: 80,
		},
		Naive: NaiveConfig{
			RoomAttempts: 10,
			MinRoomSize:  3,
			MaxRoomSize:  9,
		},
		BSP: BSPConfig{
			MinLeafSize: 6,
			MaxLeafSize: 16,
			MinRoomSize: 3,
			Padding:     1,
		},
		DrunkenWalk: DrunkenWalkConfig{
			FloorRatio: 0.45,
		},
		Cellular: CellularConfig{
			WallChance: 0.45,
			Iterations: 5,
			WallLimit:  5,
		},
		Voronoi: VoronoiConfig{
			Sites:      16,
			FloorShare: 0.55,
		},
		Perlin: PerlinConfig{
			Octaves:     4,
			Frequency:   0.09,
			Amplitude:   1.0,
			Persistence: 0.5,
			Lacunarity:  2.0,
			Threshold:   0.10,
		},
	}
}
