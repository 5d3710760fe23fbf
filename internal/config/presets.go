package config

import "fmt"

// DensityPreset names a coarse knob over how open the generated maps are.
// It adjusts the per-method parameters in one step instead of asking users
// to tune six algorithm sections by hand.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse" // tight corridors, little open floor
	DensityNormal DensityPreset = "normal" // config values as loaded
	DensityDense  DensityPreset = "dense"  // wide open caverns, many rooms
)

// ParseDensityPreset validates a preset name from the CLI.
// An empty string means normal.
func ParseDensityPreset(s string) (DensityPreset, error) {
	switch DensityPreset(s) {
	case "", DensityNormal:
		return DensityNormal, nil
	case DensitySparse:
		return DensitySparse, nil
	case DensityDense:
		return DensityDense, nil
	default:
		return "", fmt.Errorf("config: unknown density preset %q (want sparse, normal, or dense)", s)
	}
}

// ApplyDensityPreset rescales the generation parameters in place.
func ApplyDensityPreset(cfg *DungeonConfig, preset DensityPreset) {
	switch preset {
	case DensitySparse:
		cfg.Naive.RoomAttempts = max(2, cfg.Naive.RoomAttempts/2)
		cfg.Naive.MaxRoomSize = max(cfg.Naive.MinRoomSize, cfg.Naive.MaxRoomSize-3)
		cfg.BSP.MinLeafSize += 2
		cfg.BSP.MaxLeafSize += 4
		cfg.DrunkenWalk.FloorRatio = clampRatio(cfg.DrunkenWalk.FloorRatio - 0.15)
		cfg.Cellular.WallChance = clampRatio(cfg.Cellular.WallChance + 0.05)
		cfg.Voronoi.FloorShare = clampRatio(cfg.Voronoi.FloorShare - 0.15)
		cfg.Perlin.Threshold -= 0.15
	case DensityDense:
		cfg.Naive.RoomAttempts += cfg.Naive.RoomAttempts / 2
		cfg.Naive.MaxRoomSize += 3
		cfg.BSP.MinLeafSize = max(4, cfg.BSP.MinLeafSize-2)
		cfg.BSP.MaxLeafSize = max(cfg.BSP.MinLeafSize+2, cfg.BSP.MaxLeafSize-4)
		cfg.DrunkenWalk.FloorRatio = clampRatio(cfg.DrunkenWalk.FloorRatio + 0.15)
		cfg.Cellular.WallChance = clampRatio(cfg.Cellular.WallChance - 0.05)
		cfg.Voronoi.FloorShare = clampRatio(cfg.Voronoi.FloorShare + 0.15)
		cfg.Perlin.Threshold += 0.15
	}
}

// clampRatio keeps probabilities inside (0, 1) so presets can never push a
// valid config into Validate() failure.
func clampRatio(v float64) float64 {
	if v < 0.05 {
		return 0.05
	}
	if v > 0.95 {
		return 0.95
	}
	return v
}
