package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadDungeon("")
	if err != nil {
		t.Fatalf("LoadDungeon failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default invalid: %v", err)
	}
	if cfg.Map.Rows < 3 || cfg.Map.Cols < 3 {
		t.Errorf("default map %dx%d too small", cfg.Map.Rows, cfg.Map.Cols)
	}
	if cfg.Cellular.Iterations == 0 {
		t.Error("default cellular iterations missing")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	content := `
map:
  rows: 15
  cols: 31
drunken_walk:
  floor_ratio: 0.6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDungeon(path)
	if err != nil {
		t.Fatalf("LoadDungeon(%s) failed: %v", path, err)
	}
	if cfg.Map.Rows != 15 || cfg.Map.Cols != 31 {
		t.Errorf("map = %dx%d, want 15x31", cfg.Map.Rows, cfg.Map.Cols)
	}
	if cfg.DrunkenWalk.FloorRatio != 0.6 {
		t.Errorf("floor_ratio = %v, want 0.6", cfg.DrunkenWalk.FloorRatio)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadDungeon("/nonexistent/dungeon.yaml"); err == nil {
		t.Error("missing custom path should fail loudly")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("map: [not a mapping"), 0o644)
	if _, err := LoadDungeon(bad); err == nil {
		t.Error("malformed custom config should fail loudly")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	os.WriteFile(invalid, []byte("map:\n  rows: 1\n  cols: 1\n"), 0o644)
	if _, err := LoadDungeon(invalid); err == nil {
		t.Error("semantically invalid custom config should fail loudly")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultDungeonConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Cellular.WallChance = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("wall_chance > 1 should fail validation")
	}

	cfg = DefaultDungeonConfig()
	cfg.Naive.MinRoomSize = 10
	cfg.Naive.MaxRoomSize = 5
	if err := cfg.Validate(); err == nil {
		t.Error("min_room_size > max_room_size should fail validation")
	}
}

func TestGeneratorFor(t *testing.T) {
	cfg := DefaultDungeonConfig()
	for _, m := range dungeon.Methods() {
		gen, err := cfg.GeneratorFor(m)
		if err != nil {
			t.Errorf("GeneratorFor(%s) failed: %v", m, err)
			continue
		}
		if gen.Method() != m {
			t.Errorf("GeneratorFor(%s) returned generator for %s", m, gen.Method())
		}
	}

	if _, err := cfg.GeneratorFor(dungeon.Method(42)); err == nil {
		t.Error("unknown method should fail")
	}
}

func TestDensityPresets(t *testing.T) {
	if _, err := ParseDensityPreset("brutal"); err == nil {
		t.Error("unknown preset should fail to parse")
	}
	p, err := ParseDensityPreset("")
	if err != nil || p != DensityNormal {
		t.Errorf("empty preset = %v/%v, want normal", p, err)
	}

	base := DefaultDungeonConfig()

	sparse := DefaultDungeonConfig()
	ApplyDensityPreset(&sparse, DensitySparse)
	if sparse.DrunkenWalk.FloorRatio >= base.DrunkenWalk.FloorRatio {
		t.Error("sparse preset should lower the drunken walk floor ratio")
	}
	if err := sparse.Validate(); err != nil {
		t.Errorf("sparse preset broke validation: %v", err)
	}

	dense := DefaultDungeonConfig()
	ApplyDensityPreset(&dense, DensityDense)
	if dense.Naive.RoomAttempts <= base.Naive.RoomAttempts {
		t.Error("dense preset should raise naive room attempts")
	}
	if err := dense.Validate(); err != nil {
		t.Errorf("dense preset broke validation: %v", err)
	}

	normal := DefaultDungeonConfig()
	ApplyDensityPreset(&normal, DensityNormal)
	if normal != base {
		t.Error("normal preset should leave the config untouched")
	}
}
