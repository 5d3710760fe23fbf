package dungeon

import (
	"errors"
	"testing"
)

func TestTilesDefaultToWall(t *testing.T) {
	d, err := New(5, 5, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			tile, err := d.TileAt(i, j)
			if err != nil {
				t.Fatalf("TileAt(%d,%d) failed: %v", i, j, err)
			}
			if tile != Wall {
				t.Errorf("fresh tile (%d,%d) = %v, want wall", i, j, tile)
			}
		}
	}
}

func TestSetTileAndPredicates(t *testing.T) {
	// 5x5, seed 42: carve two floor corners, the center stays wall.
	d, _ := New(5, 5, 42)

	if err := d.SetTile(0, 0, Floor); err != nil {
		t.Fatalf("SetTile(0,0) failed: %v", err)
	}
	if err := d.SetTile(4, 4, Floor); err != nil {
		t.Fatalf("SetTile(4,4) failed: %v", err)
	}

	if d.IsWall(0, 0) {
		t.Error("IsWall(0,0) = true after carving floor")
	}
	if !d.IsWall(2, 2) {
		t.Error("IsWall(2,2) = false for a never-written tile")
	}
	if d.IsExit(4, 4) {
		t.Error("IsExit(4,4) = true for a floor tile")
	}

	d.SetTile(4, 4, Exit)
	if !d.IsExit(4, 4) {
		t.Error("IsExit(4,4) = false after writing exit code")
	}
}

func TestOutOfBoundsErrors(t *testing.T) {
	d, _ := New(3, 3, 1)

	if _, err := d.TileAt(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("TileAt(3,0) err = %v, want ErrOutOfBounds", err)
	}
	if err := d.SetTile(0, -1, Floor); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetTile(0,-1) err = %v, want ErrOutOfBounds", err)
	}
	if err := d.SetEntrance(9, 9); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetEntrance(9,9) err = %v, want ErrOutOfBounds", err)
	}
	if err := d.SetExit(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetExit(-1,0) err = %v, want ErrOutOfBounds", err)
	}

	// The world edge reads as solid wall, never as exit.
	if !d.IsWall(-1, 0) {
		t.Error("IsWall(-1,0) should be true")
	}
	if d.IsExit(3, 3) {
		t.Error("IsExit(3,3) should be false")
	}
}

func TestSetEntranceWritesTileAndMoves(t *testing.T) {
	d, _ := New(4, 4, 1)

	if err := d.SetEntrance(1, 1); err != nil {
		t.Fatalf("SetEntrance failed: %v", err)
	}
	if tile, _ := d.TileAt(1, 1); tile != Entrance {
		t.Errorf("tile at entrance = %v, want entrance", tile)
	}

	// Moving the entrance reverts the old cell to floor.
	if err := d.SetEntrance(2, 2); err != nil {
		t.Fatalf("second SetEntrance failed: %v", err)
	}
	if tile, _ := d.TileAt(1, 1); tile != Floor {
		t.Errorf("old entrance tile = %v, want floor", tile)
	}
	pos, ok := d.EntrancePos()
	if !ok || !pos.Equal(At(2, 2)) {
		t.Errorf("EntrancePos = %v/%v, want (2,2)/true", pos, ok)
	}
}

func TestExportRowMajor(t *testing.T) {
	d, _ := New(2, 3, 7)
	d.SetTile(0, 1, Floor)
	d.SetTile(1, 2, Exit)

	out := d.Export(nil)
	want := []Tile{Wall, Floor, Wall, Wall, Wall, Exit}
	if len(out) != len(want) {
		t.Fatalf("Export length = %d, want %d", len(out), len(want))
	}
	for k := range want {
		if out[k] != want[k] {
			t.Errorf("Export[%d] = %v, want %v", k, out[k], want[k])
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	// Two dungeons with the same seed draw identical random sequences.
	d1, _ := New(10, 10, 1234)
	d2, _ := New(10, 10, 1234)

	for k := 0; k < 100; k++ {
		if a, b := d1.Rand().Int63(), d2.Rand().Int63(); a != b {
			t.Fatalf("random sequences diverged at draw %d: %d vs %d", k, a, b)
		}
	}
}

func TestGenerateUnknownMethodNoMutation(t *testing.T) {
	d, _ := New(8, 8, 42)
	d.SetTile(3, 3, Floor)
	before := d.Export(nil)

	err := d.Generate(Method(99))
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("Generate(99) err = %v, want ErrUnknownMethod", err)
	}

	after := d.Export(nil)
	for k := range before {
		if before[k] != after[k] {
			t.Fatalf("tile %d changed by failed generation", k)
		}
	}
}

func TestGenerateUnregisteredMethodNoMutation(t *testing.T) {
	// Temporarily drop a registered generator to exercise the
	// not-implemented branch.
	mu.Lock()
	saved := factories[MethodVoronoi]
	delete(factories, MethodVoronoi)
	mu.Unlock()
	defer func() {
		mu.Lock()
		factories[MethodVoronoi] = saved
		mu.Unlock()
	}()

	d, _ := New(8, 8, 42)
	d.SetTile(2, 5, Floor)
	before := d.Export(nil)

	err := d.Generate(MethodVoronoi)
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("err = %v, want ErrNotImplemented", err)
	}

	after := d.Export(nil)
	for k := range before {
		if before[k] != after[k] {
			t.Fatalf("tile %d changed by unimplemented generation", k)
		}
	}
}

func TestPlaceRoom(t *testing.T) {
	d, _ := New(10, 10, 1)

	if err := d.PlaceRoom(At(2, 2), At(4, 5)); err != nil {
		t.Fatalf("PlaceRoom failed: %v", err)
	}
	for i := 2; i <= 4; i++ {
		for j := 2; j <= 5; j++ {
			if d.IsWall(i, j) {
				t.Errorf("(%d,%d) still wall inside placed room", i, j)
			}
		}
	}
	if !d.IsWall(1, 2) || !d.IsWall(2, 6) {
		t.Error("room leaked outside its corners")
	}

	// Corners given in any order work.
	if err := d.PlaceRoom(At(8, 8), At(6, 6)); err != nil {
		t.Fatalf("PlaceRoom with swapped corners failed: %v", err)
	}
	if d.IsWall(7, 7) {
		t.Error("(7,7) still wall after swapped-corner room")
	}

	// Partially out of bounds fails and carves nothing.
	before := d.Export(nil)
	if err := d.PlaceRoom(At(8, 8), At(11, 11)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("out-of-bounds PlaceRoom err = %v, want ErrOutOfBounds", err)
	}
	after := d.Export(nil)
	for k := range before {
		if before[k] != after[k] {
			t.Fatal("failed PlaceRoom mutated tiles")
		}
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	d, _ := New(12, 16, 99)
	if err := d.Generate(MethodNaive); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	raw := d.ExportBytes()
	restored, err := Restore(12, 16, 99, TilesFromBytes(raw))
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if got := restored.Export(nil); len(got) != 12*16 {
		t.Fatalf("restored export length = %d", len(got))
	}
	orig := d.Export(nil)
	for k, tile := range restored.Export(nil) {
		if tile != orig[k] {
			t.Fatalf("restored tile %d = %v, want %v", k, tile, orig[k])
		}
	}

	wantEnter, _ := d.EntrancePos()
	gotEnter, ok := restored.EntrancePos()
	if !ok || !gotEnter.Equal(wantEnter) {
		t.Errorf("restored entrance = %v/%v, want %v", gotEnter, ok, wantEnter)
	}
	wantExit, _ := d.ExitPos()
	gotExit, ok := restored.ExitPos()
	if !ok || !gotExit.Equal(wantExit) {
		t.Errorf("restored exit = %v/%v, want %v", gotExit, ok, wantExit)
	}
}
