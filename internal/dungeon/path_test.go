package dungeon

import (
	"errors"
	"testing"
)

// buildMap carves a dungeon from a string sketch: '#' wall, '.' floor,
// '<' entrance, '>' exit.
func buildMap(t *testing.T, sketch []string) *Dungeon {
	t.Helper()
	d, err := New(len(sketch), len(sketch[0]), 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, row := range sketch {
		for j, ch := range row {
			switch ch {
			case '.':
				d.SetTile(i, j, Floor)
			case '<':
				d.SetEntrance(i, j)
			case '>':
				d.SetExit(i, j)
			}
		}
	}
	return d
}

func TestSolveStraightCorridor(t *testing.T) {
	d := buildMap(t, []string{
		"#####",
		"#<.>#",
		"#####",
	})

	path, err := d.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("path length = %d, want 3", len(path))
	}
	if !path[0].Equal(At(1, 1)) || !path[2].Equal(At(1, 3)) {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
}

func TestSolveRoutesAroundWalls(t *testing.T) {
	d := buildMap(t, []string{
		"#######",
		"#<..#>#",
		"###.#.#",
		"#...#.#",
		"#.###.#",
		"#.....#",
		"#######",
	})

	path, err := d.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// Shortest route snakes down, across, and back up: 17 cells.
	if len(path) != 17 {
		t.Errorf("path length = %d, want 17", len(path))
	}
	for _, c := range path {
		if d.IsWall(c.Row, c.Col) {
			t.Errorf("path crosses wall at %v", c)
		}
	}
	// Consecutive cells are 4-adjacent.
	for k := 1; k < len(path); k++ {
		if path[k-1].Manhattan(path[k]) != 1 {
			t.Errorf("path jump between %v and %v", path[k-1], path[k])
		}
	}
}

func TestSolveNoDiagonals(t *testing.T) {
	// Diagonally touching floors do not connect under 4-adjacency.
	d := buildMap(t, []string{
		"####",
		"#<##",
		"##>#",
		"####",
	})

	if _, err := d.Solve(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Solve err = %v, want ErrNoPath", err)
	}
	if d.FindPathDijkstra() {
		t.Error("FindPathDijkstra should report false")
	}
}

func TestSolveNoPath(t *testing.T) {
	d := buildMap(t, []string{
		"#####",
		"#<#>#",
		"#####",
	})

	if d.FindPathDijkstra() {
		t.Error("walled-off exit should be unreachable")
	}
	if d.HotPath() != nil {
		t.Error("HotPath should stay nil after failed search")
	}
}

func TestSolvePreconditions(t *testing.T) {
	d, _ := New(4, 4, 1)
	if _, err := d.Solve(); !errors.Is(err, ErrNoEntrance) {
		t.Errorf("err = %v, want ErrNoEntrance", err)
	}
	d.SetEntrance(1, 1)
	if _, err := d.Solve(); !errors.Is(err, ErrNoExit) {
		t.Errorf("err = %v, want ErrNoExit", err)
	}
}

func TestHotPathBeforeSearchIsNil(t *testing.T) {
	d, _ := New(4, 4, 1)
	if d.HotPath() != nil {
		t.Error("HotPath before any search should be nil")
	}
}

func TestTieBreakIsStable(t *testing.T) {
	// An open room offers many equal-length routes; the tie-break on the
	// smaller row-major index must pick the same one every run.
	sketch := []string{
		"######",
		"#<...#",
		"#....#",
		"#...>#",
		"######",
	}
	first := buildMap(t, sketch)
	pathA, err := first.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for run := 0; run < 5; run++ {
		d := buildMap(t, sketch)
		pathB, err := d.Solve()
		if err != nil {
			t.Fatalf("run %d: Solve failed: %v", run, err)
		}
		if len(pathA) != len(pathB) {
			t.Fatalf("run %d: path length changed: %d vs %d", run, len(pathA), len(pathB))
		}
		for k := range pathA {
			if !pathA[k].Equal(pathB[k]) {
				t.Fatalf("run %d: path diverged at step %d: %v vs %v",
					run, k, pathA[k], pathB[k])
			}
		}
	}

	// Shortest distance in the open room is the Manhattan distance.
	if want := At(1, 1).Manhattan(At(3, 4)) + 1; len(pathA) != want {
		t.Errorf("path length = %d, want %d", len(pathA), want)
	}
}

func TestHotPathReturnsCopy(t *testing.T) {
	d := buildMap(t, []string{
		"#####",
		"#<.>#",
		"#####",
	})
	d.FindPathDijkstra()

	p1 := d.HotPath()
	p1[0] = At(0, 0)
	p2 := d.HotPath()
	if p2[0].Equal(At(0, 0)) {
		t.Error("HotPath should return a defensive copy")
	}
}
