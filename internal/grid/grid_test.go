package grid

import "testing"

func TestNewDimensions(t *testing.T) {
	g, err := New[byte](5, 7)
	if err != nil {
		t.Fatalf("New(5,7) failed: %v", err)
	}
	if g.Rows() != 5 || g.Cols() != 7 {
		t.Errorf("Dimensions = %dx%d, want 5x7", g.Rows(), g.Cols())
	}
	if g.Len() != 35 {
		t.Errorf("Len = %d, want 35", g.Len())
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0},
	}
	for _, c := range cases {
		if _, err := New[int](c.rows, c.cols); err == nil {
			t.Errorf("New(%d,%d) should fail", c.rows, c.cols)
		}
	}
}

func TestWriteReadConsistency(t *testing.T) {
	g, _ := New[int](4, 6)

	for i := 0; i < 4; i++ {
		for j := 0; j < 6; j++ {
			want := i*100 + j
			if !g.Set(i, j, want) {
				t.Fatalf("Set(%d,%d) reported out of bounds", i, j)
			}
			got, ok := g.At(i, j)
			if !ok {
				t.Fatalf("At(%d,%d) reported out of bounds", i, j)
			}
			if got != want {
				t.Errorf("At(%d,%d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestOutOfBoundsSignaled(t *testing.T) {
	g, _ := New[byte](3, 3)

	bad := []struct{ i, j int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100},
	}
	for _, c := range bad {
		if _, ok := g.At(c.i, c.j); ok {
			t.Errorf("At(%d,%d) should be out of bounds", c.i, c.j)
		}
		if g.Set(c.i, c.j, 1) {
			t.Errorf("Set(%d,%d) should be out of bounds", c.i, c.j)
		}
	}
}

func TestExportRowMajor(t *testing.T) {
	g, _ := New[byte](2, 3)
	g.Set(0, 0, 1)
	g.Set(0, 2, 2)
	g.Set(1, 1, 3)

	out := g.Export(nil)
	want := []byte{1, 0, 2, 0, 3, 0}
	if len(out) != len(want) {
		t.Fatalf("Export length = %d, want %d", len(out), len(want))
	}
	for k := range want {
		if out[k] != want[k] {
			t.Errorf("Export[%d] = %d, want %d", k, out[k], want[k])
		}
	}

	// Export must copy, not alias the internal buffer.
	out[0] = 99
	if v, _ := g.At(0, 0); v != 1 {
		t.Error("Export should not alias the grid buffer")
	}
}

func TestExportFreshGridSize(t *testing.T) {
	for _, c := range []struct{ rows, cols int }{{1, 1}, {3, 8}, {24, 80}} {
		g, err := New[byte](c.rows, c.cols)
		if err != nil {
			t.Fatalf("New(%d,%d) failed: %v", c.rows, c.cols, err)
		}
		if got := len(g.Export(nil)); got != c.rows*c.cols {
			t.Errorf("fresh %dx%d grid Export length = %d, want %d",
				c.rows, c.cols, got, c.rows*c.cols)
		}
	}
}

func TestDimensionsUnchangedByMutation(t *testing.T) {
	g, _ := New[int](3, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			g.Set(i, j, 7)
		}
	}
	g.Fill(9)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("Dimensions changed to %dx%d after mutation", g.Rows(), g.Cols())
	}
}

func TestCloneIndependent(t *testing.T) {
	g, _ := New[int](2, 2)
	g.Set(0, 0, 5)

	c := g.Clone()
	c.Set(0, 0, 42)

	if v, _ := g.At(0, 0); v != 5 {
		t.Errorf("mutating clone changed original: got %d, want 5", v)
	}
	if v, _ := c.At(0, 0); v != 42 {
		t.Errorf("clone value = %d, want 42", v)
	}
}

func TestRestore(t *testing.T) {
	g, _ := New[byte](2, 2)
	if err := g.Restore([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if v, _ := g.At(1, 0); v != 3 {
		t.Errorf("At(1,0) = %d, want 3", v)
	}
	if err := g.Restore([]byte{1, 2}); err == nil {
		t.Error("Restore with wrong length should fail")
	}
}
