// Package grid provides a fixed-size 2D container backed by a single
// contiguous buffer. Cells are stored in row-major order: index = i*cols + j.
package grid

import "fmt"

// Grid is a rectangular 2D array of T. Dimensions are fixed at construction
// and the backing buffer is owned exclusively by the grid; Export hands out
// copies only.
type Grid[T any] struct {
	rows int
	cols int
	data []T
}

// New creates a grid with the given dimensions. All cells hold the zero
// value of T. Returns an error for non-positive dimensions.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", rows, cols)
	}
	return &Grid[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Len returns the total number of cells (rows * cols).
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// index converts a (row, column) pair to a flat buffer offset.
func (g *Grid[T]) index(i, j int) int {
	return i*g.cols + j
}

// At returns the value at (i, j). The second return value is false when the
// position is out of bounds.
func (g *Grid[T]) At(i, j int) (T, bool) {
	if !g.InBounds(i, j) {
		var zero T
		return zero, false
	}
	return g.data[g.index(i, j)], true
}

// Set stores v at (i, j). Reports whether the position was in bounds.
func (g *Grid[T]) Set(i, j int, v T) bool {
	if !g.InBounds(i, j) {
		return false
	}
	g.data[g.index(i, j)] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for k := range g.data {
		g.data[k] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// Export copies the whole buffer into dst in row-major order and returns the
// resulting slice. dst is grown (or allocated) as needed; the grid's own
// buffer is never shared.
func (g *Grid[T]) Export(dst []T) []T {
	if cap(dst) < len(g.data) {
		dst = make([]T, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}

// Restore overwrites the buffer with src, which must hold exactly
// rows*cols elements.
func (g *Grid[T]) Restore(src []T) error {
	if len(src) != len(g.data) {
		return fmt.Errorf("grid: restore length %d, want %d", len(src), len(g.data))
	}
	copy(g.data, src)
	return nil
}
