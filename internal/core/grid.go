package core

// Number is the set of cell types a Grid can hold arithmetic values of.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// Grid stores a square 2D field of cell values in row-major order. The
// dimension is fixed at construction.
type Grid[T any] struct {
	N    int
	data []T
}

// NewGrid allocates a zeroed n×n grid. Non-positive sizes yield an empty grid.
func NewGrid[T any](n int) *Grid[T] {
	if n < 0 {
		n = 0
	}
	return &Grid[T]{N: n, data: make([]T, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.N + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.N && y < g.N
}

// At returns the value at column x, row y.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.N+x] }

// Set stores v at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.N+x] = v }

// Size reports the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.N, H: g.N} }

// Map builds a new grid of the same dimension by applying f to every cell.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := NewGrid[U](g.N)
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}
