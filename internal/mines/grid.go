package mines

import (
	"fmt"
	"slices"
)

// Grid is an N-dimensional array stored as one flat row-major buffer.
type Grid[T any] struct {
	dims    Dims
	strides []int
	cells   []T
}

func strides(d Dims) []int {
	s := make([]int, len(d))
	step := 1
	for i := len(d) - 1; i >= 0; i-- {
		s[i] = step
		step *= d[i]
	}
	return s
}

func NewGrid[T any](d Dims) Grid[T] {
	return Grid[T]{
		dims:    slices.Clone(d),
		strides: strides(d),
		cells:   make([]T, d.Size()),
	}
}

// Fill returns a grid with every cell set to v.
func Fill[T any](d Dims, v T) Grid[T] {
	g := NewGrid[T](d)
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

func (g Grid[T]) Dims() Dims {
	return slices.Clone(g.dims)
}

func (g Grid[T]) Len() int {
	return len(g.cells)
}

func index(strides []int, c Coord) int {
	i := 0
	for axis, x := range c {
		i += x * strides[axis]
	}
	return i
}

// Index maps c to its position in the flat buffer. c must be in range.
func (g Grid[T]) Index(c Coord) int {
	return index(g.strides, c)
}

// Coord is the inverse of Index.
func (g Grid[T]) Coord(i int) Coord {
	c := make(Coord, len(g.dims))
	for axis, s := range g.strides {
		c[axis] = i / s
		i %= s
	}
	return c
}

func (g Grid[T]) Get(c Coord) T {
	return g.cells[g.Index(c)]
}

func (g Grid[T]) Set(c Coord, v T) {
	g.cells[g.Index(c)] = v
}

func (g Grid[T]) At(i int) T {
	return g.cells[i]
}

func (g Grid[T]) SetAt(i int, v T) {
	g.cells[i] = v
}

// Values exposes the flat buffer in row-major order.
func (g Grid[T]) Values() []T {
	return slices.Clone(g.cells)
}

func (g Grid[T]) Clone() Grid[T] {
	return Grid[T]{
		dims:    slices.Clone(g.dims),
		strides: slices.Clone(g.strides),
		cells:   slices.Clone(g.cells),
	}
}

/*
Nested projects the grid into nested slices, one level per axis, with
[]T at the innermost level. A 2x4 grid of strings becomes a []any of
two []string values.
*/
func (g Grid[T]) Nested() any {
	if len(g.dims) == 0 {
		return nil
	}
	var build func(axis, offset int) any
	build = func(axis, offset int) any {
		if axis == len(g.dims)-1 {
			return slices.Clone(g.cells[offset : offset+g.dims[axis]])
		}
		out := make([]any, g.dims[axis])
		for i := range out {
			out[i] = build(axis+1, offset+i*g.strides[axis])
		}
		return out
	}
	return build(0, 0)
}

// Grid implements [fmt.Stringer]
func (g Grid[T]) String() string {
	return fmt.Sprint(g.Nested())
}
