package mines

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Dims holds the extent of every axis of a board.
type Dims []int

// Coord addresses a single cell; Coord[i] lies in [0, Dims[i]).
type Coord []int

func (d Dims) Rank() int {
	return len(d)
}

// Size is the total number of cells.
func (d Dims) Size() int {
	if len(d) == 0 {
		return 0
	}
	n := 1
	for _, e := range d {
		n *= e
	}
	return n
}

func (d Dims) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidDims)
	}
	for axis, e := range d {
		if e < 1 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidDims, axis, e)
		}
	}
	return nil
}

func (d Dims) Contains(c Coord) bool {
	if len(c) != len(d) {
		return false
	}
	for i, x := range c {
		if x < 0 || x >= d[i] {
			return false
		}
	}
	return true
}

// Check reports why c cannot address a cell of d, if it cannot.
func (d Dims) Check(c Coord) error {
	if len(c) != len(d) {
		return &CoordError{Coord: c, Err: ErrRank}
	}
	if !d.Contains(c) {
		return &CoordError{Coord: c, Err: ErrOutOfBounds}
	}
	return nil
}

// Dims implements [fmt.Stringer]
func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, "x")
}

func ParseDims(s string) (Dims, error) {
	var d Dims
	for _, part := range strings.Split(s, "x") {
		e, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDims, s)
		}
		d = append(d, e)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Coord implements [fmt.Stringer]
func (c Coord) String() string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = strconv.Itoa(x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (c Coord) Equal(o Coord) bool {
	return slices.Equal(c, o)
}

/*
Neighbors returns the Chebyshev neighborhood of c: every coordinate that
differs from c by -1, 0 or +1 on each axis independently, except c
itself and anything falling off the board.

The offsets are walked like an odometer over {-1, 0, +1}^N, with every
digit clamped to the valid range of its axis, so no candidate is ever
produced twice.
*/
func Neighbors(c Coord, d Dims) []Coord {
	n := len(d)
	if n == 0 || len(c) != n {
		return nil
	}

	lo := make([]int, n)
	hi := make([]int, n)
	size := 1
	for i := range n {
		lo[i] = max(c[i]-1, 0)
		hi[i] = min(c[i]+1, d[i]-1)
		if lo[i] > hi[i] {
			return nil
		}
		size *= hi[i] - lo[i] + 1
	}

	result := make([]Coord, 0, size-1)
	cur := Coord(slices.Clone(lo))
	for {
		if !slices.Equal(cur, c) {
			result = append(result, slices.Clone(cur))
		}
		axis := n - 1
		for ; axis >= 0; axis-- {
			if cur[axis] < hi[axis] {
				cur[axis]++
				break
			}
			cur[axis] = lo[axis]
		}
		if axis < 0 {
			return result
		}
	}
}

/*
AllCoordinates enumerates every cell of d in row-major order (the last
axis varies fastest). Each range over the returned sequence starts a
new traversal; yielded coordinates are fresh slices the caller may keep.
*/
func AllCoordinates(d Dims) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if d.Size() == 0 {
			return
		}
		cur := make(Coord, len(d))
		for {
			if !yield(slices.Clone(cur)) {
				return
			}
			axis := len(d) - 1
			for ; axis >= 0; axis-- {
				cur[axis]++
				if cur[axis] < d[axis] {
					break
				}
				cur[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}
