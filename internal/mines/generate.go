package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

/*
RandomMines places p.MineCount mines at random, keeping start and, when
there is room for it, every neighbor of start free of mines so the first
dig always opens some ground.
*/
func (p GameParams) RandomMines(start Coord, r *rand.Rand) ([]Coord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, mineCount := p.Unpack()
	if err := d.Check(start); err != nil {
		return nil, err
	}
	if mineCount > d.Size()-1 {
		return nil, fmt.Errorf(
			"%w: %d mines with a safe start on %s", ErrNoRoom, mineCount, d,
		)
	}

	st := strides(d)
	startIdx := index(st, start)
	near := make(map[int]bool)
	for _, n := range Neighbors(start, d) {
		near[index(st, n)] = true
	}

	/*
	 * Write down the list of possible mine locations, far cells first.
	 * The start's neighborhood is only drawn from once the far cells
	 * are used up.
	 */
	far := make([]int, 0, d.Size())
	var nearby []int
	for i := range d.Size() {
		switch {
		case i == startIdx:
		case near[i]:
			nearby = append(nearby, i)
		default:
			far = append(far, i)
		}
	}

	picked := pick(far, min(mineCount, len(far)), r)
	if rest := mineCount - len(picked); rest > 0 {
		picked = append(picked, pick(nearby, rest, r)...)
	}

	grid := NewGrid[bool](d)
	mines := make([]Coord, 0, len(picked))
	for _, i := range picked {
		mines = append(mines, grid.Coord(i))
	}

	Log.WithFields(logrus.Fields{
		"seed":  p.Seed(),
		"start": start.String(),
	}).Debug("placed mines")

	return mines, nil
}

// pick takes n entries off candidates at random; candidates is reordered.
func pick(candidates []int, n int, r *rand.Rand) []int {
	out := make([]int, 0, n)
	k := len(candidates)
	for range n {
		i := r.IntN(k)
		out = append(out, candidates[i])
		k--
		candidates[i], candidates[k] = candidates[k], candidates[i]
	}
	return out
}

// NewRandomGame builds a game with random mines and makes the first dig
// at start.
func NewRandomGame(p GameParams, start Coord, r *rand.Rand) (*Game, error) {
	mines, err := p.RandomMines(start, r)
	if err != nil {
		return nil, err
	}
	g, err := NewGame(p.Dims, mines)
	if err != nil {
		return nil, err
	}
	if _, err := g.Dig(start); err != nil {
		return nil, err
	}
	return g, nil
}
