package mines

import (
	"github.com/sirupsen/logrus"
)

/*
Dig uncovers the cell at c and returns how many cells became visible.

Digging a mine shows that one cell and loses the game. Digging a safe
cell floods outwards: every cell reached from c through a chain of
zero-count cells is shown, together with the numbered cells bordering
that region. Once no hidden safe cell is left the game is won.

A finished game ignores further digs. A coordinate that does not fit the
board is an error and leaves the game untouched.
*/
func (g *Game) Dig(c Coord) (int, error) {
	if err := g.Dims.Check(c); err != nil {
		return 0, err
	}
	if g.State.Terminal() {
		return 0, nil
	}

	start := g.Board.Index(c)
	if g.Board.At(start).IsMine() {
		g.Visible.SetAt(start, true)
		g.State = Defeat
		Log.WithFields(logrus.Fields{
			"coord": c.String(),
		}).Debug("mine hit")
		return 1, nil
	}

	revealed := 0
	for _, i := range g.floodFill(start) {
		if !g.Visible.At(i) {
			g.Visible.SetAt(i, true)
			revealed++
		}
	}

	if g.HiddenSafe() == 0 {
		g.State = Victory
	}

	Log.WithFields(logrus.Fields{
		"coord":    c.String(),
		"revealed": revealed,
		"state":    g.State.String(),
	}).Debug("dig")

	return revealed, nil
}

/*
floodFill collects the flat indices reached from start. Zero-count cells
pass the fill on to all of their neighbors; numbered cells are included
but stop it. Every cell is queued at most once.
*/
func (g *Game) floodFill(start int) []int {
	var (
		seen = make([]bool, g.Board.Len())
		todo = newCellTodo(g.Board.Len())
		fill []int
	)

	seen[start] = true
	todo.add(start)

	for !todo.empty() {
		i, _ := todo.pop()
		fill = append(fill, i)

		if g.Board.At(i) != 0 {
			continue
		}
		for _, n := range Neighbors(g.Board.Coord(i), g.Dims) {
			j := g.Board.Index(n)
			if !seen[j] {
				seen[j] = true
				todo.add(j)
			}
		}
	}

	return fill
}
