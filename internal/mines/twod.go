package mines

import "strings"

// NewGame2D is NewGame for a rows x cols board with (row, col) mines.
func NewGame2D(rows, cols int, mines [][2]int) (*Game, error) {
	coords := make([]Coord, len(mines))
	for i, m := range mines {
		coords[i] = Coord{m[0], m[1]}
	}
	return NewGame(Dims{rows, cols}, coords)
}

func (g *Game) Dig2D(row, col int) (int, error) {
	return g.Dig(Coord{row, col})
}

// Render2D returns the rendered board as rows of symbols. The game must
// be two-dimensional.
func (g *Game) Render2D(revealAll bool) [][]string {
	if g.Dims.Rank() != 2 {
		return nil
	}
	symbols := g.Render(revealAll).Values()
	rows, cols := g.Dims[0], g.Dims[1]
	out := make([][]string, rows)
	for r := range rows {
		out[r] = symbols[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out
}

// Render2DBoard draws the board as text, one line per row.
func (g *Game) Render2DBoard(revealAll bool) string {
	rows := g.Render2D(revealAll)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
