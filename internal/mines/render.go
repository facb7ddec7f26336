package mines

import "strconv"

const (
	SymbolHidden = "_"
	SymbolMine   = "."
	SymbolEmpty  = " "
)

func symbol(c Cell) string {
	switch {
	case c.IsMine():
		return SymbolMine
	case c == 0:
		return SymbolEmpty
	default:
		return strconv.Itoa(int(c))
	}
}

/*
Render projects the game onto a grid of display symbols of the same
shape as the board: "_" for a hidden cell, "." for a mine, " " for an
empty cell and the decimal count otherwise. With revealAll the
visibility mask is ignored and every cell shows its true content.

Render never modifies the game.
*/
func (g *Game) Render(revealAll bool) Grid[string] {
	out := NewGrid[string](g.Dims)
	for i := range g.Board.Len() {
		if revealAll || g.Visible.At(i) {
			out.SetAt(i, symbol(g.Board.At(i)))
		} else {
			out.SetAt(i, SymbolHidden)
		}
	}
	return out
}
