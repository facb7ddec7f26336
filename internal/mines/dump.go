package mines

import (
	"fmt"
	"io"
)

func dumpGrid(w io.Writer, key string, nested any) {
	rows, ok := nested.([]any)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", key, nested)
		return
	}
	fmt.Fprintf(w, "%s:\n", key)
	for _, row := range rows {
		fmt.Fprintf(w, "    %v\n", row)
	}
}

// Dump writes a human-readable listing of g: board, dimensions, state
// and visibility, in that order.
func Dump(w io.Writer, g *Game) {
	dumpGrid(w, "board", g.Board.Nested())
	fmt.Fprintf(w, "dimensions: %s\n", g.Dims)
	fmt.Fprintf(w, "state: %s\n", g.State)
	dumpGrid(w, "visible", g.Visible.Nested())
}
