package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/ndmines/internal/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments; -1 means one per axis
var commandNargs = map[string]int{
	"d": -1, // dig
	"r": 0,  // render
	"a": 0,  // render with everything revealed
	"p": 0,  // dump
	"h": 0,  // help
	"q": 0,  // quit
}

const help = `commands:
  d <c0> <c1> ...  dig the cell at the given coordinate
  r                show the board
  a                show the board with every cell revealed
  p                dump the game state
  h                show this help
  q                quit`

func parseCoord(parts []string) (mines.Coord, error) {
	c := make(mines.Coord, len(parts))
	for i, p := range parts {
		x, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		c[i] = x
	}
	return c, nil
}

func executeCommand(w io.Writer, g *mines.Game, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs < 0 {
		nargs = g.Dims.Rank()
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "d":
		coord, err := parseCoord(parts[1:])
		if err != nil {
			return err
		}
		n, err := g.Dig(coord)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "revealed %d, %s\n", n, g.State)
		printBoard(w, g.Render(g.Over()))
		return nil
	case "r":
		printBoard(w, g.Render(false))
		return nil
	case "a":
		printBoard(w, g.Render(true))
		return nil
	case "p":
		mines.Dump(w, g)
		return nil
	case "h":
		fmt.Fprintln(w, help)
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}

/*
printBoard draws a rendered grid as a stack of 2-D layers spanned by the
last two axes, each headed by the coordinate of its leading axes.
*/
func printBoard(w io.Writer, grid mines.Grid[string]) {
	var (
		d       = grid.Dims()
		symbols = grid.Values()
	)
	if d.Rank() == 1 {
		fmt.Fprintln(w, strings.Join(symbols, ""))
		return
	}
	rows, cols := d[d.Rank()-2], d[d.Rank()-1]
	layer := rows * cols
	for start := 0; start < len(symbols); start += layer {
		if d.Rank() > 2 {
			fmt.Fprintf(w, "%s:\n", grid.Coord(start)[:d.Rank()-2])
		}
		for r := range rows {
			row := symbols[start+r*cols : start+(r+1)*cols]
			fmt.Fprintln(w, strings.Join(row, ""))
		}
	}
}
