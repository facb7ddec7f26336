package mines

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Cell is the true content of a board square: Mine, or the number of
// mines among its neighbors.
type Cell int

const Mine Cell = -1

func (c Cell) IsMine() bool {
	return c == Mine
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	if c == Mine {
		return "."
	}
	return strconv.Itoa(int(c))
}

type GameState int

const (
	Ongoing GameState = iota
	Defeat
	Victory
)

var gameStateNames = [...]string{
	Ongoing: "ongoing",
	Defeat:  "defeat",
	Victory: "victory",
}

// GameState implements [fmt.Stringer]
func (s GameState) String() string {
	if s < 0 || int(s) >= len(gameStateNames) {
		return "GameState(" + strconv.Itoa(int(s)) + ")"
	}
	return gameStateNames[s]
}

func (s GameState) Terminal() bool {
	return s == Defeat || s == Victory
}

func (s GameState) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(gameStateNames) {
		return nil, fmt.Errorf("unknown game state %d", int(s))
	}
	return []byte(gameStateNames[s]), nil
}

func (s *GameState) UnmarshalText(text []byte) error {
	for i, name := range gameStateNames {
		if name == string(text) {
			*s = GameState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", text)
}

/*
Game is the whole state of one N-dimensional game. Dims and Board never
change after NewGame; Visible only ever gains true entries; State leaves
Ongoing at most once.

A Game has a single owner and is not safe for concurrent use.
*/
type Game struct {
	Dims    Dims
	Board   Grid[Cell]
	Visible Grid[bool]
	State   GameState
}

func validateMines(d Dims, mines []Coord) error {
	if err := d.Validate(); err != nil {
		return err
	}
	seen := make(map[int]bool, len(mines))
	st := strides(d)
	for _, m := range mines {
		if err := d.Check(m); err != nil {
			return err
		}
		i := index(st, m)
		if seen[i] {
			return &CoordError{Coord: m, Err: ErrDuplicateMine}
		}
		seen[i] = true
	}
	return nil
}

/*
NewGame lays out the mines and counts, for every safe cell, how many of
its neighbors are mines. Malformed input (bad dims, a mine of the wrong
rank or outside the board, the same mine twice) is rejected before
anything is built.

A board that is all mines starts out as Victory: there is no hidden safe
cell left to find.
*/
func NewGame(d Dims, mines []Coord) (*Game, error) {
	if err := validateMines(d, mines); err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}

	board := NewGrid[Cell](d)
	for _, m := range mines {
		board.Set(m, Mine)
	}
	for _, m := range mines {
		for _, n := range Neighbors(m, d) {
			if i := board.Index(n); !board.At(i).IsMine() {
				board.SetAt(i, board.At(i)+1)
			}
		}
	}

	g := &Game{
		Dims:    board.Dims(),
		Board:   board,
		Visible: NewGrid[bool](d),
		State:   Ongoing,
	}
	if g.HiddenSafe() == 0 {
		g.State = Victory
	}

	Log.WithFields(logrus.Fields{
		"dims":  g.Dims.String(),
		"mines": len(mines),
		"state": g.State.String(),
	}).Debug("new game")

	return g, nil
}

// HiddenSafe counts the safe cells that are not yet visible.
func (g *Game) HiddenSafe() int {
	n := 0
	for i := range g.Board.Len() {
		if !g.Visible.At(i) && !g.Board.At(i).IsMine() {
			n++
		}
	}
	return n
}

func (g *Game) Over() bool {
	return g.State.Terminal()
}

func (g *Game) MineCount() int {
	n := 0
	for i := range g.Board.Len() {
		if g.Board.At(i).IsMine() {
			n++
		}
	}
	return n
}

// Mines lists the mine coordinates in row-major order.
func (g *Game) Mines() []Coord {
	var mines []Coord
	for c := range AllCoordinates(g.Dims) {
		if g.Board.Get(c).IsMine() {
			mines = append(mines, c)
		}
	}
	return mines
}
