package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type gameRecord struct {
	Dims    []int
	Board   []Cell
	Visible []bool
	State   GameState
}

func (g *Game) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gameRecord{
		Dims:    g.Dims,
		Board:   g.Board.Values(),
		Visible: g.Visible.Values(),
		State:   g.State,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGame restores a game written by [Game.Bytes], checking that the
// pieces still fit together.
func DecodeGame(buf []byte) (*Game, error) {
	var rec gameRecord
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&rec); err != nil {
		return nil, err
	}

	d := Dims(rec.Dims)
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(rec.Board) != d.Size() || len(rec.Visible) != d.Size() {
		return nil, fmt.Errorf(
			"%w: %d board cells and %d visibility cells for %s",
			ErrCorrupt, len(rec.Board), len(rec.Visible), d,
		)
	}
	if _, err := rec.State.MarshalText(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	g := &Game{
		Dims:    d,
		Board:   NewGrid[Cell](d),
		Visible: NewGrid[bool](d),
		State:   rec.State,
	}
	copy(g.Board.cells, rec.Board)
	copy(g.Visible.cells, rec.Visible)
	return g, nil
}
