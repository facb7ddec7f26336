package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const M = Mine

// exampleGame2D is the 2x4 board
//
//	. 3 1 0
//	. . 1 0
func exampleGame2D(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame2D(2, 4, [][2]int{{0, 0}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	return g
}

func exampleGame3D(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(Dims{2, 4, 2}, []Coord{{0, 0, 1}, {1, 0, 0}, {1, 1, 1}})
	require.NoError(t, err)
	return g
}

func TestNewGame2D(t *testing.T) {
	g := exampleGame2D(t)
	assert.Equal(t, Dims{2, 4}, g.Dims)
	assert.Equal(t, []Cell{M, 3, 1, 0, M, M, 1, 0}, g.Board.Values())
	assert.Equal(t, make([]bool, 8), g.Visible.Values())
	assert.Equal(t, Ongoing, g.State)
	assert.Equal(t, 3, g.MineCount())
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {1, 1}}, g.Mines())
}

func TestNewGame3D(t *testing.T) {
	g := exampleGame3D(t)
	assert.Equal(t,
		[]Cell{
			3, M, 3, 3, 1, 1, 0, 0,
			M, 3, 3, M, 1, 1, 0, 0,
		},
		g.Board.Values(),
	)
	assert.Equal(t, Ongoing, g.State)
	assert.Equal(t, 13, g.HiddenSafe())
}

func TestNewGameDeterministic(t *testing.T) {
	d := Dims{4, 3, 5}
	mines := []Coord{{0, 0, 0}, {3, 2, 4}, {1, 1, 1}, {2, 1, 3}, {1, 2, 1}}
	a, err := NewGame(d, mines)
	require.NoError(t, err)
	b, err := NewGame(d, mines)
	require.NoError(t, err)
	assert.Equal(t, a.Board.Values(), b.Board.Values())
}

func TestNewGameCounts(t *testing.T) {
	d := Dims{5, 4, 3}
	mines := []Coord{{0, 0, 0}, {1, 1, 1}, {4, 3, 2}, {2, 2, 1}, {2, 1, 1}, {0, 3, 2}}
	g, err := NewGame(d, mines)
	require.NoError(t, err)

	isMine := func(c Coord) bool {
		for _, m := range mines {
			if m.Equal(c) {
				return true
			}
		}
		return false
	}

	for c := range AllCoordinates(d) {
		if isMine(c) {
			assert.Equal(t, Mine, g.Board.Get(c))
			continue
		}
		want := 0
		for _, n := range Neighbors(c, d) {
			if isMine(n) {
				want++
			}
		}
		assert.Equal(t, Cell(want), g.Board.Get(c), "count at %s", c)
	}
}

func TestNewGameInvalid(t *testing.T) {
	tests := []struct {
		name  string
		dims  Dims
		mines []Coord
		err   error
	}{
		{"no axes", Dims{}, nil, ErrInvalidDims},
		{"zero extent", Dims{3, 0}, nil, ErrInvalidDims},
		{"out of bounds", Dims{2, 4}, []Coord{{0, 0}, {2, 0}}, ErrOutOfBounds},
		{"negative", Dims{2, 4}, []Coord{{0, -1}}, ErrOutOfBounds},
		{"rank", Dims{2, 4}, []Coord{{0, 0, 0}}, ErrRank},
		{"duplicate", Dims{2, 4}, []Coord{{1, 1}, {0, 0}, {1, 1}}, ErrDuplicateMine},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewGame(test.dims, test.mines)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestNewGameAllMines(t *testing.T) {
	g, err := NewGame2D(1, 2, [][2]int{{0, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, Victory, g.State)

	n, err := g.Dig2D(0, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, g.Visible.Get(Coord{0, 0}))
}

func TestNewGameNoMines(t *testing.T) {
	g, err := NewGame(Dims{3, 3, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, Ongoing, g.State)

	n, err := g.Dig(Coord{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 27, n)
	assert.Equal(t, Victory, g.State)
}

func TestNewGameOwnsDims(t *testing.T) {
	d := Dims{2, 2}
	g, err := NewGame(d, nil)
	require.NoError(t, err)
	d[0] = 9
	assert.Equal(t, Dims{2, 2}, g.Dims)
}

func TestGameStateText(t *testing.T) {
	for _, s := range []GameState{Ongoing, Defeat, Victory} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s.String(), string(text))

		var back GameState
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
	assert.Equal(t, "ongoing", Ongoing.String())
	assert.Equal(t, "defeat", Defeat.String())
	assert.Equal(t, "victory", Victory.String())

	var s GameState
	assert.Error(t, s.UnmarshalText([]byte("draw")))
	_, err := GameState(7).MarshalText()
	assert.Error(t, err)
}
