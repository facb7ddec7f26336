package main

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/ndmines/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

/*
NewGameParams describes a game in URL query form, for example

	dims=9&dims=9&dims=3&mine_count=20&seed=42&start=4&start=4&start=1

Mines are either placed at random (mine_count, seed, start) or listed
explicitly, one "mine=c0,c1,..." per mine.
*/
type NewGameParams struct {
	Dims      []int    `schema:"dims,required"`
	MineCount int      `schema:"mine_count"`
	Seed      uint64   `schema:"seed"`
	Start     []int    `schema:"start"`
	Mines     []string `schema:"mine"`
}

func parseGameParams(desc string) (*NewGameParams, error) {
	query, err := url.ParseQuery(desc)
	if err != nil {
		return nil, fmt.Errorf("unable to parse game description: %w", err)
	}
	var params NewGameParams
	if err := decoder.Decode(&params, query); err != nil {
		return nil, fmt.Errorf("unable to decode game description: %w", err)
	}
	return &params, nil
}

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func parseMine(s string) (mines.Coord, error) {
	var c mines.Coord
	for _, p := range byPiece(s, ",") {
		x, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid mine %q", s)
		}
		c = append(c, x)
	}
	return c, nil
}

// NewGame builds the described game. Random layouts get their first dig
// at Start, or at the origin when no start is given.
func (p NewGameParams) NewGame() (*mines.Game, error) {
	d := mines.Dims(p.Dims)

	if len(p.Mines) > 0 {
		coords := make([]mines.Coord, len(p.Mines))
		for i, m := range p.Mines {
			c, err := parseMine(m)
			if err != nil {
				return nil, err
			}
			coords[i] = c
		}
		return mines.NewGame(d, coords)
	}

	start := mines.Coord(p.Start)
	if len(start) == 0 {
		start = make(mines.Coord, len(d))
	}
	return mines.NewRandomGame(
		mines.GameParams{Dims: d, MineCount: p.MineCount},
		start,
		createRand(p.Seed),
	)
}
