package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Dims      Dims
	MineCount int
}

func (p GameParams) Unpack() (Dims, int) {
	return p.Dims, p.MineCount
}

func (p GameParams) Validate() error {
	if err := p.Dims.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrParams, err)
	}
	if p.MineCount < 0 || p.MineCount > p.Dims.Size() {
		return fmt.Errorf(
			"%w: %d mines do not fit %s", ErrParams, p.MineCount, p.Dims,
		)
	}
	return nil
}

// Seed renders the params as "<dims>:<mines>", e.g. "9x9x3:10".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%s:%d", p.Dims, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	dimsStr, minesStr, found := strings.Cut(seed, ":")
	if !found {
		return nil, fmt.Errorf(`%w: invalid seed "%s"`, ErrParams, seed)
	}
	d, err := ParseDims(dimsStr)
	if err != nil {
		return nil, fmt.Errorf(`%w: invalid seed "%s": %w`, ErrParams, seed, err)
	}
	p := &GameParams{Dims: d}
	n, err := fmt.Sscanf(minesStr, "%d", &p.MineCount)
	if n != 1 || err != nil {
		return nil, fmt.Errorf(
			`%w: invalid seed (seed = "%s", n = %d, err = %w)`,
			ErrParams, seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
