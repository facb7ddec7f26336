package mines

import "errors"

var (
	ErrInvalidDims   = errors.New("invalid dimensions")
	ErrRank          = errors.New("coordinate rank does not match dimensions")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrDuplicateMine = errors.New("duplicate mine")
	ErrParams        = errors.New("invalid game params")
	ErrNoRoom        = errors.New("not enough room for mines")
	ErrCorrupt       = errors.New("corrupt game data")
)

// CoordError ties an error to the coordinate that caused it.
type CoordError struct {
	Coord Coord
	Err   error
}

// [CoordError] implements [error]
func (e *CoordError) Error() string {
	return e.Err.Error() + " at " + e.Coord.String()
}

func (e *CoordError) Unwrap() error {
	return e.Err
}
