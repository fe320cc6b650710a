package engine

import "errors"

// Direction names the way a tile slides into the blank
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// Validation constants
	MinDimension     = 2
	MaxDimension     = 9
	DefaultDimension = 4
	MaxBulkMoves     = 100
)

// Directions lists every direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidGrid       = errors.New("invalid grid")
	ErrInvalidDirection  = errors.New("invalid direction")
)

// View is a read-only snapshot of a puzzle. Grid is a copy and may be
// modified freely by the caller.
type View struct {
	Lines  int   `json:"lines"`
	Rows   int   `json:"rows"`
	Grid   []int `json:"grid"`
	Blank  int   `json:"blank"`
	Moves  int   `json:"moves"`
	Solved bool  `json:"solved"`
}

// Size returns the number of cells in the grid
func (v View) Size() int {
	return v.Lines * v.Rows
}
