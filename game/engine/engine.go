package engine

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// State management
	Shuffle()
	SetGrid(grid []int) error
	View() View
	IsSolved() bool
	Moves() int

	// Movement operations
	MoveBlank(dir Direction) bool
	CanMove(dir Direction) bool
	PossibleMoves() []Direction

	// Dimensions
	Lines() int
	Rows() int
}

// Puzzle implements the Engine interface. It is not safe for concurrent use.
type Puzzle struct {
	lines int
	rows  int
	grid  []int
	blank int
	moves int
	rnd   *rand.Rand
}

// NewRand returns a generator seeded from the runtime's hash seed
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// ValidateDimensions checks that both dimensions lie in [MinDimension, MaxDimension]
func ValidateDimensions(lines, rows int) error {
	if lines < MinDimension || lines > MaxDimension {
		return fmt.Errorf("%w: lines must be between %d and %d, got %d", ErrInvalidDimensions, MinDimension, MaxDimension, lines)
	}
	if rows < MinDimension || rows > MaxDimension {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrInvalidDimensions, MinDimension, MaxDimension, rows)
	}
	return nil
}

// NewPuzzle creates a shuffled puzzle with the given number of lines and
// rows (tiles per line). A nil rnd gets a freshly seeded generator.
func NewPuzzle(lines, rows int, rnd *rand.Rand) (*Puzzle, error) {
	if err := ValidateDimensions(lines, rows); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewRand()
	}

	p := &Puzzle{
		lines: lines,
		rows:  rows,
		grid:  make([]int, lines*rows),
		rnd:   rnd,
	}
	p.Shuffle()

	return p, nil
}

// Shuffle fills the grid with a uniform random permutation of 0..size-1
// and resets the move counter. The result may be unsolvable.
func (p *Puzzle) Shuffle() {
	for i := range p.grid {
		p.grid[i] = i
	}
	p.rnd.Shuffle(len(p.grid), func(i, j int) {
		p.grid[i], p.grid[j] = p.grid[j], p.grid[i]
	})
	p.blank = indexOf(p.grid, 0)
	p.moves = 0
}

// SetGrid installs an explicit arrangement. The move counter is left as is.
func (p *Puzzle) SetGrid(grid []int) error {
	if err := ValidateGrid(grid, p.lines*p.rows); err != nil {
		return err
	}
	copy(p.grid, grid)
	p.blank = indexOf(p.grid, 0)
	return nil
}

// IsSolved reports whether tiles 1..size-1 are in order followed by the blank
func (p *Puzzle) IsSolved() bool {
	for i := 1; i < len(p.grid); i++ {
		if p.grid[i-1] != i {
			return false
		}
	}
	return true
}

// View returns a snapshot of the puzzle
func (p *Puzzle) View() View {
	grid := make([]int, len(p.grid))
	copy(grid, p.grid)

	return View{
		Lines:  p.lines,
		Rows:   p.rows,
		Grid:   grid,
		Blank:  p.blank,
		Moves:  p.moves,
		Solved: p.IsSolved(),
	}
}

// Moves returns the number of accepted moves since the last shuffle
func (p *Puzzle) Moves() int {
	return p.moves
}

// Blank returns the index of the blank cell
func (p *Puzzle) Blank() int {
	return p.blank
}

// Lines returns the number of grid lines
func (p *Puzzle) Lines() int {
	return p.lines
}

// Rows returns the number of tiles per line
func (p *Puzzle) Rows() int {
	return p.rows
}
