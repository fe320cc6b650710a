package engine

import (
	"fmt"
	"strings"
)

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Opposite returns the direction that undoes d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// neighbor returns the index of the tile that slides into the blank when
// moving in dir, and whether that tile exists on the same line.
func (p *Puzzle) neighbor(dir Direction) (int, bool) {
	size := len(p.grid)

	switch dir {
	case Up:
		n := p.blank + p.rows
		return n, n < size
	case Down:
		n := p.blank - p.rows
		return n, n >= 0
	case Left:
		n := p.blank + 1
		return n, n%p.rows != 0 && n < size
	case Right:
		return p.blank - 1, p.blank%p.rows != 0
	}
	return -1, false
}

// CanMove checks if a tile can slide into the blank from dir
func (p *Puzzle) CanMove(dir Direction) bool {
	_, ok := p.neighbor(dir)
	return ok
}

// PossibleMoves returns all directions that would move a tile
func (p *Puzzle) PossibleMoves() []Direction {
	var possible []Direction

	for _, dir := range Directions {
		if p.CanMove(dir) {
			possible = append(possible, dir)
		}
	}

	return possible
}

// MoveBlank slides the neighbouring tile in dir into the blank. Moves that
// would leave the grid or wrap onto another line are no-ops and return false.
func (p *Puzzle) MoveBlank(dir Direction) bool {
	n, ok := p.neighbor(dir)
	if !ok {
		return false
	}

	p.grid[p.blank] = p.grid[n]
	p.grid[n] = 0
	p.blank = n
	p.moves++

	return true
}
