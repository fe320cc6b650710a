package engine

import (
	"fmt"
	"strings"
)

// indexOf returns the position of v in grid, or -1
func indexOf(grid []int, v int) int {
	for i, x := range grid {
		if x == v {
			return i
		}
	}
	return -1
}

// ValidateGrid checks that grid is a permutation of 0..size-1
func ValidateGrid(grid []int, size int) error {
	if len(grid) != size {
		return fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidGrid, size, len(grid))
	}

	seen := make([]bool, size)
	for i, v := range grid {
		if v < 0 || v >= size {
			return fmt.Errorf("%w: value %d at index %d out of range [0,%d]", ErrInvalidGrid, v, i, size-1)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears more than once", ErrInvalidGrid, v)
		}
		seen[v] = true
	}

	return nil
}

// Position converts a grid index to its line and column
func (v View) Position(i int) (line, col int) {
	return i / v.Rows, i % v.Rows
}

// TileLabel formats a tile as a two-digit number, or blanks for the empty cell
func TileLabel(tile int) string {
	if tile == 0 {
		return "  "
	}
	return fmt.Sprintf("%02d", tile)
}

// Render lays the grid out as bracketed tiles, Rows tiles per line
func Render(v View) string {
	var b strings.Builder
	for i, tile := range v.Grid {
		b.WriteString("|" + TileLabel(tile) + "|")
		if (i+1)%v.Rows == 0 && i+1 < len(v.Grid) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Misplaced counts tiles (not the blank) that are away from their solved position
func Misplaced(v View) int {
	count := 0
	for i, tile := range v.Grid {
		if tile != 0 && tile != i+1 {
			count++
		}
	}
	return count
}

// ManhattanDistance sums, over every tile, the line and column distance
// between its current cell and its solved cell.
func ManhattanDistance(v View) int {
	total := 0
	for i, tile := range v.Grid {
		if tile == 0 {
			continue
		}
		line, col := v.Position(i)
		goalLine, goalCol := v.Position(tile - 1)
		total += abs(line-goalLine) + abs(col-goalCol)
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
