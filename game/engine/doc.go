// Package engine provides the core puzzle logic for tty-fifteen.
//
// The engine package implements the sliding-tile mechanics including:
//   - Grid representation as a flat row-major slice with a tracked blank
//   - Uniform shuffling of the tiles
//   - Blank movement by direction with row-boundary checks
//   - Move counting and victory detection
//
// Core Types:
//
// The Engine interface defines the main contract for puzzle operations,
// implemented by Puzzle. View is the read-only snapshot handed to front
// ends, so the terminal UI, the MCP tools and tests never touch the grid
// directly.
//
// Usage:
//
//	puzzle, err := engine.NewPuzzle(4, 4, engine.NewRand())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile below the blank up into it
//	moved := puzzle.MoveBlank(engine.Up)
//	view := puzzle.View()
//
// Game Rules:
//
// The grid holds the labels 0..size-1 exactly once, 0 being the blank.
// Directions name the way a tile travels: Up slides the tile below the
// blank into it, Left slides the tile to its right, and so on. The puzzle
// is solved when tiles 1..size-1 are in order followed by the blank.
// Shuffles are uniform permutations and are not guaranteed to be solvable.
package engine
