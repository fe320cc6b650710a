// Package tui provides the terminal front end for tty-fifteen.
//
// The tui package implements:
//   - A Bubble Tea model that renders the grid, move counter and win banner
//   - Key bindings for arrow keys, vi-style hjkl, restart and quit
//   - The program lifecycle, from raw-mode setup to teardown on exit
//
// Rendering:
//
// Each tile is drawn as a bracketed two-digit number, the blank as empty
// space, Rows tiles per line. The move counter sits beside the first line
// and the WIN ! banner beside the second once the puzzle is solved.
//
// Usage:
//
//	gameService := service.NewGameService(puzzle, logger)
//	if err := tui.Run(ctx, gameService); err != nil {
//		log.Fatal(err)
//	}
//
// The model only talks to service.GameService, so it can be exercised in
// tests by feeding tea.KeyMsg values to Update without a terminal.
package tui
