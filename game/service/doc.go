// Package service provides the game layer between the puzzle engine and
// the front ends of tty-fifteen.
//
// The service package implements:
//   - The Playing, Won and Terminated game states
//   - Move, bulk move, restart and quit commands
//   - Game events describing what each command did
//   - Structured logging of the game's progress
//
// Core Interfaces:
//
// GameService is the only type front ends talk to. The terminal UI and
// the MCP tools both drive the same implementation, so neither reaches
// into the engine directly.
//
// State Machine:
//
// A game starts in Playing after the initial shuffle. Solving the puzzle
// moves it to Won, where further moves are ignored but restart and quit
// are still accepted. Restart reshuffles with the same dimensions and
// returns to Playing. Quit moves either state to Terminated, after which
// every command fails with ErrTerminated.
//
// Usage:
//
//	puzzle, _ := engine.NewPuzzle(4, 4, engine.NewRand())
//	gameService := service.NewGameService(puzzle, logger)
//
//	result, err := gameService.Move(ctx, engine.Up)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.State == service.Won {
//		fmt.Println("WIN !")
//	}
package service
