// Package mcp provides a Model Context Protocol front end for tty-fifteen.
//
// The mcp package implements:
//   - An MCP server exposing the puzzle as tools
//   - Text rendering of the board matching the terminal layout
//   - Stdio transport for local MCP clients
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get the board, move count and possible moves
//   - move: Slide one tile into the blank (up/down/left/right)
//   - bulk_move: Slide several tiles in sequence
//   - restart: Reshuffle the board and reset the move counter
//   - game_instructions: Get the rules and the meaning of each direction
//
// Usage:
//
//	server := mcp.NewServer(gameService, logger)
//	if err := server.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
//
// The server drives the same service.GameService as the terminal UI, so
// the rules, the Won state and restart behave identically.
package mcp
