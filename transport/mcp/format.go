package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/tty-fifteen/game/engine"
	"github.com/wricardo/tty-fifteen/game/service"
)

func formatState(info *service.StateInfo) string {
	if info == nil {
		return "No puzzle state available"
	}

	var result strings.Builder
	view := info.View

	result.WriteString(fmt.Sprintf("State: %s | Size: %dx%d | Moves: %d\n",
		info.State, view.Rows, view.Lines, view.Moves))
	result.WriteString(fmt.Sprintf("Misplaced tiles: %d | Total distance: %d\n\n",
		info.Misplaced, info.Distance))
	result.WriteString(engine.Render(view))
	result.WriteString("\n")

	switch info.State {
	case service.Won:
		result.WriteString(fmt.Sprintf("\nWIN ! Solved in %d moves. Use restart to play again.", view.Moves))
	case service.Terminated:
		result.WriteString("\nGame terminated.")
	default:
		result.WriteString("\nPossible moves: " + joinDirections(info.PossibleMoves))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder

	status := "blocked"
	if result.Success {
		status = "moved"
	}
	b.WriteString(fmt.Sprintf("Move %s: %s\n", result.Direction, status))
	b.WriteString(result.Message + "\n\n")
	b.WriteString(engine.Render(result.View))
	b.WriteString(fmt.Sprintf("\n\nState: %s | Moves: %d", result.State, result.View.Moves))

	return b.String()
}

func formatBulkMoveResult(result *service.BulkMoveResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Executed %d/%d moves, %d tiles moved\n",
		result.MovesExecuted, result.RequestedMoves, result.TilesMoved))
	if result.StoppedReason != "" {
		b.WriteString("Stopped: " + result.StoppedReason + "\n")
	}

	steps := make([]string, 0, len(result.Results))
	for i, ok := range result.Results {
		mark := "✓"
		if !ok {
			mark = "✗"
		}
		steps = append(steps, fmt.Sprintf("%d:%s", i+1, mark))
	}
	if len(steps) > 0 {
		b.WriteString("Steps: " + strings.Join(steps, " ") + "\n")
	}

	b.WriteString("\n" + engine.Render(result.View))
	b.WriteString(fmt.Sprintf("\n\nState: %s | Moves: %d", result.State, result.View.Moves))
	if result.State == service.Won {
		b.WriteString("\nWIN !")
	}

	return b.String()
}

func joinDirections(dirs []engine.Direction) string {
	if len(dirs) == 0 {
		return "none"
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
