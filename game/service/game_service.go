package service

import (
	"context"

	"github.com/wricardo/tty-fifteen/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game Operations
	Move(ctx context.Context, dir engine.Direction) (*MoveResult, error)
	BulkMove(ctx context.Context, dirs []engine.Direction) (*BulkMoveResult, error)
	Restart(ctx context.Context) (*StateInfo, error)
	Quit(ctx context.Context) error

	// Game State
	State(ctx context.Context) (*StateInfo, error)
}
