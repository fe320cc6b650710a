package service

import (
	"errors"
	"time"

	"github.com/wricardo/tty-fifteen/game/engine"
)

// GameState is the lifecycle state of a game
type GameState string

const (
	Playing    GameState = "playing"
	Won        GameState = "won"
	Terminated GameState = "terminated"
)

// Event types
const (
	EventMove    = "move"
	EventBlocked = "blocked"
	EventIgnored = "ignored"
	EventVictory = "victory"
	EventRestart = "restart"
)

var (
	ErrTerminated   = errors.New("game terminated")
	ErrTooManyMoves = errors.New("too many moves")
)

// GameEvent represents something that happened while handling a command
type GameEvent struct {
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Direction engine.Direction `json:"direction,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success   bool             `json:"success"`
	Direction engine.Direction `json:"direction"`
	State     GameState        `json:"state"`
	View      engine.View      `json:"view"`
	Message   string           `json:"message"`
	Events    []GameEvent      `json:"events,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	RequestedMoves int         `json:"requested_moves"`
	MovesExecuted  int         `json:"moves_executed"`
	TilesMoved     int         `json:"tiles_moved"`
	Results        []bool      `json:"results"`
	State          GameState   `json:"state"`
	View           engine.View `json:"view"`
	StoppedReason  string      `json:"stopped_reason,omitempty"`
	Events         []GameEvent `json:"events"`
}

// StateInfo is the read-only picture of a game handed to front ends
type StateInfo struct {
	State         GameState          `json:"state"`
	View          engine.View        `json:"view"`
	PossibleMoves []engine.Direction `json:"possible_moves"`
	Misplaced     int                `json:"misplaced"`
	Distance      int                `json:"distance"`
}
