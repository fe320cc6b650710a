package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/tty-fifteen/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	puzzle engine.Engine
	logger *logrus.Logger
	state  GameState
	mu     sync.Mutex
}

// NewGameService creates a game service around an already shuffled puzzle.
// A nil logger discards all output.
func NewGameService(puzzle engine.Engine, logger *logrus.Logger) GameService {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	s := &gameServiceImpl{
		puzzle: puzzle,
		logger: logger,
	}
	s.state = s.initialState()

	logger.WithFields(logrus.Fields{
		"lines": puzzle.Lines(),
		"rows":  puzzle.Rows(),
		"state": s.state,
	}).Info("game started")

	return s
}

// initialState returns Won for the rare shuffle that comes out solved
func (s *gameServiceImpl) initialState() GameState {
	if s.puzzle.IsSolved() {
		return Won
	}
	return Playing
}

// Move slides one tile into the blank
func (s *gameServiceImpl) Move(ctx context.Context, dir engine.Direction) (*MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := engine.ParseDirection(string(dir)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return nil, ErrTerminated
	}

	return s.moveLocked(dir), nil
}

// moveLocked applies one move; s.mu must be held
func (s *gameServiceImpl) moveLocked(dir engine.Direction) *MoveResult {
	result := &MoveResult{Direction: dir}

	switch {
	case s.state == Won:
		result.Events = append(result.Events, newEvent(EventIgnored, dir,
			"Puzzle already solved. Restart to play again."))

	case s.puzzle.MoveBlank(dir):
		result.Success = true
		result.Events = append(result.Events, newEvent(EventMove, dir,
			fmt.Sprintf("Moved %s (%d moves)", dir, s.puzzle.Moves())))

		s.logger.WithFields(logrus.Fields{
			"direction": dir,
			"moves":     s.puzzle.Moves(),
		}).Debug("tile moved")

		if s.puzzle.IsSolved() {
			s.state = Won
			result.Events = append(result.Events, newEvent(EventVictory, dir,
				fmt.Sprintf("WIN ! Solved in %d moves", s.puzzle.Moves())))

			s.logger.WithField("moves", s.puzzle.Moves()).Info("puzzle solved")
		}

	default:
		result.Events = append(result.Events, newEvent(EventBlocked, dir,
			fmt.Sprintf("Can't move %s: no tile on that side", dir)))

		s.logger.WithField("direction", dir).Debug("move blocked")
	}

	result.State = s.state
	result.View = s.puzzle.View()
	result.Message = result.Events[len(result.Events)-1].Message

	return result
}

// BulkMove executes moves in order and stops once the puzzle is solved
func (s *gameServiceImpl) BulkMove(ctx context.Context, dirs []engine.Direction) (*BulkMoveResult, error) {
	if len(dirs) > engine.MaxBulkMoves {
		return nil, fmt.Errorf("%w: %d requested, limit is %d", ErrTooManyMoves, len(dirs), engine.MaxBulkMoves)
	}
	for _, dir := range dirs {
		if _, err := engine.ParseDirection(string(dir)); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return nil, ErrTerminated
	}

	result := &BulkMoveResult{
		RequestedMoves: len(dirs),
		Results:        make([]bool, 0, len(dirs)),
		Events:         []GameEvent{},
	}

	for i, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.state == Won {
			result.StoppedReason = fmt.Sprintf("puzzle solved before move %d", i+1)
			break
		}

		step := s.moveLocked(dir)
		result.MovesExecuted++
		if step.Success {
			result.TilesMoved++
		}
		result.Results = append(result.Results, step.Success)
		result.Events = append(result.Events, step.Events...)
	}

	result.State = s.state
	result.View = s.puzzle.View()

	return result, nil
}

// Restart reshuffles the puzzle with the same dimensions
func (s *gameServiceImpl) Restart(ctx context.Context) (*StateInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return nil, ErrTerminated
	}

	prevMoves := s.puzzle.Moves()
	s.puzzle.Shuffle()
	s.state = s.initialState()

	s.logger.WithFields(logrus.Fields{
		"previous_moves": prevMoves,
		"state":          s.state,
	}).Info("game restarted")

	return s.stateLocked(), nil
}

// Quit ends the game. Quitting twice is not an error.
func (s *gameServiceImpl) Quit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return nil
	}

	s.logger.WithFields(logrus.Fields{
		"state": s.state,
		"moves": s.puzzle.Moves(),
	}).Info("game quit")
	s.state = Terminated

	return nil
}

// State returns the current game state
func (s *gameServiceImpl) State(ctx context.Context) (*StateInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked(), nil
}

func (s *gameServiceImpl) stateLocked() *StateInfo {
	view := s.puzzle.View()

	info := &StateInfo{
		State:     s.state,
		View:      view,
		Misplaced: engine.Misplaced(view),
		Distance:  engine.ManhattanDistance(view),
	}
	if s.state == Playing {
		info.PossibleMoves = s.puzzle.PossibleMoves()
	}

	return info
}

func newEvent(eventType string, dir engine.Direction, msg string) GameEvent {
	return GameEvent{
		Type:      eventType,
		Message:   msg,
		Direction: dir,
		Timestamp: time.Now(),
	}
}
