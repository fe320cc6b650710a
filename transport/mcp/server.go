package mcp

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/wricardo/tty-fifteen/game/engine"
	"github.com/wricardo/tty-fifteen/game/service"
)

const (
	ServerName    = "tty-fifteen"
	ServerVersion = "1.0.0"
)

// Server exposes one game as MCP tools
type Server struct {
	svc       service.GameService
	logger    *logrus.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server driving svc
func NewServer(svc service.GameService, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	s := &Server{
		svc:    svc,
		logger: logger,
	}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`tty-fifteen - sliding tile puzzle

Slide the numbered tiles into ascending order with the blank in the
bottom-right cell. Each move slides one tile next to the blank into it.

AVAILABLE TOOLS:
- puzzle_state: Current board, move count and possible moves
- move: Slide one tile (up/down/left/right)
- bulk_move: Slide several tiles in sequence
- restart: Reshuffle and reset the move counter
- game_instructions: Rules and direction meanings`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	directionEnum := []string{string(engine.Up), string(engine.Down), string(engine.Left), string(engine.Right)}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current board, move count and the directions that would move a tile",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide the tile on the given side of the blank into it. 'up' moves the tile below the blank up.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        directionEnum,
					"description": "Direction the tile travels",
				},
			},
			Required: []string{"direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute several moves in sequence, stopping when the puzzle is solved",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": directionEnum,
					},
					"description": fmt.Sprintf("Array of directions (at most %d)", engine.MaxBulkMoves),
				},
			},
			Required: []string{"moves"},
		},
	}, s.handleBulkMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "restart",
		Description: "Reshuffle the board with the same dimensions and reset the move counter",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleRestart)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules of the puzzle and the meaning of each direction",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInstructions)
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve speaks MCP over in and out until ctx is cancelled or in is closed
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	errLog := s.logger.WriterLevel(logrus.ErrorLevel)
	defer errLog.Close()

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(log.New(errLog, "", 0))

	s.logger.Info("mcp server ready")
	return stdio.Listen(ctx, in, out)
}

// Tool handlers

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.svc.State(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatState(info)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	raw, _ := args["direction"].(string)

	dir, err := engine.ParseDirection(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.svc.Move(ctx, dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	movesRaw, _ := args["moves"].([]interface{})
	if len(movesRaw) == 0 {
		return mcp.NewToolResultError("moves must be a non-empty array of directions"), nil
	}

	dirs := make([]engine.Direction, 0, len(movesRaw))
	for i, m := range movesRaw {
		str, _ := m.(string)
		dir, err := engine.ParseDirection(str)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("move %d: %v", i+1, err)), nil
		}
		dirs = append(dirs, dir)
	}

	result, err := s.svc.BulkMove(ctx, dirs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(result)), nil
}

func (s *Server) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.svc.Restart(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Puzzle reshuffled.\n\n" + formatState(info)), nil
}

func (s *Server) handleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `tty-fifteen - Complete Instructions

OBJECTIVE:
Arrange the tiles so they read 1, 2, 3, ... left to right, top to bottom,
with the blank in the last cell.

BOARD:
• Each tile is shown as |NN|, the blank as |  |
• The board is Rows tiles wide and Lines tiles tall (4x4 by default)

MOVES:
Directions name the way a tile travels into the blank:
• up    - the tile below the blank slides up
• down  - the tile above the blank slides down
• left  - the tile right of the blank slides left
• right - the tile left of the blank slides right
A move with no tile on that side is ignored and does not count.

WINNING:
Once solved the game shows WIN ! and ignores further moves. Use restart
to play again. Shuffles are random and not every board is solvable; if the
last two tiles stay swapped, restart.`
