package mcp

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/tty-fifteen/game/engine"
	"github.com/wricardo/tty-fifteen/game/service"
)

// createTestServer returns a server over a 3x3 puzzle two moves from solved
func createTestServer(t *testing.T) (*Server, service.GameService) {
	t.Helper()

	puzzle, err := engine.NewPuzzle(3, 3, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	require.NoError(t, puzzle.SetGrid([]int{1, 2, 3, 4, 5, 6, 0, 7, 8}))

	svc := service.NewGameService(puzzle, nil)
	return NewServer(svc, nil), svc
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected text content in result")
	return text.Text
}

func TestNewServer(t *testing.T) {
	s, _ := createTestServer(t)

	require.NotNil(t, s.MCPServer())
	assert.NotNil(t, s.logger)
}

func TestHandleState(t *testing.T) {
	s, _ := createTestServer(t)

	result, err := s.handleState(context.Background(), callTool("puzzle_state", map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	for _, want := range []string{
		"State: playing",
		"Size: 3x3",
		"Moves: 0",
		"|01||02||03|",
		"|04||05||06|",
		"|  ||07||08|",
		"Possible moves: down, left",
		"Misplaced tiles: 2",
	} {
		assert.Contains(t, text, want)
	}
}

func TestHandleMove(t *testing.T) {
	s, _ := createTestServer(t)
	ctx := context.Background()

	result, err := s.handleMove(ctx, callTool("move", map[string]interface{}{"direction": "left"}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Move left: moved")
	assert.Contains(t, text, "|07||  ||08|")
	assert.Contains(t, text, "Moves: 1")

	result, err = s.handleMove(ctx, callTool("move", map[string]interface{}{"direction": "up"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Move up: blocked")

	result, err = s.handleMove(ctx, callTool("move", map[string]interface{}{"direction": "LEFT"}))
	require.NoError(t, err)
	text = resultText(t, result)
	assert.Contains(t, text, "State: won")
	assert.Contains(t, text, "WIN !")
}

func TestHandleMove_InvalidArguments(t *testing.T) {
	s, _ := createTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing direction", map[string]interface{}{}},
		{"unknown direction", map[string]interface{}{"direction": "north"}},
		{"wrong type", map[string]interface{}{"direction": 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := s.handleMove(ctx, callTool("move", test.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestHandleBulkMove(t *testing.T) {
	s, _ := createTestServer(t)

	result, err := s.handleBulkMove(context.Background(), callTool("bulk_move", map[string]interface{}{
		"moves": []interface{}{"up", "left", "left", "down"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "Executed 3/4 moves, 2 tiles moved")
	assert.Contains(t, text, "Stopped: puzzle solved before move 4")
	assert.Contains(t, text, "1:✗ 2:✓ 3:✓")
	assert.Contains(t, text, "|07||08||  |")
	assert.Contains(t, text, "WIN !")
}

func TestHandleBulkMove_InvalidArguments(t *testing.T) {
	s, _ := createTestServer(t)
	ctx := context.Background()

	result, err := s.handleBulkMove(ctx, callTool("bulk_move", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = s.handleBulkMove(ctx, callTool("bulk_move", map[string]interface{}{
		"moves": []interface{}{"up", "sideways"},
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "move 2")
}

func TestHandleRestart(t *testing.T) {
	s, _ := createTestServer(t)
	ctx := context.Background()

	_, err := s.handleMove(ctx, callTool("move", map[string]interface{}{"direction": "left"}))
	require.NoError(t, err)

	result, err := s.handleRestart(ctx, callTool("restart", map[string]interface{}{}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Puzzle reshuffled.")
	assert.Contains(t, text, "Moves: 0")
}

func TestHandlers_AfterQuit(t *testing.T) {
	s, svc := createTestServer(t)
	ctx := context.Background()
	require.NoError(t, svc.Quit(ctx))

	result, err := s.handleMove(ctx, callTool("move", map[string]interface{}{"direction": "left"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), service.ErrTerminated.Error())

	result, err = s.handleState(ctx, callTool("puzzle_state", map[string]interface{}{}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Game terminated.")
}

func TestHandleInstructions(t *testing.T) {
	s, _ := createTestServer(t)

	result, err := s.handleInstructions(context.Background(), callTool("game_instructions", nil))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "OBJECTIVE")
	assert.Contains(t, text, "the tile below the blank slides up")
}

func TestToolsList(t *testing.T) {
	s, _ := createTestServer(t)

	response := s.MCPServer().HandleMessage(context.Background(),
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NotNil(t, response)

	data, err := json.Marshal(response)
	require.NoError(t, err)

	for _, name := range []string{"puzzle_state", "move", "bulk_move", "restart", "game_instructions"} {
		assert.Contains(t, string(data), `"name":"`+name+`"`)
	}
}
