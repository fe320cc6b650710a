package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		wantErr  bool
	}{
		{"up", Up, false},
		{"DOWN", Down, false},
		{" left ", Left, false},
		{"Right", Right, false},
		{"north", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			dir, err := ParseDirection(test.input)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, dir)
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Up, Down.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
}

func TestMoveBlank_DirectionMapping(t *testing.T) {
	// 3x3 with the blank in the centre: every direction is valid.
	center := []int{1, 2, 3, 4, 0, 5, 6, 7, 8}

	tests := []struct {
		direction Direction
		newBlank  int
		expected  []int
	}{
		{Up, 7, []int{1, 2, 3, 4, 7, 5, 6, 0, 8}},
		{Down, 1, []int{1, 0, 3, 4, 2, 5, 6, 7, 8}},
		{Left, 5, []int{1, 2, 3, 4, 5, 0, 6, 7, 8}},
		{Right, 3, []int{1, 2, 3, 0, 4, 5, 6, 7, 8}},
	}

	for _, test := range tests {
		t.Run(string(test.direction), func(t *testing.T) {
			p := createTestPuzzle(t, 3, 3, center)

			require.True(t, p.MoveBlank(test.direction))
			view := p.View()
			assert.Equal(t, test.expected, view.Grid)
			assert.Equal(t, test.newBlank, view.Blank)
			assert.Equal(t, 1, view.Moves)
		})
	}
}

func TestMoveBlank_BoundaryNoOp(t *testing.T) {
	tests := []struct {
		name      string
		lines     int
		rows      int
		grid      []int
		direction Direction
	}{
		{"up from bottom line", 3, 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, Up},
		{"down from top line", 3, 3, []int{1, 0, 2, 3, 4, 5, 6, 7, 8}, Down},
		{"left from last column", 3, 3, []int{1, 2, 0, 3, 4, 5, 6, 7, 8}, Left},
		{"left from last cell", 3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, Left},
		{"right from first column", 3, 3, []int{1, 2, 3, 0, 4, 5, 6, 7, 8}, Right},
		{"right from first cell", 2, 4, []int{0, 1, 2, 3, 4, 5, 6, 7}, Right},
		{"up on non-square grid", 2, 4, []int{1, 2, 3, 4, 5, 0, 6, 7}, Up},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := createTestPuzzle(t, test.lines, test.rows, test.grid)
			before := p.View()

			assert.False(t, p.CanMove(test.direction))
			assert.False(t, p.MoveBlank(test.direction))
			assert.Equal(t, before, p.View())
		})
	}
}

func TestMoveBlank_RowEdgeScenario(t *testing.T) {
	// Blank at index 1 of a 2x2 grid sits in column 1: the right-hand
	// neighbour of the blank is on the same line, the left one is not.
	p := createTestPuzzle(t, 2, 2, []int{1, 0, 3, 2})

	assert.False(t, p.MoveBlank(Left))
	assert.Equal(t, []int{1, 0, 3, 2}, p.View().Grid)
	assert.Equal(t, 0, p.Moves())

	assert.True(t, p.MoveBlank(Right))
	assert.Equal(t, []int{0, 1, 3, 2}, p.View().Grid)
	assert.Equal(t, 0, p.Blank())

	// Blank in column 0: right is a no-op, left swaps within the line.
	p = createTestPuzzle(t, 2, 2, []int{3, 1, 0, 2})

	assert.False(t, p.MoveBlank(Right))
	assert.Equal(t, 0, p.Moves())

	assert.True(t, p.MoveBlank(Left))
	view := p.View()
	assert.Equal(t, []int{3, 1, 2, 0}, view.Grid)
	assert.Equal(t, 3, view.Blank)
	assert.Equal(t, 1, view.Moves)
	assert.False(t, view.Solved)
}

func TestMoveBlank_OppositeRestores(t *testing.T) {
	for _, dir := range Directions {
		t.Run(string(dir), func(t *testing.T) {
			p := createTestPuzzle(t, 3, 3, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})
			before := p.View()

			require.True(t, p.MoveBlank(dir))
			require.True(t, p.MoveBlank(dir.Opposite()))

			after := p.View()
			assert.Equal(t, before.Grid, after.Grid)
			assert.Equal(t, before.Blank, after.Blank)
			assert.Equal(t, before.Moves+2, after.Moves)
		})
	}
}

func TestMoveBlank_RandomWalkKeepsInvariant(t *testing.T) {
	rnd := newTestRand()
	shapes := []struct{ lines, rows int }{{2, 2}, {4, 4}, {3, 7}, {9, 2}}

	for _, shape := range shapes {
		p, err := NewPuzzle(shape.lines, shape.rows, rnd)
		require.NoError(t, err)

		accepted := 0
		for range 2000 {
			dir := Directions[rnd.IntN(len(Directions))]
			if p.MoveBlank(dir) {
				accepted++
			}
			assertPermutation(t, p)
		}
		assert.Equal(t, accepted, p.Moves())
	}
}

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name     string
		grid     []int
		expected []Direction
	}{
		{"top-left corner", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []Direction{Up, Left}},
		{"bottom-right corner", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, []Direction{Down, Right}},
		{"centre", []int{1, 2, 3, 4, 0, 5, 6, 7, 8}, []Direction{Up, Down, Left, Right}},
		{"middle of top line", []int{1, 0, 2, 3, 4, 5, 6, 7, 8}, []Direction{Up, Left, Right}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := createTestPuzzle(t, 3, 3, test.grid)
			assert.Equal(t, test.expected, p.PossibleMoves())
		})
	}
}

func TestMoveBlank_UnknownDirection(t *testing.T) {
	p := createTestPuzzle(t, 2, 2, []int{1, 2, 3, 0})
	assert.False(t, p.MoveBlank(Direction("sideways")))
	assert.Equal(t, 0, p.Moves())
}
