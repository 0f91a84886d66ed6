package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Returns all cells of a fresh board in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: all 9 cells come back, top-left first
		require.Len(t, cells, 9)
		assert.Equal(t, Move{Row: 0, Col: 0}, cells[0])
		assert.Equal(t, Move{Row: 0, Col: 1}, cells[1])
		assert.Equal(t, Move{Row: 2, Col: 2}, cells[8])
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with two marks
		board := &Board{
			{Computer, Empty, Empty},
			{Empty, Human, Empty},
			{Empty, Empty, Empty},
		}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: the occupied cells are missing and order is preserved
		require.Len(t, cells, 7)
		assert.Equal(t, Move{Row: 0, Col: 1}, cells[0])
		assert.NotContains(t, cells, Move{Row: 0, Col: 0})
		assert.NotContains(t, cells, Move{Row: 1, Col: 1})
	})

	t.Run("Returns nothing for a full board", func(t *testing.T) {
		// Given: a completely filled board
		board := &Board{
			{Computer, Human, Computer},
			{Human, Computer, Human},
			{Human, Computer, Human},
		}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: there are none
		assert.Empty(t, cells)
	})
}

func TestBoard_IsValid(t *testing.T) {
	t.Run("Accepts an empty in-bounds cell", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// Then: every cell is a valid target
		assert.True(t, board.IsValid(0, 0))
		assert.True(t, board.IsValid(2, 2))
	})

	t.Run("Rejects out-of-bounds coordinates", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// Then: coordinates outside [0,2] are invalid
		assert.False(t, board.IsValid(-1, 0))
		assert.False(t, board.IsValid(0, -1))
		assert.False(t, board.IsValid(3, 0))
		assert.False(t, board.IsValid(0, 3))
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a board with the center taken
		board := &Board{}
		board[1][1] = Human

		// Then: the center is no longer a valid target
		assert.False(t, board.IsValid(1, 1))
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Places a mark on a valid cell", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: the computer takes the center
		ok := board.Apply(1, 1, Computer)

		// Then: the move is accepted and the cell holds the mark
		require.True(t, ok)
		assert.Equal(t, Computer, board[1][1])
	})

	t.Run("Rejects an occupied cell and leaves the board unchanged", func(t *testing.T) {
		// Given: a board with the center taken by the computer
		board := &Board{}
		require.True(t, board.Apply(1, 1, Computer))
		before := *board

		// When: the human tries the same cell
		ok := board.Apply(1, 1, Human)

		// Then: the move is rejected and nothing changed
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Rejects out-of-bounds coordinates and leaves the board unchanged", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}
		before := *board

		// When: applying a move outside the grid
		ok := board.Apply(3, 0, Human)

		// Then: the move is rejected and nothing changed
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})
}

func TestPlayer_Opponent(t *testing.T) {
	// Given/Then: the two sides negate into each other
	assert.Equal(t, Computer, Human.Opponent())
	assert.Equal(t, Human, Computer.Opponent())
}
