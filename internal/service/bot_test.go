package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeroxgame/internal/apperror"
	"zeroxgame/internal/entity"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Opening move on an empty board is random but valid", func(t *testing.T) {
		// Given: a fresh game with the computer moving first
		bot := NewBotService()
		game := entity.NewGame(entity.MarkX, entity.Computer)

		// When: the bot makes the opening move
		err := bot.MakeTurn(game)
		require.NoError(t, err)

		// Then: exactly one cell belongs to the computer and play continues
		require.Len(t, game.Board.EmptyCells(), 8)
		assert.Equal(t, entity.Human, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Mid-game move comes from the search and takes the win", func(t *testing.T) {
		// Given: the computer can complete the top row
		bot := NewBotService()
		game := entity.NewGame(entity.MarkO, entity.Computer)
		game.Board = entity.Board{
			{entity.Computer, entity.Computer, entity.Empty},
			{entity.Human, entity.Human, entity.Empty},
			{entity.Empty, entity.Empty, entity.Empty},
		}

		// When: the bot moves
		err := bot.MakeTurn(game)
		require.NoError(t, err)

		// Then: it finishes the row and wins the game
		assert.Equal(t, entity.Computer, game.Board[0][2])
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.Computer, game.Winner)
	})

	t.Run("Mid-game move blocks the human's threat", func(t *testing.T) {
		// Given: the human threatens the top row
		bot := NewBotService()
		game := entity.NewGame(entity.MarkX, entity.Computer)
		game.Board = entity.Board{
			{entity.Human, entity.Human, entity.Empty},
			{entity.Empty, entity.Computer, entity.Empty},
			{entity.Empty, entity.Empty, entity.Empty},
		}

		// When: the bot moves
		err := bot.MakeTurn(game)
		require.NoError(t, err)

		// Then: the threat is gone
		assert.Equal(t, entity.Computer, game.Board[0][2])
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error when no moves are available", func(t *testing.T) {
		// Given: a full drawn board
		bot := NewBotService()
		game := entity.NewGame(entity.MarkX, entity.Computer)
		game.Board = entity.Board{
			{entity.Computer, entity.Human, entity.Computer},
			{entity.Human, entity.Computer, entity.Human},
			{entity.Human, entity.Computer, entity.Human},
		}

		// When: the bot is asked to move anyway
		err := bot.MakeTurn(game)

		// Then: it reports that no moves are left
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
