package service

import (
	"fmt"
	"math/rand"

	"zeroxgame/internal/apperror"
	"zeroxgame/internal/entity"
	"zeroxgame/internal/minimax"
)

const openingDepth = entity.BoardSize * entity.BoardSize

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays one computer move. On a completely empty board the move is
// a uniformly random cell: the full-depth search would only recompute the
// known optimal openings, and a random start varies play. Every later move
// comes from the minimax search.
func (that *botService) MakeTurn(game *entity.Game) error {
	availableCells := game.Board.EmptyCells()
	if len(availableCells) == 0 {
		return apperror.ErrNoAvailableMoves
	}

	var move entity.Move
	if depth := len(availableCells); depth == openingDepth {
		move = availableCells[rand.Intn(len(availableCells))] //nolint:gosec // game randomness, not security
	} else {
		move = minimax.Minimax(&game.Board, depth, entity.Computer).Move()
	}

	if err := game.MakeTurn(entity.Computer, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
