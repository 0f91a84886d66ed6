package entity

import (
	"fmt"

	"github.com/google/uuid"

	"zeroxgame/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	MarkX = "X"
	MarkO = "O"
)

// Game is one console session: the board plus whose turn it is, which mark
// each side plays with and how the game ended. A fresh Game is created for
// every round; there is no other reset path.
type Game struct {
	ID        string
	Board     Board
	Turn      Player
	Winner    Player // Empty until finished; Empty after finish means a draw
	Status    string
	HumanMark string
	BotMark   string
}

// NewGame creates an ongoing game where the human plays humanMark and
// `first` makes the opening move.
func NewGame(humanMark string, first Player) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Board:     Board{},
		Turn:      first,
		Status:    StatusOngoing,
		HumanMark: humanMark,
		BotMark:   ToggleMark(humanMark),
	}
}

// ToggleMark returns the opposite of an X/O mark.
func ToggleMark(mark string) string {
	if mark == MarkX {
		return MarkO
	}
	return MarkX
}

// MarkOf returns the X/O mark the player writes on the board.
func (that *Game) MarkOf(player Player) string {
	if player == Human {
		return that.HumanMark
	}
	return that.BotMark
}

// MakeTurn applies one move for the player, flips the turn and refreshes
// the game status. The board is only touched when the move is accepted.
func (that *Game) MakeTurn(player Player, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if move.Row < 0 || move.Row >= BoardSize || move.Col < 0 || move.Col >= BoardSize {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.Apply(move.Row, move.Col, player) {
		return apperror.ErrCellOccupied
	}

	that.Turn = player.Opponent()
	that.updateState()

	return nil
}

// updateState finishes the game on a win or when no cells are left. The
// board's own terminality check ignores exhaustion, so the draw is detected
// here by counting empty cells.
func (that *Game) updateState() {
	switch {
	case that.Board.HasWon(Human):
		that.Winner = Human
	case that.Board.HasWon(Computer):
		that.Winner = Computer
	case len(that.Board.EmptyCells()) == 0:
		that.Winner = Empty
	default:
		return
	}

	that.Status = StatusFinished
	that.Turn = Empty
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports a finished game with no winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}
