package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"zeroxgame/internal/apperror"
	"zeroxgame/internal/entity"
)

type terminal interface {
	ChooseMark() (string, error)
	ChooseFirst() (entity.Player, error)
	ShowTurn(game *entity.Game, player entity.Player)
	PromptMove() (entity.Move, error)
	ShowBadMove()
	ShowResult(game *entity.Game)
	PromptReplay() (bool, error)
	Bye()
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameManager drives game sessions: it owns the board for the duration of
// one game, alternates human and computer turns until the game finishes,
// and loops through the replay prompt. An EOF from the terminal anywhere
// ends the session cleanly.
type GameManager struct {
	logger   *slog.Logger
	terminal terminal
	bot      botService
	botDelay time.Duration
}

func NewGameManager(logger *slog.Logger, terminal terminal, bot botService, botDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		terminal: terminal,
		bot:      bot,
		botDelay: botDelay,
	}
}

// Run plays games until the human declines a replay, closes the input or
// the context is canceled.
func (that *GameManager) Run(ctx context.Context) error {
	for {
		game, err := that.setupGame()
		if errors.Is(err, io.EOF) {
			that.terminal.Bye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to set up game: %w", err)
		}

		that.logger.Info("game started", "gameID", game.ID, "humanMark", game.HumanMark)

		if err = that.playGame(ctx, game); err != nil {
			if errors.Is(err, io.EOF) {
				that.terminal.Bye()
				return nil
			}
			return err
		}

		that.logger.Info("game finished", "gameID", game.ID, "result", resultName(game))

		again, err := that.terminal.PromptReplay()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			that.terminal.Bye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}
	}
}

func (that *GameManager) setupGame() (*entity.Game, error) {
	mark, err := that.terminal.ChooseMark()
	if err != nil {
		return nil, err
	}

	first, err := that.terminal.ChooseFirst()
	if err != nil {
		return nil, err
	}

	return entity.NewGame(mark, first), nil
}

func (that *GameManager) playGame(ctx context.Context, game *entity.Game) error {
	for game.IsOngoing() {
		var err error
		if game.Turn == entity.Computer {
			err = that.computerTurn(ctx, game)
		} else {
			err = that.humanTurn(game)
		}

		if err != nil {
			return err
		}
	}

	that.terminal.ShowResult(game)

	return nil
}

func (that *GameManager) computerTurn(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.terminal.ShowTurn(game, entity.Computer)

	// a short pause so the move does not flash by
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(that.botDelay):
	}

	if err := that.bot.MakeTurn(game); err != nil {
		return fmt.Errorf("computer turn failed: %w", err)
	}

	return nil
}

func (that *GameManager) humanTurn(game *entity.Game) error {
	that.terminal.ShowTurn(game, entity.Human)

	for {
		move, err := that.terminal.PromptMove()
		if err != nil {
			return err
		}

		err = game.MakeTurn(entity.Human, move)
		if err == nil {
			return nil
		}

		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
			that.terminal.ShowBadMove()
			continue
		}

		return fmt.Errorf("human turn failed: %w", err)
	}
}

func resultName(game *entity.Game) string {
	switch game.Winner {
	case entity.Human:
		return "human"
	case entity.Computer:
		return "computer"
	default:
		return "draw"
	}
}
