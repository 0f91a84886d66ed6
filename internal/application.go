package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"zeroxgame/internal/config"
	"zeroxgame/internal/service"
	"zeroxgame/internal/transport/console"
	"zeroxgame/internal/usecase"
)

// RunApp - wires the console, the bot and the game manager together and
// plays until the human quits or the process is signaled.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	term := console.New(os.Stdin, os.Stdout, conf.NoColor)
	botService := service.NewBotService()
	gameManager := usecase.NewGameManager(logger, term, botService, conf.BotDelay())

	if err := gameManager.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("game manager error: %w", err)
	}

	return nil
}
