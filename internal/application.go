package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/square-game/internal/config"
	"github.com/rocketscienceinc/square-game/internal/squaregame"
	"github.com/rocketscienceinc/square-game/internal/usecase"
	"github.com/rocketscienceinc/square-game/transport/console"
)

// RunApp - runs the game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := squaregame.NewGameEngine(logger, squaregame.WithRecolorDelay(conf.RecolorDelay))
	gameManager := usecase.NewGameManager(logger, engine)
	terminal := console.New(logger, gameManager, out, conf.Prompt)

	unsubscribe := engine.Subscribe(terminal.Render)
	defer unsubscribe()

	log.Info("Starting console", "recolor_delay", conf.RecolorDelay)
	if err := terminal.Start(ctx, in); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down", "high_score", gameManager.HighScore())

	return nil
}
