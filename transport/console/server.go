package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/square-game/internal/apperror"
	"github.com/rocketscienceinc/square-game/internal/entity"
)

var errQuit = errors.New("quit")

type gameUseCase interface {
	StartGame() entity.Snapshot
	RestartGame() entity.Snapshot
	BackToMenu() entity.Snapshot
	MakeTurn(cell int) (entity.Snapshot, error)
	State() entity.Snapshot
	HighScore() int
	Guide() []string
}

// Console is a line based terminal front-end. Intents are forwarded to the
// game; the screen is redrawn from snapshots passed to Render.
type Console struct {
	logger *slog.Logger
	game   gameUseCase
	prompt string

	mu  sync.Mutex
	out io.Writer

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, game gameUseCase, out io.Writer, prompt string) *Console {
	console := &Console{
		logger:   logger.With("component", "console"),
		game:     game,
		prompt:   prompt,
		out:      out,
		handlers: make(map[string]func([]string) error),
	}

	console.handlers["start"] = console.handleStart
	console.handlers["restart"] = console.handleRestart
	console.handlers["menu"] = console.handleMenu
	console.handlers["tap"] = console.handleTap
	console.handlers["highscore"] = console.handleHighScore
	console.handlers["guide"] = console.handleGuide
	console.handlers["help"] = console.handleHelp
	console.handlers["quit"] = console.handleQuit

	return console
}

// Start - reads commands from in until EOF, quit or ctx is done.
func (that *Console) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		defer func() {
			scanErr <- scanner.Err()
			close(lines)
		}()

		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	that.Render(that.game.State())
	that.printPrompt()

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped by context")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			if err := that.handleLine(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Debug("command failed", "line", line, "error", err)
				that.printf("error: %v\n", err)
			}

			that.printPrompt()
		}
	}
}

// Render - draws the screen for snapshot. Safe to use as an engine subscriber.
func (that *Console) Render(snapshot entity.Snapshot) {
	if err := snapshot.Phase.Validate(); err != nil {
		that.logger.Error("can't render snapshot", "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	var screen strings.Builder

	switch snapshot.Phase {
	case entity.PhaseMenu:
		renderMenu(&screen, snapshot)
	case entity.PhasePlaying:
		renderBoard(&screen, snapshot)
	case entity.PhaseGameOver:
		renderBoard(&screen, snapshot)
		renderGameOver(&screen, snapshot)
	}

	if _, err := io.WriteString(that.out, screen.String()); err != nil {
		that.logger.Error("failed to write screen", "error", err)
	}
}

func (that *Console) handleLine(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]

	// a bare cell number is a tap
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		name, args = "tap", fields
	}

	handler, ok := that.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, name)
	}

	return handler(args)
}

func (that *Console) printPrompt() {
	that.printf("%s", that.prompt)
}

func (that *Console) printf(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
