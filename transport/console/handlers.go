package console

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/square-game/internal/apperror"
)

const helpText = `commands:
  start           start a new game
  tap <0-8>, <n>  select a square
  restart         play again after a game over
  menu            back to the menu
  highscore       show the high score
  guide           show the rules
  quit            leave
`

// Screen updates for intents come from the engine subscription.

func (that *Console) handleStart(_ []string) error {
	that.game.StartGame()
	return nil
}

func (that *Console) handleRestart(_ []string) error {
	that.game.RestartGame()
	return nil
}

func (that *Console) handleMenu(_ []string) error {
	that.game.BackToMenu()
	return nil
}

func (that *Console) handleTap(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: tap needs exactly one cell", apperror.ErrInvalidCell)
	}

	cell, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCell, args[0])
	}

	if _, err = that.game.MakeTurn(cell); err != nil {
		return fmt.Errorf("tap failed: %w", err)
	}

	return nil
}

func (that *Console) handleHighScore(_ []string) error {
	that.printf("High score: %d\n", that.game.HighScore())
	return nil
}

func (that *Console) handleGuide(_ []string) error {
	for _, line := range that.game.Guide() {
		that.printf("%s\n", line)
	}

	return nil
}

func (that *Console) handleHelp(_ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Console) handleQuit(_ []string) error {
	return errQuit
}
