package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/square-game/internal/entity"
)

var guide = []string{
	"Match two squares of the same color to increase your score.",
	"If you match incorrectly, the game is over!",
}

type gameEngine interface {
	Start()
	Restart()
	ReturnToMenu()
	Tap(cell int) (entity.TapResult, error)
	Snapshot() entity.Snapshot
	HighScore() int
}

// GameManager - entry point of the presentation layer into the game.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine
}

func NewGameManager(logger *slog.Logger, engine gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,
	}
}

func (that *GameManager) StartGame() entity.Snapshot {
	that.engine.Start()
	that.logger.Info("game started")

	return that.engine.Snapshot()
}

func (that *GameManager) RestartGame() entity.Snapshot {
	previous := that.engine.Snapshot()

	that.engine.Restart()
	that.logger.Info("game restarted", "previous_score", previous.Score)

	return that.engine.Snapshot()
}

func (that *GameManager) BackToMenu() entity.Snapshot {
	that.engine.ReturnToMenu()
	that.logger.Info("back to menu", "high_score", that.engine.HighScore())

	return that.engine.Snapshot()
}

func (that *GameManager) MakeTurn(cell int) (entity.Snapshot, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	result, err := that.engine.Tap(cell)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to make turn: %w", err)
	}

	state := that.engine.Snapshot()

	switch result {
	case entity.TapResultMatched:
		log.Info("pair matched", "score", state.Score, "high_score", state.HighScore)
	case entity.TapResultMismatched:
		log.Info("pair mismatched, game over", "score", state.Score)
	default:
		log.Debug("tap handled", "result", result)
	}

	return state, nil
}

func (that *GameManager) State() entity.Snapshot {
	return that.engine.Snapshot()
}

func (that *GameManager) HighScore() int {
	return that.engine.HighScore()
}

func (that *GameManager) Guide() []string {
	return append([]string{}, guide...)
}
