package squaregame

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/square-game/internal/apperror"
	"github.com/rocketscienceinc/square-game/internal/entity"
)

const (
	DefaultRecolorDelay = 500 * time.Millisecond

	pairSize = 2
)

// ColorSource - supplies the color of every freshly painted cell.
type ColorSource interface {
	Next() entity.Color
}

// Scheduler - runs f once after d. Scheduled calls cannot be canceled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type Option func(*GameEngine)

func WithColorSource(colors ColorSource) Option {
	return func(that *GameEngine) {
		that.colors = colors
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(that *GameEngine) {
		that.scheduler = scheduler
	}
}

func WithRecolorDelay(delay time.Duration) Option {
	return func(that *GameEngine) {
		that.recolorDelay = delay
	}
}

// GameEngine owns the board, the current selection and the session counters.
// Every mutation, including deferred recolors fired from timer goroutines,
// runs under mu. Subscribers are called with mu held and must not call back
// into the engine.
type GameEngine struct {
	logger *slog.Logger

	colors       ColorSource
	scheduler    Scheduler
	recolorDelay time.Duration

	mu        sync.Mutex
	board     entity.Board
	selection []int
	score     int
	highScore int
	phase     entity.Phase

	subscribers map[int]func(entity.Snapshot)
	nextSubID   int
}

func NewGameEngine(logger *slog.Logger, opts ...Option) *GameEngine {
	engine := &GameEngine{
		logger:       logger.With("component", "engine"),
		colors:       randomColors{},
		scheduler:    timerScheduler{},
		recolorDelay: DefaultRecolorDelay,
		selection:    make([]int, 0, pairSize),
		phase:        entity.PhaseMenu,
		subscribers:  make(map[int]func(entity.Snapshot)),
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.board = entity.NewBoard(engine.colors.Next)

	return engine
}

func (that *GameEngine) Start() {
	that.reset(entity.PhasePlaying)
}

func (that *GameEngine) Restart() {
	that.reset(entity.PhasePlaying)
}

// ReturnToMenu - leaves the current game. The high score is kept.
func (that *GameEngine) ReturnToMenu() {
	that.reset(entity.PhaseMenu)
}

// Tap - selects a cell. The second distinct cell of a turn is compared with
// the first: a match scores and schedules both cells for a recolor, a
// mismatch ends the game. Taps outside the playing phase and repeated taps on
// a selected cell are ignored.
func (that *GameEngine) Tap(cell int) (entity.TapResult, error) {
	if !entity.IsValidCell(cell) {
		return entity.TapResultIgnored, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != entity.PhasePlaying || slices.Contains(that.selection, cell) {
		return entity.TapResultIgnored, nil
	}

	that.selection = append(that.selection, cell)
	if len(that.selection) < pairSize {
		that.notify()
		return entity.TapResultSelected, nil
	}

	first, second := that.selection[0], that.selection[1]
	that.selection = that.selection[:0]

	result := that.evaluatePair(first, second)
	that.notify()

	return result, nil
}

func (that *GameEngine) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *GameEngine) HighScore() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.highScore
}

// Subscribe - registers fn to receive a snapshot after every state change.
func (that *GameEngine) Subscribe(fn func(entity.Snapshot)) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.nextSubID
	that.nextSubID++
	that.subscribers[id] = fn

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		delete(that.subscribers, id)
	}
}

func (that *GameEngine) evaluatePair(first, second int) entity.TapResult {
	if that.board[first].Color != that.board[second].Color {
		that.phase = entity.PhaseGameOver
		that.logger.Debug("pair mismatched, game over", "first", first, "second", second, "score", that.score)

		return entity.TapResultMismatched
	}

	that.score++
	that.highScore = max(that.highScore, that.score)

	that.scheduler.AfterFunc(that.recolorDelay, func() {
		that.recolor(first, second)
	})

	return entity.TapResultMatched
}

// recolor - repaints matched cells whatever the phase is by now.
func (that *GameEngine) recolor(cells ...int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, cell := range cells {
		that.board[cell].Color = that.colors.Next()
	}

	that.logger.Debug("matched cells recolored", "cells", cells, "phase", that.phase)
	that.notify()
}

func (that *GameEngine) reset(phase entity.Phase) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.phase = phase
	that.score = 0
	that.selection = that.selection[:0]
	that.board.Repaint(that.colors.Next)

	that.notify()
}

func (that *GameEngine) snapshot() entity.Snapshot {
	return entity.Snapshot{
		Phase:     that.phase,
		Board:     that.board,
		Selection: append([]int{}, that.selection...),
		Score:     that.score,
		HighScore: that.highScore,
	}
}

func (that *GameEngine) notify() {
	if len(that.subscribers) == 0 {
		return
	}

	snapshot := that.snapshot()
	for _, fn := range that.subscribers {
		fn(snapshot)
	}
}
