package suite

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/square-game/internal/entity"
	"github.com/rocketscienceinc/square-game/internal/squaregame"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine    *squaregame.GameEngine
	Scheduler *ManualScheduler
	Colors    *ScriptedColors
}

// New - builds an engine whose timers only fire on demand and whose colors
// come from a script, falling back to red once the script runs out.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	scheduler := &ManualScheduler{}
	colors := &ScriptedColors{Fallback: entity.ColorRed}

	engine := squaregame.NewGameEngine(logger,
		squaregame.WithScheduler(scheduler),
		squaregame.WithColorSource(colors),
	)

	return ctx, &Suite{
		T:         t,
		Logger:    logger,
		Engine:    engine,
		Scheduler: scheduler,
		Colors:    colors,
	}
}

// StartWith - starts a game on a board painted exactly with board.
func (that *Suite) StartWith(board [entity.BoardSize]entity.Color) {
	that.Helper()

	that.Colors.Push(board[:]...)
	that.Engine.Start()
}

type pendingCall struct {
	delay time.Duration
	fn    func()
}

// ManualScheduler keeps scheduled calls until the test fires them.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []pendingCall
}

func (that *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pending = append(that.pending, pendingCall{delay: d, fn: f})
}

func (that *ManualScheduler) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.pending)
}

func (that *ManualScheduler) Delays() []time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	delays := make([]time.Duration, 0, len(that.pending))
	for _, call := range that.pending {
		delays = append(delays, call.delay)
	}

	return delays
}

// FireAll - runs every pending call in scheduling order.
func (that *ManualScheduler) FireAll() {
	that.mu.Lock()
	calls := that.pending
	that.pending = nil
	that.mu.Unlock()

	for _, call := range calls {
		call.fn()
	}
}

// ScriptedColors hands out queued colors first, then Fallback.
type ScriptedColors struct {
	mu       sync.Mutex
	queue    []entity.Color
	Fallback entity.Color
}

func (that *ScriptedColors) Push(colors ...entity.Color) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.queue = append(that.queue, colors...)
}

func (that *ScriptedColors) Next() entity.Color {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.queue) == 0 {
		return that.Fallback
	}

	color := that.queue[0]
	that.queue = that.queue[1:]

	return color
}
