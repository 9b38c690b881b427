package squaregame

import (
	"time"

	"github.com/rocketscienceinc/square-game/internal/entity"
)

// randomColors draws every color independently and uniformly.
type randomColors struct{}

func (randomColors) Next() entity.Color {
	return entity.RandomColor()
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
