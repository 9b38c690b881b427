package entity

import (
	"errors"
	"fmt"
	"slices"
)

type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

type TapResult string

const (
	TapResultIgnored    TapResult = "ignored"
	TapResultSelected   TapResult = "selected"
	TapResultMatched    TapResult = "matched"
	TapResultMismatched TapResult = "mismatched"
)

var ErrUnknownPhase = errors.New("unknown game phase")

// Snapshot is a read-only copy of the game state handed to renderers.
type Snapshot struct {
	Phase     Phase `json:"phase"`
	Board     Board `json:"board"`
	Selection []int `json:"selection"`
	Score     int   `json:"score"`
	HighScore int   `json:"high_score"`
}

func (that Snapshot) IsMenu() bool {
	return that.Phase == PhaseMenu
}

func (that Snapshot) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that Snapshot) IsGameOver() bool {
	return that.Phase == PhaseGameOver
}

func (that Snapshot) IsSelected(index int) bool {
	return slices.Contains(that.Selection, index)
}

func (that Phase) Validate() error {
	switch that {
	case PhaseMenu, PhasePlaying, PhaseGameOver:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhase, string(that))
	}
}
