package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPhaseMethods(t *testing.T) {
	t.Run("IsMenu returns true when phase is menu", func(t *testing.T) {
		// Given: a snapshot in the menu phase
		snapshot := Snapshot{Phase: PhaseMenu}

		// Then: only IsMenu should be true
		assert.True(t, snapshot.IsMenu())
		assert.False(t, snapshot.IsPlaying())
		assert.False(t, snapshot.IsGameOver())
	})

	t.Run("IsPlaying returns true when phase is playing", func(t *testing.T) {
		// Given: a snapshot in the playing phase
		snapshot := Snapshot{Phase: PhasePlaying}

		// Then: only IsPlaying should be true
		assert.True(t, snapshot.IsPlaying())
		assert.False(t, snapshot.IsMenu())
	})

	t.Run("IsGameOver returns true when phase is game over", func(t *testing.T) {
		// Given: a snapshot after a mismatch
		snapshot := Snapshot{Phase: PhaseGameOver}

		// Then: only IsGameOver should be true
		assert.True(t, snapshot.IsGameOver())
		assert.False(t, snapshot.IsPlaying())
	})
}

func TestSnapshot_IsSelected(t *testing.T) {
	// Given: a snapshot with one selected cell
	snapshot := Snapshot{Phase: PhasePlaying, Selection: []int{4}}

	// Then: only that cell should be reported as selected
	assert.True(t, snapshot.IsSelected(4))
	assert.False(t, snapshot.IsSelected(3))
}

func TestPhase_Validate(t *testing.T) {
	t.Run("Known phases are valid", func(t *testing.T) {
		for _, phase := range []Phase{PhaseMenu, PhasePlaying, PhaseGameOver} {
			assert.NoError(t, phase.Validate())
		}
	})

	t.Run("Returns ErrUnknownPhase for anything else", func(t *testing.T) {
		// When: validating a phase that does not exist
		err := Phase("paused").Validate()

		// Then: it should return ErrUnknownPhase
		require.ErrorIs(t, err, ErrUnknownPhase)
		assert.Contains(t, err.Error(), "paused")
	})
}

func TestColor_IsValid(t *testing.T) {
	for _, color := range AllColors() {
		assert.True(t, color.IsValid())
	}

	assert.False(t, Color("green").IsValid())
	assert.Len(t, AllColors(), 3)
}

func TestRandomColor(t *testing.T) {
	// When: drawing many colors
	seen := make(map[Color]bool)
	for i := 0; i < 300; i++ {
		color := RandomColor()
		require.True(t, color.IsValid())
		seen[color] = true
	}

	// Then: every color of the palette should show up
	assert.Len(t, seen, len(AllColors()))
}

func TestNewBoard(t *testing.T) {
	// Given: a color source that always returns blue
	next := func() Color { return ColorBlue }

	// When: a new board is created
	board := NewBoard(next)

	// Then: every cell is blue and has its own identity
	ids := make(map[string]bool)
	for _, cell := range board {
		assert.Equal(t, ColorBlue, cell.Color)
		assert.NotEmpty(t, cell.ID)
		ids[cell.ID] = true
	}
	assert.Len(t, ids, BoardSize)
}

func TestBoard_Repaint(t *testing.T) {
	// Given: a red board
	board := NewBoard(func() Color { return ColorRed })
	before := board

	// When: the board is repainted yellow
	board.Repaint(func() Color { return ColorYellow })

	// Then: colors change but identities stay
	for i := range board {
		assert.Equal(t, ColorYellow, board[i].Color)
		assert.Equal(t, before[i].ID, board[i].ID)
	}
	assert.Equal(t, [BoardSize]Color{
		ColorYellow, ColorYellow, ColorYellow,
		ColorYellow, ColorYellow, ColorYellow,
		ColorYellow, ColorYellow, ColorYellow,
	}, board.Colors())
}

func TestRowCol(t *testing.T) {
	row, col := RowCol(7)

	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
	assert.True(t, IsValidCell(0))
	assert.True(t, IsValidCell(8))
	assert.False(t, IsValidCell(9))
	assert.False(t, IsValidCell(-1))
}
