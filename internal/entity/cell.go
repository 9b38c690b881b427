package entity

import "github.com/google/uuid"

const (
	BoardSize    = 9
	BoardColumns = 3
)

// Cell is a single square of the grid. ID is only a stable key for renderers.
type Cell struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
}

type Board [BoardSize]Cell

func NewCell(color Color) Cell {
	return Cell{
		ID:    uuid.NewString(),
		Color: color,
	}
}

// NewBoard - creates a board with a fresh identity for every cell.
func NewBoard(next func() Color) Board {
	var board Board
	for i := range board {
		board[i] = NewCell(next())
	}

	return board
}

// Repaint - assigns every cell a new color, keeping the identities.
func (that *Board) Repaint(next func() Color) {
	for i := range that {
		that[i].Color = next()
	}
}

func (that *Board) Colors() [BoardSize]Color {
	var colors [BoardSize]Color
	for i, cell := range that {
		colors[i] = cell.Color
	}

	return colors
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// RowCol - grid position of a cell, for renderers.
func RowCol(index int) (int, int) {
	return index / BoardColumns, index % BoardColumns
}
