package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/square-game/internal/entity"
)

func renderMenu(screen *strings.Builder, snapshot entity.Snapshot) {
	screen.WriteString("\n== Square Game ==\n")
	fmt.Fprintf(screen, "start | highscore | guide | quit  (high score: %d)\n", snapshot.HighScore)
}

// renderBoard - draws the 3x3 grid, selected squares are marked with '*'.
func renderBoard(screen *strings.Builder, snapshot entity.Snapshot) {
	fmt.Fprintf(screen, "\nScore: %d\n", snapshot.Score)

	for i, cell := range snapshot.Board {
		mark := " "
		if snapshot.IsSelected(i) {
			mark = "*"
		}

		fmt.Fprintf(screen, " [%d:%s]%s", i, colorSymbol(cell.Color), mark)

		if _, col := entity.RowCol(i); col == entity.BoardColumns-1 {
			screen.WriteString("\n")
		}
	}
}

func renderGameOver(screen *strings.Builder, snapshot entity.Snapshot) {
	fmt.Fprintf(screen, "Game Over! Score: %d\n", snapshot.Score)
	screen.WriteString("restart | menu\n")
}

func colorSymbol(color entity.Color) string {
	switch color {
	case entity.ColorRed:
		return "R"
	case entity.ColorYellow:
		return "Y"
	case entity.ColorBlue:
		return "B"
	default:
		return "?"
	}
}
