package entity

import "math/rand"

type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
)

// AllColors - the full palette a cell can be painted with.
func AllColors() []Color {
	return []Color{ColorRed, ColorYellow, ColorBlue}
}

func (that Color) IsValid() bool {
	switch that {
	case ColorRed, ColorYellow, ColorBlue:
		return true
	default:
		return false
	}
}

func RandomColor() Color {
	colors := AllColors()
	return colors[rand.Intn(len(colors))] //nolint: gosec // it's ok
}
