package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Colors used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorFood
	ColorBorder
	ColorHUD
	ColorDim
	ColorAlert
)
