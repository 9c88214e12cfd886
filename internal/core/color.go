package core

// Color represents a foreground color for a screen cell.
// Frontends map these to concrete terminal or RGBA colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrown
	ColorBallGreen
	ColorWhite
	ColorGray
)
