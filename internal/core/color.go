package core

// Color represents a foreground color for a screen cell.
// Codes are mapped to terminal styles in the platform layer.
type Color uint8

// Predefined colors for dungeon elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
