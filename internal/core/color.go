package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the terminal renderer.
type Color uint8

// The palette the games draw from. The bright hues double as the particle
// heat ramp (nearer the detonation burns hotter); Orange marks bombs and
// Gray is for dimmed chrome like borders and settled HUD text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
