package core

// Color represents a foreground color for a screen cell.
// Front ends map it to ANSI 256-color codes.
type Color uint8

// Predefined colors for world elements.
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
	ColorOrange
	ColorGray
)

// VehicleColors is the palette cycled through by vehicle variants.
var VehicleColors = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorMagenta,
	ColorCyan,
	ColorYellow,
	ColorRed,
	ColorBrightBlue,
	ColorWhite,
	ColorBrightGreen,
}
