package geometry

// Color tags a segment with a palette entry. The renderer owns the mapping
// to actual terminal colors; geometry only carries the tag.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorYellow
)

// String returns the map-file name of the color.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorYellow:
		return "yellow"
	}
	return "unknown"
}

// ParseColor resolves a map-file color name to its tag.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "white":
		return ColorWhite, true
	case "black":
		return ColorBlack, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "yellow":
		return ColorYellow, true
	}
	return ColorWhite, false
}
