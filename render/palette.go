package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/EnokiUN/rhywbeth/geometry"
)

// Background split colors: sky above the midline, floor below.
var (
	SkyStyle   = tcell.StyleDefault.Background(tcell.ColorRed)
	FloorStyle = tcell.StyleDefault.Background(tcell.ColorBlue)
)

// statusStyle is the diagnostics line at the top of the frame.
var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// palette maps wall color tags to terminal colors.
var palette = map[geometry.Color]tcell.Color{
	geometry.ColorWhite:   tcell.ColorWhite,
	geometry.ColorBlack:   tcell.ColorBlack,
	geometry.ColorRed:     tcell.ColorRed,
	geometry.ColorGreen:   tcell.ColorGreen,
	geometry.ColorBlue:    tcell.ColorBlue,
	geometry.ColorMagenta: tcell.ColorDarkMagenta,
	geometry.ColorYellow:  tcell.ColorYellow,
}

// paletteRGB carries the same palette as color values for depth shading.
var paletteRGB = map[geometry.Color]colorful.Color{
	geometry.ColorWhite:   {R: 0.9, G: 0.9, B: 0.9},
	geometry.ColorBlack:   {R: 0.15, G: 0.15, B: 0.15},
	geometry.ColorRed:     {R: 0.8, G: 0.1, B: 0.1},
	geometry.ColorGreen:   {R: 0.1, G: 0.8, B: 0.1},
	geometry.ColorBlue:    {R: 0.1, G: 0.1, B: 0.8},
	geometry.ColorMagenta: {R: 0.7, G: 0.1, B: 0.7},
	geometry.ColorYellow:  {R: 0.8, G: 0.8, B: 0.1},
}

// Style returns the flat terminal style for a wall color.
func Style(c geometry.Color) tcell.Style {
	col, ok := palette[c]
	if !ok {
		col = tcell.ColorWhite
	}
	return tcell.StyleDefault.Background(col)
}

// ShadedStyle darkens a wall color by hit distance: full brightness at the
// full-height threshold, fading toward (but never reaching) black at the
// falloff horizon. Used only when depth shading is enabled.
func ShadedStyle(c geometry.Color, factor float64) tcell.Style {
	base, ok := paletteRGB[c]
	if !ok {
		base = paletteRGB[geometry.ColorWhite]
	}
	if factor < 0.2 {
		factor = 0.2
	} else if factor > 1 {
		factor = 1
	}
	h, s, l := base.Hsl()
	shaded := colorful.Hsl(h, s, l*factor).Clamped()
	r, g, b := shaded.RGB255()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
