// Package render is the terminal rendering surface: it paints the sky/floor
// background, the projected wall columns, and the diagnostics status line
// into a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/EnokiUN/rhywbeth/player"
	"github.com/EnokiUN/rhywbeth/raycast"
)

// Renderer paints full frames onto a screen. It holds no frame state; every
// frame repaints the whole surface and flushes once.
type Renderer struct {
	screen tcell.Screen
	shade  bool
}

// New wraps a screen. With shade enabled, wall strips darken with distance
// instead of using the flat palette color.
func New(screen tcell.Screen, shade bool) *Renderer {
	return &Renderer{screen: screen, shade: shade}
}

// Frame draws one complete frame: background split at the vertical midpoint,
// one centered strip per visible column, then the pose status line.
func (r *Renderer) Frame(pose player.Pose, columns []raycast.Column) {
	w, h := r.screen.Size()
	for y := 0; y < h; y++ {
		style := SkyStyle
		if y > h/2 {
			style = FloorStyle
		}
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	for x, col := range columns {
		if !col.Visible || col.Height <= 0 || x >= w {
			continue
		}
		style := r.columnStyle(col)
		for y := col.Padding; y < col.Padding+col.Height && y < h; y++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("x: %.2f, y: %.2f, rot: %.2f", pose.X, pose.Y, pose.Heading)
	for i, ch := range status {
		if i >= w {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, statusStyle)
	}

	r.screen.Show()
}

func (r *Renderer) columnStyle(col raycast.Column) tcell.Style {
	if !r.shade {
		return Style(col.Color)
	}
	factor := 1.0 - (col.Distance-raycast.FullHeightDistance)*raycast.FalloffRate
	return ShadedStyle(col.Color, factor)
}
