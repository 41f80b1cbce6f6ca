// Package world owns the wall layout the projector casts against: a fixed
// default arena, plus a small line-oriented map format for custom layouts.
package world

import (
	"math"

	"github.com/EnokiUN/rhywbeth/geometry"
	"github.com/EnokiUN/rhywbeth/player"
)

// Default returns the built-in arena: a triangle and a square room near the
// start position.
func Default() []geometry.Segment {
	return []geometry.Segment{
		geometry.FromPoints(geometry.Point{X: 6, Y: 1}, geometry.Point{X: 4, Y: 3}, geometry.ColorBlack),
		geometry.FromPoints(geometry.Point{X: 4, Y: 3}, geometry.Point{X: 7, Y: 5}, geometry.ColorMagenta),
		geometry.FromPoints(geometry.Point{X: 7, Y: 5}, geometry.Point{X: 6, Y: 1}, geometry.ColorGreen),
		geometry.FromPoints(geometry.Point{X: 2, Y: 1}, geometry.Point{X: -2, Y: 1}, geometry.ColorWhite),
		geometry.FromPoints(geometry.Point{X: -2, Y: 1}, geometry.Point{X: -2, Y: 5}, geometry.ColorMagenta),
		geometry.FromPoints(geometry.Point{X: -2, Y: 5}, geometry.Point{X: 2, Y: 5}, geometry.ColorGreen),
		geometry.FromPoints(geometry.Point{X: 2, Y: 5}, geometry.Point{X: 2, Y: 1}, geometry.ColorYellow),
	}
}

// Start returns the viewer's spawn pose, facing the square room.
func Start() player.Pose {
	return player.Pose{X: 0, Y: 0, Heading: 3 * math.Pi / 4}
}
