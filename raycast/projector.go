package raycast

import (
	"math"

	"github.com/EnokiUN/rhywbeth/geometry"
)

// FOV is the total horizontal sweep, a quarter turn divided evenly across
// the viewport columns.
const FOV = 0.5 * math.Pi

// Depth cue constants. Anything nearer than FullHeightDistance fills the
// whole viewport; beyond it the column shrinks linearly by FalloffRate per
// world unit. This is a stylized falloff, not a planar projection.
const (
	FullHeightDistance = 5.0
	FalloffRate        = 0.1
)

// Column is the outcome of one cast ray: empty, or a vertically centered
// strip of Height rows in the struck wall's color. A Height of zero means
// the wall is too far to show.
type Column struct {
	Visible  bool
	Distance float64
	Height   int
	Padding  int
	Color    geometry.Color
}

// Projector casts one probe ray per viewport column and resolves the
// nearest wall hit for each. The result buffer is reused across frames; it
// is only valid until the next Cast.
type Projector struct {
	columns []Column
}

// New returns an empty projector.
func New() *Projector {
	return &Projector{}
}

// Cast sweeps the field of view across w columns from pos. Column x casts
// at heading - x·dθ, so the sweep runs rightward from the heading and
// screen left/right matches rotation direction. Every wall is tested per
// ray and the closest hit wins; ties keep the first wall in list order.
func (p *Projector) Cast(pos geometry.Point, heading float64, walls []geometry.Segment, w, h int) []Column {
	if cap(p.columns) < w {
		p.columns = make([]Column, w)
	}
	p.columns = p.columns[:w]

	dTheta := FOV / float64(w)
	for x := 0; x < w; x++ {
		ray := geometry.Ray(pos, heading-float64(x)*dTheta)
		col := Column{}
		for _, wall := range walls {
			pt, ok := wall.Intersect(ray)
			if !ok {
				continue
			}
			d := geometry.Distance(pos, pt)
			if !col.Visible || d < col.Distance {
				col.Visible = true
				col.Distance = d
				col.Color = wall.Color
			}
		}
		if col.Visible {
			col.Height, col.Padding = project(col.Distance, h)
		}
		p.columns[x] = col
	}
	return p.columns
}

// project maps a hit distance to a column height and its top padding.
// Negative computed heights clamp to zero, which renders as invisible.
func project(distance float64, h int) (height, padding int) {
	if distance <= FullHeightDistance {
		return h, 0
	}
	height = int(math.Round(float64(h) * (1.0 - (distance-FullHeightDistance)*FalloffRate)))
	if height < 0 {
		height = 0
	}
	return height, (h - height) / 2
}
