package geometry

import "math"

// ProbeLength is the nominal extent of a probe ray in world units, chosen to
// reach past every wall in any reachable layout.
const ProbeLength = 15.0

// Point is a position in the world plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Segment is a bounded straight line in the world plane: a wall, or a probe
// ray cast from the viewer. The slope and intercept describe the infinite
// line through the endpoints; containment checks bound it to the interval
// between them. A vertical segment carries an infinite slope and is
// dispatched structurally in Intersect, so no division by zero can occur.
type Segment struct {
	Start, End Point
	Slope      float64
	Intercept  float64
	Color      Color
}

// FromPoints builds a wall segment from two endpoints. Endpoints are stored
// in ascending-x order so containment checks use a consistent interval; the
// order never changes which rays hit the segment.
func FromPoints(a, b Point, color Color) Segment {
	if b.X < a.X {
		a, b = b, a
	}
	slope := (b.Y - a.Y) / (b.X - a.X)
	return Segment{
		Start:     a,
		End:       b,
		Slope:     slope,
		Intercept: a.Y - slope*a.X,
		Color:     color,
	}
}

// Ray builds a probe from origin toward angle, ProbeLength units long. The
// endpoint only establishes direction; walls bound the valid intersection
// range themselves.
func Ray(origin Point, angle float64) Segment {
	slope := math.Tan(angle)
	return Segment{
		Start: origin,
		End: Point{
			X: origin.X + ProbeLength*math.Cos(angle),
			Y: origin.Y + ProbeLength*math.Sin(angle),
		},
		Slope:     slope,
		Intercept: origin.Y - slope*origin.X,
		Color:     ColorWhite,
	}
}

// Intersect returns the point where two bounded segments cross, or false if
// their lines are parallel or the crossing falls outside either extent.
// Containment is inclusive, so grazing an endpoint counts as a hit.
// Coincident vertical lines report the shared x with a zero y.
func (s Segment) Intersect(other Segment) (Point, bool) {
	if math.IsInf(other.Slope, 0) {
		if math.IsInf(s.Slope, 0) {
			if s.Start.X == other.Start.X {
				return Point{X: s.Start.X, Y: 0}, true // same line
			}
			return Point{}, false
		}
		if Between(other.Start.X, s.Start.X, s.End.X) &&
			Between(s.YAt(other.Start.X), other.Start.Y, other.End.Y) {
			return Point{X: other.Start.X, Y: s.YAt(other.Start.X)}, true
		}
		return Point{}, false
	}
	if math.IsInf(s.Slope, 0) {
		return other.Intersect(s)
	}
	x := (other.Intercept - s.Intercept) / (s.Slope - other.Slope)
	if Between(x, s.Start.X, s.End.X) && Between(x, other.Start.X, other.End.X) {
		return Point{X: x, Y: s.YAt(x)}, true
	}
	return Point{}, false
}

// YAt evaluates the segment's infinite line at x.
func (s Segment) YAt(x float64) float64 {
	return s.Slope*x + s.Intercept
}

// Between reports whether x lies in the closed interval between a and b,
// regardless of their order.
func Between(x, a, b float64) bool {
	if a < b {
		return a <= x && x <= b
	}
	return b <= x && x <= a
}
