package player

import "math"

// Movement tuning. StepSize is world units per key press, TurnStep radians
// per rotation key, LookGain radians per pointer column.
const (
	StepSize = 0.25
	TurnStep = 0.05
	LookGain = 0.01
)

// Movement keys translate along the heading offset by a quarter turn, so
// forward/back and the strafe pair use mirrored offsets.
const strafeOffset = math.Pi / 4

// Pose is the viewer's position and heading. It is single-owner mutable
// state: the event loop applies input deltas, the projector reads it for one
// frame at a time.
type Pose struct {
	X, Y    float64
	Heading float64
}

// Forward steps along heading - 45°.
func (p *Pose) Forward() { p.advance(-strafeOffset, 1) }

// Backward steps against heading - 45°.
func (p *Pose) Backward() { p.advance(-strafeOffset, -1) }

// StrafeLeft steps along heading + 45°.
func (p *Pose) StrafeLeft() { p.advance(strafeOffset, 1) }

// StrafeRight steps against heading + 45°.
func (p *Pose) StrafeRight() { p.advance(strafeOffset, -1) }

func (p *Pose) advance(offset, dir float64) {
	p.X += math.Cos(p.Heading+offset) * StepSize * dir
	p.Y += math.Sin(p.Heading+offset) * StepSize * dir
}

// Rotate adjusts the heading by delta radians. The wrap into (-π, π] happens
// once per frame in Normalize, not here.
func (p *Pose) Rotate(delta float64) {
	p.Heading += delta
}

// Look applies a pointer movement of cols columns to the heading.
func (p *Pose) Look(cols int) {
	p.Heading += float64(cols) * LookGain
}

// Normalize wraps the heading into (-π, π] with a single 2π correction.
// Per-frame deltas are bounded well below a full turn, so one step is always
// enough and the angle never grows without bound.
func (p *Pose) Normalize() {
	if p.Heading < -math.Pi {
		p.Heading += 2 * math.Pi
	} else if p.Heading > math.Pi {
		p.Heading -= 2 * math.Pi
	}
}
