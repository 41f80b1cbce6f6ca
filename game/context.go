// Package game wires the projector, renderer, input translator, and audio
// into one session around a single mutable viewer pose.
package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/EnokiUN/rhywbeth/audio"
	"github.com/EnokiUN/rhywbeth/geometry"
	"github.com/EnokiUN/rhywbeth/input"
	"github.com/EnokiUN/rhywbeth/player"
	"github.com/EnokiUN/rhywbeth/raycast"
	"github.com/EnokiUN/rhywbeth/render"
	"github.com/EnokiUN/rhywbeth/world"
)

// Config selects the wall layout and optional features for one session.
type Config struct {
	MapPath string // empty means the built-in layout
	Mute    bool
	Shade   bool
}

// Context owns all session state: the screen, the viewer pose, the wall
// list, and the frame pipeline. Everything is driven by the single event
// loop in Run; nothing here is shared across goroutines.
type Context struct {
	screen     tcell.Screen
	pose       player.Pose
	walls      []geometry.Segment
	projector  *raycast.Projector
	renderer   *render.Renderer
	sound      *audio.Engine
	translator *input.Translator
}

// New builds a session on an initialized screen. The screen stays owned by
// the caller; Fini is still the caller's responsibility on the error path.
func New(screen tcell.Screen, cfg Config) (*Context, error) {
	walls := world.Default()
	if cfg.MapPath != "" {
		var err error
		walls, err = world.Load(cfg.MapPath)
		if err != nil {
			return nil, err
		}
	}
	return &Context{
		screen:     screen,
		pose:       world.Start(),
		walls:      walls,
		projector:  raycast.New(),
		renderer:   render.New(screen, cfg.Shade),
		sound:      audio.New(cfg.Mute),
		translator: input.New(),
	}, nil
}

// Pose returns the current viewer pose.
func (c *Context) Pose() player.Pose {
	return c.pose
}

// Walls returns the session's wall list.
func (c *Context) Walls() []geometry.Segment {
	return c.walls
}

// Run is the session loop: one blocking event wait, then one full-frame
// recompute and redraw, repeated until a quit intent. An event is always
// fully handled, render included, before the next one is read.
func (c *Context) Run() {
	c.frame()
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		intent := c.translator.Translate(ev)
		switch intent.Type {
		case input.IntentQuit:
			return
		case input.IntentMoveForward:
			c.pose.Forward()
			c.sound.Step()
		case input.IntentMoveBackward:
			c.pose.Backward()
			c.sound.Step()
		case input.IntentStrafeLeft:
			c.pose.StrafeLeft()
			c.sound.Step()
		case input.IntentStrafeRight:
			c.pose.StrafeRight()
			c.sound.Step()
		case input.IntentTurnLeft:
			c.pose.Rotate(player.TurnStep)
			c.sound.Turn()
		case input.IntentTurnRight:
			c.pose.Rotate(-player.TurnStep)
			c.sound.Turn()
		case input.IntentLook:
			c.pose.Look(intent.LookDelta)
		case input.IntentResize:
			c.screen.Sync()
		case input.IntentNone:
			continue
		}
		c.frame()
	}
}

// frame normalizes the heading, casts one ray per screen column, and paints
// the result.
func (c *Context) frame() {
	c.pose.Normalize()
	w, h := c.screen.Size()
	columns := c.projector.Cast(
		geometry.Point{X: c.pose.X, Y: c.pose.Y},
		c.pose.Heading,
		c.walls,
		w, h,
	)
	c.renderer.Frame(c.pose, columns)
}

// Close releases the audio engine. The screen is closed by the caller.
func (c *Context) Close() {
	c.sound.Close()
}
