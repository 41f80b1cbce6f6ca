package game

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/EnokiUN/rhywbeth/player"
)

func newTestContext(t *testing.T) (*Context, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	ctx, err := New(screen, Config{Mute: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ctx.Close)
	return ctx, screen
}

func TestNewContextDefaults(t *testing.T) {
	ctx, _ := newTestContext(t)
	if len(ctx.Walls()) != 7 {
		t.Errorf("context has %d walls, want the 7 default ones", len(ctx.Walls()))
	}
	p := ctx.Pose()
	if p.X != 0 || p.Y != 0 {
		t.Errorf("start position = (%v, %v), want origin", p.X, p.Y)
	}
}

func TestRunHandlesMovementThenQuit(t *testing.T) {
	ctx, screen := newTestContext(t)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	go func() {
		ctx.Run()
		close(done)
	}()
	<-done

	p := ctx.Pose()
	start := player.Pose{Heading: 3 * math.Pi / 4}
	if math.Hypot(p.X, p.Y) < player.StepSize/2 {
		t.Errorf("pose did not move: (%v, %v)", p.X, p.Y)
	}
	if math.Abs(p.Heading-(start.Heading+player.TurnStep)) > 1e-9 {
		t.Errorf("heading = %v, want %v", p.Heading, start.Heading+player.TurnStep)
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	ctx, screen := newTestContext(t)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	done := make(chan struct{})
	go func() {
		ctx.Run()
		close(done)
	}()
	<-done
}

func TestLoadMapConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)

	if _, err := New(screen, Config{MapPath: "does-not-exist.map", Mute: true}); err == nil {
		t.Error("expected an error for a missing map file")
	}
}
