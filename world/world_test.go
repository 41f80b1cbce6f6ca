package world

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EnokiUN/rhywbeth/geometry"
)

func TestDefaultLayout(t *testing.T) {
	walls := Default()
	if len(walls) != 7 {
		t.Fatalf("default layout has %d walls, want 7", len(walls))
	}
	// The square room's right side is vertical
	vertical := 0
	for _, w := range walls {
		if math.IsInf(w.Slope, 0) {
			vertical++
		}
	}
	if vertical != 2 {
		t.Errorf("default layout has %d vertical walls, want 2", vertical)
	}
}

func TestStartPose(t *testing.T) {
	p := Start()
	if p.X != 0 || p.Y != 0 {
		t.Errorf("start position = (%v, %v), want origin", p.X, p.Y)
	}
	if math.Abs(p.Heading-3*math.Pi/4) > 1e-9 {
		t.Errorf("start heading = %v, want 3π/4", p.Heading)
	}
}

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walls.map")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeMap(t, `
# outer triangle
6 1 4 3 black
4 3 7 5 magenta   # long side

-2 1 -2 5 yellow
`)
	walls, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(walls) != 3 {
		t.Fatalf("loaded %d walls, want 3", len(walls))
	}
	if walls[0].Color != geometry.ColorBlack {
		t.Errorf("wall 0 color = %v, want black", walls[0].Color)
	}
	if !math.IsInf(walls[2].Slope, 0) {
		t.Errorf("wall 2 should be vertical, slope = %v", walls[2].Slope)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name, content, wantErr string
	}{
		{"short line", "1 2 3 white", "want 5 fields"},
		{"bad coordinate", "1 2 x 4 white", "bad coordinate"},
		{"bad color", "1 2 3 4 chartreuse", "unknown color"},
		{"zero length", "1 2 1 2 white", "zero-length"},
		{"empty", "# nothing here\n", "no walls"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeMap(t, c.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.map")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
