package audio

import "testing"

func TestMutedEngineIsInert(t *testing.T) {
	e := New(true)
	if e.Enabled() {
		t.Fatal("muted engine reports enabled")
	}
	// All calls must be safe no-ops without an initialized speaker
	e.Step()
	e.Turn()
	e.Close()
}
