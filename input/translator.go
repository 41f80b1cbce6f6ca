package input

import "github.com/gdamore/tcell/v2"

// Translator turns raw terminal events into semantic intents. It tracks the
// pointer's last column so mouse motion yields relative look deltas; the
// first mouse event only establishes the reference column.
type Translator struct {
	lastMouseX int
	haveMouse  bool
}

// New returns a translator with no pointer reference yet.
func New() *Translator {
	return &Translator{}
}

// Translate maps one terminal event to an intent. Events with no semantic
// meaning come back as IntentNone.
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (t *Translator) translateKey(e *tcell.EventKey) Intent {
	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			return Intent{Type: IntentQuit}
		case 'w':
			return Intent{Type: IntentMoveForward}
		case 's':
			return Intent{Type: IntentMoveBackward}
		case 'a':
			return Intent{Type: IntentStrafeLeft}
		case 'd':
			return Intent{Type: IntentStrafeRight}
		case 'h':
			return Intent{Type: IntentTurnLeft}
		case 'l':
			return Intent{Type: IntentTurnRight}
		}
	}
	return Intent{}
}

func (t *Translator) translateMouse(e *tcell.EventMouse) Intent {
	x, _ := e.Position()
	if !t.haveMouse {
		t.haveMouse = true
		t.lastMouseX = x
		return Intent{}
	}
	delta := x - t.lastMouseX
	t.lastMouseX = x
	if delta == 0 {
		return Intent{}
	}
	return Intent{Type: IntentLook, LookDelta: delta}
}
