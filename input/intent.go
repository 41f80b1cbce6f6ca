package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Movement
	IntentMoveForward  // w
	IntentMoveBackward // s
	IntentStrafeLeft   // a
	IntentStrafeRight  // d

	// Rotation
	IntentTurnLeft  // h
	IntentTurnRight // l
	IntentLook      // Horizontal pointer motion
)

// Intent represents a parsed semantic action.
// Pure data struct with no terminal dependencies.
type Intent struct {
	Type IntentType

	// LookDelta is the pointer's column movement since the previous Look,
	// only meaningful for IntentLook.
	LookDelta int
}
