package domain

// MinAge and MaxAge bound a member's age, inclusive.
const (
	MinAge = 0
	MaxAge = 120
)

// MinUsernameLength is the shortest username, in characters, Register accepts.
const MinUsernameLength = 3

// DefaultWheels is the wheel count a new FleetConfig starts with.
const DefaultWheels = 4

// NoteContent is the fixed text written by the note lesson.
const NoteContent = "Hello, finally!"
