// internal/event/event.go
package event

import "github.com/bethropolis/medhapad/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Session events
	TypeTextChanged   // Buffer text replaced (edit, set, undo, redo)
	TypeBufferLoaded  // File loaded into the session
	TypeBufferSaved   // Session saved to disk
	TypeCursorMoved   // Cursor position changed
	TypeOptionsChanged

	// Background results delivered on the UI loop
	TypeDiagnostics

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ChangeSource says what produced a text change.
type ChangeSource string

const (
	SourceEdit ChangeSource = "edit"
	SourceSet  ChangeSource = "set"
	SourceUndo ChangeSource = "undo"
	SourceRedo ChangeSource = "redo"
)

// TextChangedData describes a buffer replacement.
type TextChangedData struct {
	Source    ChangeSource
	LineCount int
	Revision  uint64
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// DiagnosticsData carries syntax problem lines for one buffer revision.
type DiagnosticsData struct {
	Revision uint64
	Lines    []int
}
