// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit           // asks again when the buffer is modified
	ActionForceQuit
	ActionSave

	// History and clipboard
	ActionUndo
	ActionRedo
	ActionCopyLine
	ActionPaste

	// View
	ActionToggleLineNumbers
	ActionToggleFullscreen

	// Cursor movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// Text manipulation
	ActionInsertRune // carries Rune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionForceQuit:          "force-quit",
	ActionSave:               "save",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionCopyLine:           "copy-line",
	ActionPaste:              "paste",
	ActionToggleLineNumbers:  "toggle-line-numbers",
	ActionToggleFullscreen:   "toggle-fullscreen",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMovePageUp:         "page-up",
	ActionMovePageDown:       "page-down",
	ActionMoveHome:           "move-home",
	ActionMoveEnd:            "move-end",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "insert-newline",
	ActionInsertTab:          "insert-tab",
	ActionDeleteCharForward:  "delete-forward",
	ActionDeleteCharBackward: "delete-backward",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsMovement reports whether a only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionInsertRune
}
