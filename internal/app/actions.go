package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/input"
	"github.com/bethropolis/medhapad/internal/logger"
)

// handleKey runs the action bound to ev. It returns true when a redraw is needed.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	actionEvent := a.inputProcessor.ProcessEvent(ev)
	processed := a.executeAction(actionEvent)

	if actionEvent.Action != input.ActionQuit && actionEvent.Action != input.ActionUnknown {
		a.forceQuitPending = false
	}
	if processed {
		a.view.ScrollToCursor(a.editor, a.textWidth(), a.textHeight())
	}
	return processed
}

// executeAction applies one action to the session.
func (a *App) executeAction(actionEvent input.ActionEvent) bool {
	logger.DebugTagf("input", "App: action %v", actionEvent.Action)

	switch actionEvent.Action {
	case input.ActionQuit:
		if a.editor.Document().IsModified() && !a.forceQuitPending {
			a.statusBar.SetTemporaryMessage("Unsaved changes! Press Esc again or Ctrl+Q to quit.")
			a.forceQuitPending = true
			return true
		}
		a.quitting = true
	case input.ActionForceQuit:
		a.quitting = true

	case input.ActionSave:
		if err := a.editor.Save(""); err != nil {
			a.statusBar.SetTemporaryError("Save FAILED: %v", err)
		}

	case input.ActionUndo:
		if !a.editor.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !a.editor.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionCopyLine:
		if err := a.editor.CopyLine(); err != nil {
			a.statusBar.SetTemporaryError("Copy failed: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("Line copied")
		}
	case input.ActionPaste:
		pasted, err := a.editor.Paste()
		switch {
		case err != nil:
			a.statusBar.SetTemporaryError("Paste failed: %v", err)
		case !pasted:
			a.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
		}

	case input.ActionToggleLineNumbers:
		a.editor.ToggleLineNumbers()
	case input.ActionToggleFullscreen:
		a.editor.ToggleFullscreen()

	case input.ActionMoveUp:
		a.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		a.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		a.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		a.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		a.editor.MoveCursor(-max(1, a.textHeight()-1), 0)
	case input.ActionMovePageDown:
		a.editor.MoveCursor(max(1, a.textHeight()-1), 0)
	case input.ActionMoveHome:
		a.editor.MoveHome()
	case input.ActionMoveEnd:
		a.editor.MoveEnd()

	case input.ActionInsertRune:
		a.editor.InsertText(string(actionEvent.Rune))
	case input.ActionInsertNewLine:
		a.editor.InsertNewLine()
	case input.ActionInsertTab:
		a.editor.InsertTab()
	case input.ActionDeleteCharBackward:
		a.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		a.editor.DeleteForward()

	default:
		return false
	}
	return true
}
