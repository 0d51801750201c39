// internal/core/clipboard.go
package core

import (
	"fmt"

	"github.com/bethropolis/medhapad/internal/core/clipboard"
)

// SetClipboard attaches the clipboard used by CopyLine and Paste.
func (e *Editor) SetClipboard(cb *clipboard.Manager) {
	e.clipboard = cb
}

// CopyLine copies the cursor line, with its newline, to the clipboard.
func (e *Editor) CopyLine() error {
	if e.clipboard == nil {
		return fmt.Errorf("no clipboard attached")
	}
	return e.clipboard.Copy(e.lines[e.cursor.Line] + "\n")
}

// Paste inserts the clipboard content at the cursor as one edit.
func (e *Editor) Paste() (bool, error) {
	if e.clipboard == nil {
		return false, fmt.Errorf("no clipboard attached")
	}
	text, err := e.clipboard.Paste()
	if text == "" {
		return false, err
	}
	e.InsertText(text)
	return true, err
}
