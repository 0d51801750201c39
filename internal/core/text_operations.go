// internal/core/text_operations.go
package core

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/medhapad/internal/event"
	"github.com/bethropolis/medhapad/internal/types"
	"github.com/bethropolis/medhapad/internal/utils"
)

// Cursor returns the cursor as line and rune column.
func (e *Editor) Cursor() types.Position {
	return e.cursor
}

// SetCursor moves the cursor to pos, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursor = pos
	e.clampCursor()
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.cursor})
}

func (e *Editor) clampCursor() {
	e.cursor.Line = utils.Clamp(e.cursor.Line, 0, len(e.lines)-1)
	e.cursor.Col = utils.Clamp(e.cursor.Col, 0, utf8.RuneCountInString(e.lines[e.cursor.Line]))
}

// offset returns the byte offset of pos within the full text.
func (e *Editor) offset(pos types.Position) int {
	off := 0
	for i := 0; i < pos.Line; i++ {
		off += len(e.lines[i]) + 1
	}
	return off + utils.RuneIndexToByteOffset(e.lines[pos.Line], pos.Col)
}

// positionAt converts a byte offset in the full text to a position.
func (e *Editor) positionAt(off int) types.Position {
	for i, line := range e.lines {
		if off <= len(line) {
			return types.Position{Line: i, Col: utf8.RuneCountInString(line[:off])}
		}
		off -= len(line) + 1
	}
	last := len(e.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCountInString(e.lines[last])}
}

// InsertText inserts s at the cursor and leaves the cursor after it.
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	text := e.doc.Text()
	off := e.offset(e.cursor)

	end := e.cursor
	if n := strings.Count(s, "\n"); n > 0 {
		end.Line += n
		end.Col = utf8.RuneCountInString(s[strings.LastIndexByte(s, '\n')+1:])
	} else {
		end.Col += utf8.RuneCountInString(s)
	}

	e.OnEdit(text[:off] + s + text[off:])
	e.SetCursor(end)
}

// InsertNewLine splits the current line at the cursor.
func (e *Editor) InsertNewLine() {
	e.InsertText("\n")
}

// InsertTab inserts TabWidth spaces.
func (e *Editor) InsertTab() {
	e.InsertText(strings.Repeat(" ", e.opts.TabWidth))
}

// DeleteBackward removes the rune before the cursor, joining lines at column 0.
func (e *Editor) DeleteBackward() bool {
	pos := e.cursor
	if pos.Line == 0 && pos.Col == 0 {
		return false
	}
	var start types.Position
	if pos.Col > 0 {
		start = types.Position{Line: pos.Line, Col: pos.Col - 1}
	} else {
		prev := pos.Line - 1
		start = types.Position{Line: prev, Col: utf8.RuneCountInString(e.lines[prev])}
	}
	e.deleteRange(start, pos)
	e.SetCursor(start)
	return true
}

// DeleteForward removes the rune under the cursor, joining lines at line end.
func (e *Editor) DeleteForward() bool {
	pos := e.cursor
	lineLen := utf8.RuneCountInString(e.lines[pos.Line])
	var end types.Position
	switch {
	case pos.Col < lineLen:
		end = types.Position{Line: pos.Line, Col: pos.Col + 1}
	case pos.Line < len(e.lines)-1:
		end = types.Position{Line: pos.Line + 1}
	default:
		return false
	}
	e.deleteRange(pos, end)
	e.SetCursor(pos)
	return true
}

func (e *Editor) deleteRange(start, end types.Position) {
	text := e.doc.Text()
	e.OnEdit(text[:e.offset(start)] + text[e.offset(end):])
}

// MoveCursor moves by lines and columns. Horizontal moves wrap across line
// boundaries; vertical moves keep the column when the target line allows it.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	pos := e.cursor
	if deltaLine != 0 {
		pos.Line = utils.Clamp(pos.Line+deltaLine, 0, len(e.lines)-1)
	}
	for ; deltaCol < 0; deltaCol++ {
		if pos.Col > 0 {
			pos.Col--
		} else if pos.Line > 0 {
			pos.Line--
			pos.Col = utf8.RuneCountInString(e.lines[pos.Line])
		}
	}
	for ; deltaCol > 0; deltaCol-- {
		if pos.Col < utf8.RuneCountInString(e.lines[pos.Line]) {
			pos.Col++
		} else if pos.Line < len(e.lines)-1 {
			pos.Line++
			pos.Col = 0
		}
	}
	e.SetCursor(pos)
}

// MoveHome moves to the first column of the line.
func (e *Editor) MoveHome() {
	e.SetCursor(types.Position{Line: e.cursor.Line})
}

// MoveEnd moves past the last rune of the line.
func (e *Editor) MoveEnd() {
	e.SetCursor(types.Position{Line: e.cursor.Line, Col: utf8.RuneCountInString(e.lines[e.cursor.Line])})
}
