// internal/core/editor.go
package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/medhapad/internal/buffer"
	"github.com/bethropolis/medhapad/internal/core/clipboard"
	"github.com/bethropolis/medhapad/internal/core/history"
	"github.com/bethropolis/medhapad/internal/event"
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/syntax"
	"github.com/bethropolis/medhapad/internal/types"
)

// Editor is one editing session: the source buffer, its undo history and the
// span lines produced from it. It is driven from a single event loop.
type Editor struct {
	doc      *buffer.Document
	history  *history.Manager
	lines    []string
	rendered [][]syntax.Span
	cursor   types.Position
	revision uint64
	opts     Options

	clipboard    *clipboard.Manager
	eventManager *event.Manager
}

// NewEditor creates a session seeded with initial text.
func NewEditor(initial string, opts Options) *Editor {
	opts = opts.withDefaults()
	e := &Editor{
		doc:     buffer.NewDocument(initial),
		history: history.NewManager(initial, opts.HistoryCap),
		opts:    opts,
	}
	e.retokenize()
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, possibly nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// retokenize recomputes every line's spans from the buffer.
func (e *Editor) retokenize() {
	text := e.doc.Text()
	e.lines = syntax.Lines(text)
	e.rendered = make([][]syntax.Span, len(e.lines))
	for i, line := range e.lines {
		e.rendered[i] = syntax.TokenizeLine(line)
	}
	e.revision++
}

// apply installs text as the buffer content and notifies subscribers.
func (e *Editor) apply(text string, source event.ChangeSource) {
	e.doc.Set(text)
	e.retokenize()
	e.clampCursor()
	e.eventManager.Dispatch(event.TypeTextChanged, event.TextChangedData{
		Source:    source,
		LineCount: len(e.lines),
		Revision:  e.revision,
	})
}

// SetText replaces the buffer and starts a fresh history from it.
func (e *Editor) SetText(text string) {
	e.history.Reset(text)
	e.apply(text, event.SourceSet)
	logger.DebugTagf("editor", "Editor: text set (%d lines)", len(e.lines))
}

// OnEdit accepts the buffer text after a user edit and records it for undo.
func (e *Editor) OnEdit(newText string) {
	if newText == e.doc.Text() {
		return
	}
	e.history.Record(newText)
	e.apply(newText, event.SourceEdit)
}

// Undo restores the previous snapshot. It returns false when there is none.
func (e *Editor) Undo() bool {
	text, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(text, event.SourceUndo)
	return true
}

// Redo restores the next snapshot. It returns false when there is none.
func (e *Editor) Redo() bool {
	text, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(text, event.SourceRedo)
	return true
}

// restore applies a history snapshot and puts the cursor at the end of the
// region that differs from the previous text.
func (e *Editor) restore(text string, source event.ChangeSource) {
	end := changeEnd(e.doc.Text(), text)
	e.apply(text, source)
	e.SetCursor(e.positionAt(end))
}

// changeEnd returns the byte offset in newText just past the part that differs
// from oldText, on a rune boundary.
func changeEnd(oldText, newText string) int {
	n := min(len(oldText), len(newText))
	prefix := 0
	for prefix < n && oldText[prefix] == newText[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < n-prefix && oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}
	end := len(newText) - suffix
	for end < len(newText) && !utf8.RuneStart(newText[end]) {
		end++
	}
	return end
}

// Load reads filePath into the session. History restarts from the file content.
func (e *Editor) Load(filePath string) error {
	if err := e.doc.Load(filePath); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	text := e.doc.Text()
	e.history.Reset(text)
	e.retokenize()
	e.cursor = types.Position{}
	e.eventManager.Dispatch(event.TypeTextChanged, event.TextChangedData{
		Source:    event.SourceSet,
		LineCount: len(e.lines),
		Revision:  e.revision,
	})
	e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	logger.InfoTagf("buffer", "Editor: loaded '%s' (%d lines)", filePath, len(e.lines))
	return nil
}

// Save writes the buffer to filePath, or to the loaded path when empty.
func (e *Editor) Save(filePath string) error {
	if err := e.doc.Save(filePath); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.doc.FilePath()})
	logger.InfoTagf("buffer", "Editor: saved '%s'", e.doc.FilePath())
	return nil
}

// Text returns the current buffer content.
func (e *Editor) Text() string {
	return e.doc.Text()
}

// RenderedLines returns one span sequence per line for the current buffer.
// The slices are replaced, never mutated, on the next change.
func (e *Editor) RenderedLines() [][]syntax.Span {
	return e.rendered
}

// Line returns the raw text of line i, or "" when out of range.
func (e *Editor) Line(i int) string {
	if i < 0 || i >= len(e.lines) {
		return ""
	}
	return e.lines[i]
}

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() int {
	return len(e.lines)
}

// Revision increases on every buffer change.
func (e *Editor) Revision() uint64 {
	return e.revision
}

// Document exposes the underlying document for path and modified state.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// History exposes the undo history for status display.
func (e *Editor) History() *history.Manager {
	return e.history
}

// Options returns the session options.
func (e *Editor) Options() Options {
	return e.opts
}

// SetOptions replaces the session options. The history cap only applies to
// sessions created afterwards.
func (e *Editor) SetOptions(opts Options) {
	e.opts = opts.withDefaults()
	e.eventManager.Dispatch(event.TypeOptionsChanged, e.opts)
}

// ToggleFullscreen flips the fullscreen option.
func (e *Editor) ToggleFullscreen() bool {
	opts := e.opts
	opts.Fullscreen = !opts.Fullscreen
	e.SetOptions(opts)
	return opts.Fullscreen
}

// ToggleLineNumbers flips the gutter option.
func (e *Editor) ToggleLineNumbers() bool {
	opts := e.opts
	opts.ShowLineNumbers = !opts.ShowLineNumbers
	e.SetOptions(opts)
	return opts.ShowLineNumbers
}
