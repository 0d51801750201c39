package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/diagnose"
	"github.com/bethropolis/medhapad/internal/event"
	"github.com/bethropolis/medhapad/internal/logger"
)

// wheelLines is how far one mouse wheel step scrolls.
const wheelLines = 3

// diagnosticsResult is posted to the loop as a tcell interrupt.
type diagnosticsResult struct {
	revision uint64
	lines    []int
	err      error
}

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeTextChanged, a.handleTextChanged)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
}

// handleEvent reacts to one screen event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.view.ScrollToCursor(a.editor, a.textWidth(), a.textHeight())
		return true

	case *tcell.EventPaste:
		if ev.Start() {
			a.pasting = true
			a.pasteBuf.Reset()
			return false
		}
		a.pasting = false
		a.editor.InsertText(a.pasteBuf.String())
		a.pasteBuf.Reset()
		a.view.ScrollToCursor(a.editor, a.textWidth(), a.textHeight())
		return true

	case *tcell.EventKey:
		if a.pasting {
			a.collectPaste(ev)
			return false
		}
		return a.handleKey(ev)

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			a.view.ScrollBy(-wheelLines, a.editor)
		case ev.Buttons()&tcell.WheelDown != 0:
			a.view.ScrollBy(wheelLines, a.editor)
		default:
			return false
		}
		return true

	case *tcell.EventInterrupt:
		if res, ok := ev.Data().(diagnosticsResult); ok {
			return a.applyDiagnostics(res)
		}
	}
	return false
}

// collectPaste buffers keys between paste start and end.
func (a *App) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.pasteBuf.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		a.pasteBuf.WriteByte('\n')
	case tcell.KeyTab:
		a.pasteBuf.WriteByte('\t')
	}
}

func (a *App) handleTextChanged(e event.Event) bool {
	a.scheduleDiagnostics()
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	a.view.Sync().SetOffset(a.view.Offset().Clamped())
	a.view.SetDiagnostics(nil)
	return false
}

// scheduleDiagnostics checks the current text after the configured delay.
// The result is dropped if the text has changed by the time it arrives.
func (a *App) scheduleDiagnostics() {
	if a.checker == nil {
		return
	}
	revision := a.editor.Revision()
	source := []byte(a.editor.Text())
	a.debouncer.Debounce(a.cfg.DiagnosticsDelay(), func() {
		if a.ctx.Err() != nil {
			return
		}
		problems, err := a.checker.Check(a.ctx, source)
		res := diagnosticsResult{revision: revision, lines: diagnose.Lines(problems), err: err}
		if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(res)); err != nil {
			logger.DebugTagf("diagnose", "App: dropped diagnostics: %v", err)
		}
	})
}

// applyDiagnostics installs a diagnostics result on the loop goroutine.
func (a *App) applyDiagnostics(res diagnosticsResult) bool {
	if res.revision != a.editor.Revision() {
		logger.DebugTagf("diagnose", "App: stale diagnostics for revision %d", res.revision)
		return false
	}
	if res.err != nil {
		logger.Warnf("App: diagnostics failed: %v", res.err)
		return false
	}
	a.view.SetDiagnostics(res.lines)
	a.eventManager.Dispatch(event.TypeDiagnostics, event.DiagnosticsData{Revision: res.revision, Lines: res.lines})
	return true
}
