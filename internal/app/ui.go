package app

import (
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	currentTheme := a.themeManager.Current()
	width, height := a.tuiManager.Size()
	textHeight := a.textHeight()

	logger.DebugTagf("draw", "draw: screen %dx%d, text rows %d", width, height, textHeight)

	a.tuiManager.Clear()
	tui.Draw(a.tuiManager, a.view, a.editor, currentTheme, textHeight)
	if !a.editor.Options().Fullscreen {
		a.updateStatusBarContent()
		a.statusBar.Draw(a.tuiManager.GetScreen(), width, height, height-textHeight)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	doc := a.editor.Document()
	hist := a.editor.History()
	a.statusBar.SetFileInfo(doc.FilePath(), doc.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor(), a.editor.LineCount())
	a.statusBar.SetHistoryInfo(hist.Position(), hist.Len())
	a.statusBar.SetDiagnostics(len(a.view.DiagnosticLines()))
}
