// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/medhapad/internal/core"
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/render"
	"github.com/bethropolis/medhapad/internal/theme"
)

const diagnosticMarker = '●'

// clusterWidth returns the cells used by a grapheme starting at visual column x.
func clusterWidth(cluster string, width, x, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth - x%tabWidth
	}
	return width
}

// visualColumn returns the cell column of rune index runeIndex in line.
func visualColumn(line string, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	x, runes := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && runes < runeIndex {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		x += clusterWidth(cluster, width, x, tabWidth)
		runes += len([]rune(cluster))
	}
	return x
}

// GutterWidth returns the columns used by the gutter: a marker column, the
// line number and one space. It is zero when hidden or the screen is too narrow.
func GutterWidth(lineCount int, show bool, screenWidth int) int {
	if !show {
		return 0
	}
	w := len(fmt.Sprint(max(lineCount, 1))) + 2
	if w >= screenWidth {
		return 0
	}
	return w
}

// Draw paints the view into the top textHeight rows of the screen.
func Draw(t *TUI, v *View, e *core.Editor, activeTheme *theme.Theme, textHeight int) {
	if activeTheme == nil {
		logger.Warnf("Draw called with nil theme, using built-in")
		activeTheme = &theme.DevComfortDark
	}
	width, _ := t.Size()
	if width <= 0 || textHeight <= 0 {
		return
	}
	gutterWidth := GutterWidth(e.LineCount(), e.Options().ShowLineNumbers, width)

	drawGutter(t, v, e, activeTheme, gutterWidth, textHeight)
	drawOverlay(t, v, e, activeTheme, gutterWidth, width, textHeight)
	drawCursor(t, v, e, gutterWidth, width, textHeight)
}

func drawGutter(t *TUI, v *View, e *core.Editor, th *theme.Theme, gutterWidth, textHeight int) {
	if gutterWidth == 0 {
		return
	}
	base := th.GetStyle("Gutter")
	current := th.GetStyle("GutterCurrent")
	marker := th.GetStyle("GutterDiagnostic")
	top := v.Gutter.ScrollOffset().Top
	digits := gutterWidth - 2

	for y := 0; y < textHeight; y++ {
		for x := 0; x < gutterWidth; x++ {
			t.screen.SetContent(x, y, ' ', nil, base)
		}
		line := top + y
		if line >= e.LineCount() {
			continue
		}
		if v.HasDiagnostic(line) {
			t.screen.SetContent(0, y, diagnosticMarker, nil, marker)
		}
		style := base
		if line == e.Cursor().Line {
			style = current
		}
		for i, r := range fmt.Sprintf("%*d", digits, line+1) {
			t.screen.SetContent(1+i, y, r, nil, style)
		}
	}
}

func drawOverlay(t *TUI, v *View, e *core.Editor, th *theme.Theme, gutterWidth, width, textHeight int) {
	defaultStyle := th.GetStyle("Default")
	off := v.Overlay.ScrollOffset()
	textWidth := width - gutterWidth
	tabWidth := e.Options().TabWidth
	lines := e.RenderedLines()

	for y := 0; y < textHeight; y++ {
		for x := gutterWidth; x < width; x++ {
			t.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
		lineIdx := off.Top + y
		if lineIdx >= len(lines) {
			continue
		}

		visualX := 0
		for _, span := range lines[lineIdx] {
			style := th.GetStyle(render.StyleName(span.Kind))
			state := -1
			rest := span.Text
			for len(rest) > 0 && visualX < off.Left+textWidth {
				var cluster string
				var w int
				cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
				w = clusterWidth(cluster, w, visualX, tabWidth)

				screenX := visualX - off.Left + gutterWidth
				if visualX >= off.Left && screenX+w <= width {
					runes := []rune(cluster)
					if runes[0] == '\t' {
						runes = []rune{' '}
					}
					t.screen.SetContent(screenX, y, runes[0], runes[1:], style)
					for fill := 1; fill < w; fill++ {
						t.screen.SetContent(screenX+fill, y, ' ', nil, style)
					}
				}
				visualX += w
			}
		}
	}
}

func drawCursor(t *TUI, v *View, e *core.Editor, gutterWidth, width, textHeight int) {
	cursor := e.Cursor()
	off := v.Input.ScrollOffset()
	col := visualColumn(e.Line(cursor.Line), cursor.Col, e.Options().TabWidth)

	screenX := col - off.Left + gutterWidth
	screenY := cursor.Line - off.Top
	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= textHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// DrawRow writes text at row y, clipped to the screen and padded with style.
func DrawRow(t *TUI, y int, text string, style tcell.Style) {
	width, _ := t.Size()
	x := 0
	state := -1
	rest := text
	for len(rest) > 0 && x < width {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(w, 1)
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}
