// internal/tui/view.go
package tui

import (
	"sort"

	"github.com/bethropolis/medhapad/internal/core"
	"github.com/bethropolis/medhapad/internal/render"
	"github.com/bethropolis/medhapad/internal/types"
	"github.com/bethropolis/medhapad/internal/utils"
)

// Pane is one scrollable layer of the editor view.
type Pane struct {
	Name   string
	offset types.Offset
}

// ScrollOffset returns the pane's offset.
func (p *Pane) ScrollOffset() types.Offset { return p.offset }

// SetScrollOffset moves the pane.
func (p *Pane) SetScrollOffset(o types.Offset) { p.offset = o }

// View stacks the line-number gutter, the highlighted overlay and the input
// surface that owns the cursor. The three are kept at one offset.
type View struct {
	Gutter  *Pane
	Overlay *Pane
	Input   *Pane

	sync        *render.Sync
	diagnostics map[int]struct{}
}

// NewView creates a view scrolled to the top.
func NewView() *View {
	v := &View{
		Gutter:      &Pane{Name: "gutter"},
		Overlay:     &Pane{Name: "overlay"},
		Input:       &Pane{Name: "input"},
		diagnostics: make(map[int]struct{}),
	}
	v.sync = render.NewSync(v.Gutter, v.Overlay, v.Input)
	return v
}

// Sync returns the binding between the panes.
func (v *View) Sync() *render.Sync {
	return v.sync
}

// Offset returns the shared offset.
func (v *View) Offset() types.Offset {
	return v.sync.Offset()
}

// SetDiagnostics replaces the set of lines marked in the gutter.
func (v *View) SetDiagnostics(lines []int) {
	v.diagnostics = make(map[int]struct{}, len(lines))
	for _, l := range lines {
		v.diagnostics[l] = struct{}{}
	}
}

// HasDiagnostic reports whether line is marked.
func (v *View) HasDiagnostic(line int) bool {
	_, ok := v.diagnostics[line]
	return ok
}

// DiagnosticLines returns the marked lines in order.
func (v *View) DiagnosticLines() []int {
	lines := make([]int, 0, len(v.diagnostics))
	for l := range v.diagnostics {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	return lines
}

// ScrollToCursor scrolls the input surface so the cursor stays inside the
// text area with ScrollOff lines of margin, then brings the other panes along.
func (v *View) ScrollToCursor(e *core.Editor, textWidth, textHeight int) {
	if textWidth <= 0 || textHeight <= 0 {
		return
	}
	opts := e.Options()
	cursor := e.Cursor()
	off := v.Input.ScrollOffset()

	margin := utils.Clamp(opts.ScrollOff, 0, (textHeight-1)/2)
	if cursor.Line < off.Top+margin {
		off.Top = cursor.Line - margin
	}
	if cursor.Line >= off.Top+textHeight-margin {
		off.Top = cursor.Line - textHeight + margin + 1
	}
	off.Top = utils.Clamp(off.Top, 0, max(0, e.LineCount()-1))

	col := visualColumn(e.Line(cursor.Line), cursor.Col, opts.TabWidth)
	if col < off.Left {
		off.Left = col
	}
	if col >= off.Left+textWidth {
		off.Left = col - textWidth + 1
	}

	v.Input.SetScrollOffset(off)
	v.sync.InputScrolled()
}

// ScrollBy scrolls the input surface vertically without moving the cursor.
func (v *View) ScrollBy(lines int, e *core.Editor) {
	off := v.Input.ScrollOffset()
	off.Top = utils.Clamp(off.Top+lines, 0, max(0, e.LineCount()-1))
	v.Input.SetScrollOffset(off)
	v.sync.InputScrolled()
}
