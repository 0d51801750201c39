package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"undo", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"redo", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionRedo}},
		{"save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"force quit", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionEvent{Action: ActionForceQuit}},
		{"copy", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionEvent{Action: ActionCopyLine}},
		{"paste", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), ActionEvent{Action: ActionPaste}},
		{"line numbers", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleLineNumbers}},
		{"fullscreen", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleFullscreen}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionQuit}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertTab}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharForward}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionMoveLeft}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), ActionEvent{Action: ActionMovePageDown}},
		{"ctrl arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), ActionEvent{Action: ActionUnknown}},
		{"unbound ctrl", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyCtrlB, ActionSave)
	assert.Equal(t, ActionSave, p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl)).Action)
}

func TestActionHelpers(t *testing.T) {
	assert.Equal(t, "undo", ActionUndo.String())
	assert.Equal(t, "unknown", Action(999).String())
	assert.True(t, ActionMoveEnd.IsMovement())
	assert.False(t, ActionInsertRune.IsMovement())
}
