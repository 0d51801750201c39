// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/logger"
)

// Keymap maps keys to editor actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the key mappings. Control keys are listed by
// their tcell key code, which already implies Ctrl.
func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd

	// KeyEnter, KeyTab and KeyBackspace share codes with Ctrl+M, Ctrl+I, Ctrl+H
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward

	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopyLine
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlL] = ActionToggleLineNumbers
	p.keymap[tcell.KeyCtrlF] = ActionToggleFullscreen
}

// Bind replaces the action for key.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// ProcessEvent returns the action for a key event.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// The key code already says Ctrl
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
		if key == tcell.KeyRune {
			return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
		}
	}

	logger.DebugTagf("input", "Input: unmapped key %v mod %v", key, mod)
	return ActionEvent{Action: ActionUnknown}
}
