// internal/tui/tui.go
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// New creates and initializes the terminal screen.
func New(defStyle tcell.Style) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, defStyle)
}

// NewWithScreen initializes an existing screen, such as a simulation screen.
func NewWithScreen(s tcell.Screen, defStyle tcell.Style) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(defStyle)
	s.EnableMouse(tcell.MouseButtonEvents)
	s.EnablePaste()
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen. Later calls do nothing.
func (t *TUI) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

// PollEvent retrieves the next event. It returns nil once the screen is closed.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent. It is safe from any goroutine.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws every cell, after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
