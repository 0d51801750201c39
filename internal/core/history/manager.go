// Package history provides linear undo/redo over full-text snapshots.
package history

import "github.com/bethropolis/medhapad/internal/logger"

// DefaultMaxHistory is the number of snapshots kept when no cap is given.
const DefaultMaxHistory = 50

// Manager holds an ordered list of snapshots (oldest first) and a cursor
// pointing at the snapshot that matches the current buffer.
// It is owned by a single editor session and is not safe for concurrent use.
type Manager struct {
	entries    []string
	cursor     int // Always a valid index into entries
	maxEntries int
}

// NewManager creates a history seeded with the initial buffer text.
func NewManager(initial string, maxEntries int) *Manager {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxHistory
	}
	return &Manager{
		entries:    []string{initial},
		maxEntries: maxEntries,
	}
}

// Record appends text as the newest snapshot, dropping any redo entries.
// It returns false and changes nothing when text equals the current snapshot.
func (m *Manager) Record(text string) bool {
	if text == m.entries[m.cursor] {
		return false
	}

	// Truncate the redo tail
	m.entries = append(m.entries[:m.cursor+1], text)

	// Evict oldest snapshots beyond the cap
	if len(m.entries) > m.maxEntries {
		excess := len(m.entries) - m.maxEntries
		m.entries = append(m.entries[:0:0], m.entries[excess:]...)
	}
	m.cursor = len(m.entries) - 1

	logger.DebugTagf("history", "History: recorded snapshot. Position: %d, Count: %d", m.cursor, len(m.entries))
	return true
}

// Undo steps back one snapshot and returns it. At the oldest snapshot it
// returns the current one and false.
func (m *Manager) Undo() (string, bool) {
	if m.cursor <= 0 {
		logger.DebugTagf("history", "History: nothing to undo.")
		return m.entries[m.cursor], false
	}
	m.cursor--
	logger.DebugTagf("history", "History: undo to position %d of %d", m.cursor, len(m.entries))
	return m.entries[m.cursor], true
}

// Redo steps forward one snapshot and returns it. At the newest snapshot it
// returns the current one and false.
func (m *Manager) Redo() (string, bool) {
	if m.cursor >= len(m.entries)-1 {
		logger.DebugTagf("history", "History: nothing to redo.")
		return m.entries[m.cursor], false
	}
	m.cursor++
	logger.DebugTagf("history", "History: redo to position %d of %d", m.cursor, len(m.entries))
	return m.entries[m.cursor], true
}

// Reset discards every snapshot and starts over from text.
func (m *Manager) Reset(text string) {
	m.entries = []string{text}
	m.cursor = 0
	logger.DebugTagf("history", "History: reset.")
}

// Current returns the snapshot at the cursor.
func (m *Manager) Current() string {
	return m.entries[m.cursor]
}

// CanUndo returns true if there is an older snapshot.
func (m *Manager) CanUndo() bool {
	return m.cursor > 0
}

// CanRedo returns true if there is a newer snapshot.
func (m *Manager) CanRedo() bool {
	return m.cursor < len(m.entries)-1
}

// Len returns the number of retained snapshots.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Position returns the cursor index.
func (m *Manager) Position() int {
	return m.cursor
}

// MaxEntries returns the cap.
func (m *Manager) MaxEntries() int {
	return m.maxEntries
}
