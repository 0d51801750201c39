package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/medhapad/internal/logger"
)

// Manager holds copied text. It forwards to the system clipboard when one is
// available and always keeps an internal register so paste works headless.
type Manager struct {
	useSystem bool
	register  string

	// swappable for tests
	writeAll func(string) error
	readAll  func() (string, error)
}

// NewManager creates a clipboard manager. useSystem is ignored when the
// platform has no clipboard utility.
func NewManager(useSystem bool) *Manager {
	m := &Manager{
		useSystem: useSystem && !clipboard.Unsupported,
		writeAll:  clipboard.WriteAll,
		readAll:   clipboard.ReadAll,
	}
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
	}
	return m
}

// UsesSystem reports whether writes reach the system clipboard.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}

// Copy stores text in the register and the system clipboard.
// The register is updated even if the system write fails.
func (m *Manager) Copy(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	logger.DebugTagf("clipboard", "Clipboard: copied %d bytes", len(text))
	return nil
}

// Paste returns the system clipboard content, falling back to the register
// when the system clipboard is unavailable or empty.
func (m *Manager) Paste() (string, error) {
	if !m.useSystem {
		return m.register, nil
	}
	text, err := m.readAll()
	if err != nil {
		logger.Warnf("Clipboard: system read failed: %v", err)
		return m.register, fmt.Errorf("system clipboard read: %w", err)
	}
	if text == "" {
		return m.register, nil
	}
	return text, nil
}
