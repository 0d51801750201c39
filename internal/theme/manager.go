// internal/theme/manager.go
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
}

// NewManager creates a manager holding the built-in theme. A non-empty
// themeFile is loaded and made active; failing to load it is logged and the
// built-in theme stays active.
func NewManager(themeFile string) *Manager {
	builtin := DevComfortDark
	mgr := &Manager{themes: make(map[string]*Theme)}
	mgr.Add(&builtin)
	mgr.activeTheme = &builtin

	if themeFile == "" {
		return mgr
	}
	t, err := LoadThemeFromFile(themeFile)
	if err != nil {
		logger.Errorf("Theme: %v", err)
		return mgr
	}
	mgr.Add(t)
	mgr.activeTheme = t
	logger.Infof("Theme: active theme '%s'", t.Name)
	return mgr
}

// Add registers t, replacing a theme of the same name.
func (m *Manager) Add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	if m.activeTheme == nil {
		return &Theme{Name: "Failsafe", Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme activates a theme by name, ignoring case.
func (m *Manager) SetTheme(name string) error {
	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	m.activeTheme = t
	return nil
}

// ListThemes returns the sorted names of all themes.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
