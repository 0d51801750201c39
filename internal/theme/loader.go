// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/logger"
)

// TomlStyleDef is one style in a theme file. Unset fields inherit from Default.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile reads and parses a TOML theme. The file name is used
// when the theme has no name.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	t, err := ParseTheme(string(data), name)
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", filePath, err)
	}
	logger.Debugf("Theme: loaded '%s' from '%s'", t.Name, filePath)
	return t, nil
}

// ParseTheme decodes theme TOML. Styles that fail to parse are skipped.
func ParseTheme(data, fallbackName string) (*Theme, error) {
	var tt TomlTheme
	meta, err := toml.Decode(data, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': unrecognized keys: %v", tt.Name, undecoded)
	}
	if tt.Name == "" {
		tt.Name = fallbackName
	}

	t := &Theme{
		Name:   tt.Name,
		IsDark: tt.IsDark,
		Styles: make(map[string]tcell.Style, len(tt.Styles)+1),
	}

	base := tcell.StyleDefault
	if def, ok := tt.Styles["Default"]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			logger.Warnf("Theme '%s': bad 'Default' style, using terminal default: %v", t.Name, err)
			base = tcell.StyleDefault
		}
	}
	t.Styles["Default"] = base

	for name, def := range tt.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}
	return t, nil
}

func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts "#rrggbb", tcell/W3C colour names, "reset" and "default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("hex colour '%s' must be #rrggbb", s)
	}
	color := tcell.GetColor(s)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown colour '%s'", s)
	}
	return color, nil
}
