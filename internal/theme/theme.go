// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/logger"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. A dotted name falls back to its
// parents ("comment.line" then "comment"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	for key := name; ; {
		if style, ok := t.Styles[key]; ok {
			if key != name {
				logger.DebugTagf("theme", "Theme '%s': style '%s' not found, using '%s'", t.Name, name, key)
			}
			return style
		}
		dot := strings.LastIndexByte(key, '.')
		if dot < 0 {
			break
		}
		key = key[:dot]
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}
	logger.Warnf("Theme '%s': style '%s' and 'Default' not found, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the built-in theme.
var DevComfortDark = newDevComfortDark()

func newDevComfortDark() Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38) // status bar
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcCyan := tcell.NewHexColor(0x56b6c2)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcMagenta := tcell.NewHexColor(0xc678dd)
	dcRed := tcell.NewHexColor(0xe06c75)

	// Terminal background, theme foreground
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	barStyle := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)

	return Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default": baseStyle,

			"Gutter":           baseStyle.Foreground(dcComment),
			"GutterCurrent":    baseStyle.Foreground(dcForeground).Bold(true),
			"GutterDiagnostic": baseStyle.Foreground(dcRed).Bold(true),

			"StatusBar":         barStyle,
			"StatusBarModified": barStyle.Foreground(dcYellow),
			"StatusBarMessage":  barStyle.Bold(true),
			"StatusBarError":    barStyle.Foreground(dcRed).Bold(true),

			"keyword":           baseStyle.Foreground(dcBlue).Bold(true),
			"keyword.directive": baseStyle.Foreground(dcMagenta).Bold(true),
			"string":            baseStyle.Foreground(dcGreen),
			"string.import":     baseStyle.Foreground(dcGreen).Italic(true),
			"comment":           baseStyle.Foreground(dcComment).Italic(true),
			"number":            baseStyle.Foreground(dcOrange),
			"type":              baseStyle.Foreground(dcCyan),
			"type.builtin":      baseStyle.Foreground(dcCyan).Bold(true),
			"function":          baseStyle.Foreground(dcYellow),
			"function.builtin":  baseStyle.Foreground(dcCyan).Italic(true),
			"variable":          baseStyle,
			"operator":          baseStyle.Foreground(dcMagenta),
			"punctuation":       baseStyle.Foreground(dcComment),
		},
	}
}
