// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/medhapad/internal/theme"
	"github.com/bethropolis/medhapad/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style // modified indicator
	StyleMessage   tcell.Style // temporary messages
	StyleError     tcell.Style // temporary error messages
	MessageTimeout time.Duration
}

// DefaultConfig takes its styles from the built-in theme.
func DefaultConfig() Config {
	return ConfigFromTheme(&theme.DevComfortDark)
}

// ConfigFromTheme builds a config from th's StatusBar styles.
func ConfigFromTheme(th *theme.Theme) Config {
	return Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleModified:  th.GetStyle("StatusBarModified"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		StyleError:     th.GetStyle("StatusBarError"),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the line below the editor view.
type StatusBar struct {
	config Config
	mu     sync.Mutex
	now    func() time.Time

	filePath    string
	isModified  bool
	cursorPos   types.Position
	lineCount   int
	histPos     int
	histLen     int
	diagnostics int

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces styles, after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file name and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position and line count.
func (sb *StatusBar) SetCursorInfo(pos types.Position, lineCount int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
	sb.lineCount = lineCount
}

// SetHistoryInfo updates the undo position, 0-based, out of length entries.
func (sb *StatusBar) SetHistoryInfo(position, length int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.histPos = position
	sb.histLen = length
}

// SetDiagnostics updates the number of lines with syntax problems.
func (sb *StatusBar) SetDiagnostics(count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.diagnostics = count
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetTemporaryError displays an error message for the configured duration.
func (sb *StatusBar) SetTemporaryError(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isError bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempIsError = isError
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// activeMessage returns the temporary message if it has not expired.
// Caller holds mu.
func (sb *StatusBar) activeMessage() (string, bool) {
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", false
	}
	return sb.tempMessage, true
}

// infoText builds the default line, split around the modified indicator.
// Caller holds mu.
func (sb *StatusBar) infoText() (name, modified, rest string) {
	name = "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	if sb.isModified {
		modified = " [+]"
	}
	parts := []string{
		fmt.Sprintf("Ln %d, Col %d", sb.cursorPos.Line+1, sb.cursorPos.Col+1),
		fmt.Sprintf("%d lines", sb.lineCount),
	}
	if sb.histLen > 0 {
		parts = append(parts, fmt.Sprintf("undo %d/%d", sb.histPos, sb.histLen-1))
	}
	switch sb.diagnostics {
	case 0:
	case 1:
		parts = append(parts, "1 problem")
	default:
		parts = append(parts, fmt.Sprintf("%d problems", sb.diagnostics))
	}
	return name, modified, " | " + strings.Join(parts, " | ")
}

// Text returns what the bar currently shows.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if msg, ok := sb.activeMessage(); ok {
		return msg
	}
	name, modified, rest := sb.infoText()
	return name + modified + rest
}

// Draw renders the bar into the bottom rows rows of the screen. Only the last
// row carries text.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height, rows int) {
	if height <= 0 || width <= 0 || rows <= 0 {
		return
	}

	sb.mu.Lock()
	type segment struct {
		text  string
		style tcell.Style
	}
	var segments []segment
	if msg, ok := sb.activeMessage(); ok {
		style := sb.config.StyleMessage
		if sb.tempIsError {
			style = sb.config.StyleError
		}
		segments = append(segments, segment{msg, style})
	} else {
		name, modified, rest := sb.infoText()
		segments = append(segments,
			segment{name, sb.config.StyleDefault},
			segment{modified, sb.config.StyleModified},
			segment{rest, sb.config.StyleDefault})
	}
	base := sb.config.StyleDefault
	sb.mu.Unlock()

	for y := max(0, height-rows); y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}

	y := height - 1
	x := 0
	for _, seg := range segments {
		state := -1
		rest := seg.text
		for len(rest) > 0 {
			var cluster string
			var w int
			cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if x+w > width {
				return
			}
			runes := []rune(cluster)
			screen.SetContent(x, y, runes[0], runes[1:], seg.style)
			x += w
		}
	}
}
