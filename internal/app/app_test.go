package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/medhapad/internal/config"
	"github.com/bethropolis/medhapad/internal/render"
	"github.com/bethropolis/medhapad/internal/types"
)

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	cfg.Editor.Diagnostics = false
	return cfg
}

func newTestApp(t *testing.T, path string, cfg *config.Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(path, cfg, sim)
	require.NoError(t, err)
	sim.SetSize(40, 10)
	t.Cleanup(a.Close)
	return a, sim
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func ctrl(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModCtrl) }
func runeKey(r rune) *tcell.EventKey  { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func typeText(a *App, s string) {
	for _, r := range s {
		if r == '\n' {
			a.handleEvent(key(tcell.KeyEnter))
			continue
		}
		a.handleEvent(runeKey(r))
	}
}

func screenRow(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTypingUndoRedo(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, "int x;\nx++;")
	assert.Equal(t, "int x;\nx++;", a.Editor().Text())

	assert.True(t, a.handleEvent(ctrl(tcell.KeyCtrlZ)))
	assert.Equal(t, "int x;\nx++", a.Editor().Text())
	a.handleEvent(ctrl(tcell.KeyCtrlY))
	assert.Equal(t, "int x;\nx++;", a.Editor().Text())

	a.handleEvent(key(tcell.KeyBackspace2))
	assert.Equal(t, "int x;\nx++", a.Editor().Text())
}

func TestDrawShowsGutterTextAndStatus(t *testing.T) {
	a, sim := newTestApp(t, "", testConfig())
	typeText(a, "return 0;")
	a.draw()

	assert.Equal(t, " 1 return 0;", screenRow(sim, 0, 40))
	assert.True(t, strings.HasPrefix(screenRow(sim, 9, 40), "[No Name] [+] | Ln 1, Col 10"))

	a.handleEvent(ctrl(tcell.KeyCtrlF))
	a.draw()
	assert.Equal(t, "", screenRow(sim, 9, 40), "fullscreen hides the status bar")

	a.handleEvent(ctrl(tcell.KeyCtrlL))
	a.draw()
	assert.Equal(t, "return 0;", screenRow(sim, 0, 40))
}

func TestQuitAsksWhenModified(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	a.handleEvent(key(tcell.KeyEscape))
	assert.True(t, a.quitting, "clean buffer quits at once")

	a, _ = newTestApp(t, "", testConfig())
	typeText(a, "x")
	a.handleEvent(key(tcell.KeyEscape))
	assert.False(t, a.quitting)
	assert.Contains(t, a.statusBar.Text(), "Unsaved changes")
	a.handleEvent(key(tcell.KeyEscape))
	assert.True(t, a.quitting)

	a, _ = newTestApp(t, "", testConfig())
	typeText(a, "x")
	a.handleEvent(ctrl(tcell.KeyCtrlQ))
	assert.True(t, a.quitting)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int main() {}\n"), 0o644))

	a, _ := newTestApp(t, path, testConfig())
	assert.Equal(t, "int main() {}", a.Editor().Text())

	a.handleEvent(ctrl(tcell.KeyCtrlS))
	assert.Contains(t, a.statusBar.Text(), "Saved")

	a.handleEvent(key(tcell.KeyEnd))
	typeText(a, "\n")
	a.handleEvent(ctrl(tcell.KeyCtrlS))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int main() {}\n\n", string(data))
}

func TestSaveWithoutPathReportsError(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, "x")
	a.handleEvent(ctrl(tcell.KeyCtrlS))
	assert.Contains(t, a.statusBar.Text(), "Save FAILED")
}

func TestBracketedPaste(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	a.handleEvent(tcell.NewEventPaste(true))
	typeText(a, "a\nb")
	assert.Equal(t, "", a.Editor().Text())
	a.handleEvent(tcell.NewEventPaste(false))
	assert.Equal(t, "a\nb", a.Editor().Text())

	a.handleEvent(ctrl(tcell.KeyCtrlZ))
	assert.Equal(t, "", a.Editor().Text(), "paste is one undo step")
}

func TestCopyLinePaste(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, "x;")
	a.handleEvent(ctrl(tcell.KeyCtrlC))
	a.handleEvent(key(tcell.KeyHome))
	a.handleEvent(ctrl(tcell.KeyCtrlV))
	assert.Equal(t, "x;\nx;", a.Editor().Text())
}

func TestMouseWheelScrollsAllPanes(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, strings.Repeat("\n", 30))
	a.handleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	top := a.View().Offset().Top
	a.handleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, top-wheelLines, a.View().Offset().Top)
	assert.True(t, a.View().Sync().InSync())
	assert.False(t, a.handleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)))
}

func TestCursorStaysVisible(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, strings.Repeat("\n", 30))
	assert.Equal(t, types.Position{Line: 30}, a.Editor().Cursor())
	off := a.View().Offset()
	assert.LessOrEqual(t, off.Top, 30)
	assert.Greater(t, off.Top+a.textHeight(), 30)
}

func TestApplyDiagnostics(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	typeText(a, "int x = ;")
	rev := a.Editor().Revision()

	assert.False(t, a.handleEvent(tcell.NewEventInterrupt(diagnosticsResult{revision: rev - 1, lines: []int{0}})))
	assert.Empty(t, a.View().DiagnosticLines())

	assert.True(t, a.handleEvent(tcell.NewEventInterrupt(diagnosticsResult{revision: rev, lines: []int{0}})))
	assert.Equal(t, []int{0}, a.View().DiagnosticLines())
	a.updateStatusBarContent()
	assert.Contains(t, a.statusBar.Text(), "1 problem")
}

func TestRunDeliversDiagnostics(t *testing.T) {
	cfg := testConfig()
	cfg.Editor.Diagnostics = true
	cfg.Editor.DiagnosticsDelayMs = 1
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp("", cfg, sim)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	for _, r := range "int x = ;" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	time.Sleep(500 * time.Millisecond)
	sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, "int x = ;", a.Editor().Text())
	assert.Equal(t, []int{0}, a.View().DiagnosticLines())
}

func TestExportHelpers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportHTML(&buf, "int x;", render.HTMLOptions{Style: "monokai", Classes: true}))
	assert.Contains(t, buf.String(), `<span class="k">int</span>`)

	buf.Reset()
	require.NoError(t, PrintANSI(&buf, "int x;\n", "monokai", termenv.Ascii))
	assert.Equal(t, "int x;\n\n", buf.String())

	buf.Reset()
	require.NoError(t, DumpTokens(&buf, "x;\n"))
	assert.Equal(t, "1: PlainIdentifier\"x\" Separator\";\"\n2: PlainText\"\"\n", buf.String())
}

func TestCloseTwice(t *testing.T) {
	a, _ := newTestApp(t, "", testConfig())
	a.Close()
	assert.NotPanics(t, a.Close)
	assert.Error(t, a.ctx.Err())
}

func TestUndoBackToFileClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))

	a, _ := newTestApp(t, path, testConfig())
	a.handleEvent(key(tcell.KeyEnd))
	typeText(a, ";")
	a.handleEvent(ctrl(tcell.KeyCtrlZ))
	a.handleEvent(key(tcell.KeyEscape))
	assert.True(t, a.quitting, "no prompt when text matches the file")
}
