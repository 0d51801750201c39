// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/medhapad/internal/config"
	"github.com/bethropolis/medhapad/internal/core"
	"github.com/bethropolis/medhapad/internal/core/clipboard"
	"github.com/bethropolis/medhapad/internal/diagnose"
	"github.com/bethropolis/medhapad/internal/event"
	"github.com/bethropolis/medhapad/internal/input"
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/statusbar"
	"github.com/bethropolis/medhapad/internal/theme"
	"github.com/bethropolis/medhapad/internal/tui"
	"github.com/bethropolis/medhapad/internal/utils"
)

// App owns the screen, the editing session and the event loop. All of its
// state is touched only from the loop goroutine.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *core.Editor
	view           *tui.View
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager

	checker   *diagnose.Checker
	debouncer utils.Debouncer
	ctx       context.Context
	cancel    context.CancelFunc

	forceQuitPending bool
	quitting         bool

	pasting  bool
	pasteBuf strings.Builder

	closeOnce sync.Once
}

// NewApp loads filePath and sets up the screen. A nil screen selects the
// terminal; tests pass a simulation screen.
func NewApp(filePath string, cfg *config.Config, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	themeManager := theme.NewManager(cfg.Theme.File)
	if cfg.Theme.Name != "" {
		if err := themeManager.SetTheme(cfg.Theme.Name); err != nil {
			logger.Warnf("App: %v (available: %s)", err, strings.Join(themeManager.ListThemes(), ", "))
		}
	}
	defStyle := themeManager.Current().GetStyle("Default")

	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New(defStyle)
	} else {
		tuiManager, err = tui.NewWithScreen(screen, defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	editor := core.NewEditor("", cfg.EditorOptions())
	editor.SetEventManager(eventManager)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         editor,
		view:           tui.NewView(),
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(themeManager.Current())),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		themeManager:   themeManager,
		ctx:            ctx,
		cancel:         cancel,
	}
	if cfg.Editor.Diagnostics {
		a.checker = diagnose.NewChecker()
	}
	a.subscribe()

	if filePath != "" {
		if err := editor.Load(filePath); err != nil {
			tuiManager.Close()
			cancel()
			return nil, fmt.Errorf("open '%s': %w", filePath, err)
		}
	}
	return a, nil
}

// Editor returns the editing session.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// View returns the editor view.
func (a *App) View() *tui.View {
	return a.view
}

// Run processes events until quit. It closes the screen before returning.
func (a *App) Run() error {
	defer a.Close()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("Ctrl+S Save | Ctrl+Z Undo | Ctrl+Y Redo | Esc Quit")
	a.draw()

	for !a.quitting {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handleEvent(ev) && !a.quitting {
			a.draw()
		}
	}

	a.eventManager.Dispatch(event.TypeAppQuit, nil)
	if a.editor.Document().IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("App: exiting")
	return nil
}

// Close stops pending diagnostics and releases the screen. It may be called
// more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.debouncer.Stop()
		a.cancel()
		a.tuiManager.Close()
	})
}

// textHeight is the number of rows given to the editor view.
func (a *App) textHeight() int {
	_, height := a.tuiManager.Size()
	if a.editor.Options().Fullscreen {
		return height
	}
	return max(0, height-a.cfg.Editor.StatusBarHeight)
}

// textWidth is the number of columns right of the gutter.
func (a *App) textWidth() int {
	width, _ := a.tuiManager.Size()
	return width - tui.GutterWidth(a.editor.LineCount(), a.editor.Options().ShowLineNumbers, width)
}
