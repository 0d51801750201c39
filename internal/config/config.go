// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/medhapad/internal/core"
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/render"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Theme  ThemeConfig   `toml:"theme"`
	Export ExportConfig  `toml:"export"`

	// Undecoded lists keys in the file that matched no setting.
	Undecoded []string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth           int  `toml:"tab_width"`
	ScrollOff          int  `toml:"scroll_off"`
	SystemClipboard    bool `toml:"system_clipboard"`
	StatusBarHeight    int  `toml:"status_bar_height"`
	HistoryCap         int  `toml:"history_cap"`
	ShowLineNumbers    bool `toml:"show_line_numbers"`
	FontSize           int  `toml:"font_size"`
	Fullscreen         bool `toml:"fullscreen"`
	Diagnostics        bool `toml:"diagnostics"`
	DiagnosticsDelayMs int  `toml:"diagnostics_delay_ms"`
}

// ThemeConfig selects a TOML theme file and, optionally, the theme to start
// with. Empty keeps the built-in theme.
type ThemeConfig struct {
	File string `toml:"file"`
	Name string `toml:"name"`
}

// ExportConfig controls HTML export.
type ExportConfig struct {
	HTMLStyle       string `toml:"html_style"`
	HTMLClasses     bool   `toml:"html_classes"`
	HTMLLineNumbers bool   `toml:"html_line_numbers"`
	HTMLStandalone  bool   `toml:"html_standalone"`
}

var (
	mu           sync.RWMutex
	loadedConfig *Config
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:           DefaultTabWidth,
			ScrollOff:          DefaultScrollOff,
			SystemClipboard:    SystemClipboard,
			StatusBarHeight:    StatusBarHeight,
			HistoryCap:         DefaultHistoryCap,
			ShowLineNumbers:    true,
			FontSize:           DefaultFontSize,
			Diagnostics:        true,
			DiagnosticsDelayMs: int(DefaultDiagnosticsDelay / time.Millisecond),
		},
		Export: ExportConfig{
			HTMLStyle:       DefaultHTMLStyle,
			HTMLLineNumbers: true,
			HTMLStandalone:  true,
		},
	}
}

// DefaultPath returns <user config dir>/medhapad/config.toml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// decodeFile decodes filePath over cfg. Keys absent from the file keep their
// current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // 0 is allowed
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Editor.HistoryCap <= 0 {
		c.Editor.HistoryCap = defaults.Editor.HistoryCap
	}
	if c.Editor.FontSize <= 0 {
		c.Editor.FontSize = defaults.Editor.FontSize
	}
	if c.Editor.DiagnosticsDelayMs <= 0 {
		c.Editor.DiagnosticsDelayMs = defaults.Editor.DiagnosticsDelayMs
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Export.HTMLStyle == "" {
		c.Export.HTMLStyle = defaults.Export.HTMLStyle
	}
}

// Load builds a configuration from defaults, the file at configFilePath (the
// default path when empty) and the flags that were set, in that order.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	var loadErr error
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			// Keep settings decoded before the error out of the result
			cfg = NewDefaultConfig()
			loadErr = err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}

// LoadConfig loads the configuration and stores it for Get.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg, err := Load(configFilePath, flags)
	mu.Lock()
	loadedConfig = cfg
	mu.Unlock()
	return cfg, err
}

// Get returns the configuration stored by LoadConfig, or defaults before it.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if loadedConfig == nil {
		return NewDefaultConfig()
	}
	return loadedConfig
}

// EditorOptions returns the session options.
func (c *Config) EditorOptions() core.Options {
	return core.Options{
		HistoryCap:      c.Editor.HistoryCap,
		TabWidth:        c.Editor.TabWidth,
		ScrollOff:       c.Editor.ScrollOff,
		FontSize:        c.Editor.FontSize,
		Fullscreen:      c.Editor.Fullscreen,
		ShowLineNumbers: c.Editor.ShowLineNumbers,
	}
}

// HTMLOptions returns the HTML export options.
func (c *Config) HTMLOptions() render.HTMLOptions {
	return render.HTMLOptions{
		Style:       c.Export.HTMLStyle,
		Classes:     c.Export.HTMLClasses,
		LineNumbers: c.Export.HTMLLineNumbers,
		Standalone:  c.Export.HTMLStandalone,
		FontSize:    c.Editor.FontSize,
		TabWidth:    c.Editor.TabWidth,
	}
}

// DiagnosticsDelay returns the debounce delay for syntax checks.
func (c *Config) DiagnosticsDelay() time.Duration {
	return time.Duration(c.Editor.DiagnosticsDelayMs) * time.Millisecond
}
