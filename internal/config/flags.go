// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/medhapad/internal/logger"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	DebugLog       *bool

	// One-shot modes
	HTMLOut *string
	Print   *bool
	Tokens  *bool

	// Config overrides, applied only when set
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	TabWidth        *int
	ScrollOff       *int
	HistoryCap      *int
	FontSize        *int
	SystemClipboard *bool
	LineNumbers     *bool
	Fullscreen      *bool
	Diagnostics     *bool
	ThemeFile       *string
	HTMLStyle       *string
	HTMLClasses     *bool
	HTMLLineNumbers *bool
	HTMLStandalone  *bool
}

// NewFlags defines the command-line flags on a new flag set.
func NewFlags(name string, output io.Writer) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	f := &Flags{fs: fs}

	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.DebugLog = fs.Bool("debug-log", false, "Trace the logger's filtering decisions")

	f.HTMLOut = fs.String("html", "", "Write the file as highlighted HTML to this path and exit ('-' for stdout)")
	f.Print = fs.Bool("print", false, "Print the file with terminal colours and exit")
	f.Tokens = fs.Bool("tokens", false, "Print the spans of every line and exit")

	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of spaces per tab")
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context above/below cursor")
	f.HistoryCap = fs.Int("history", 0, "Undo snapshots to keep")
	f.FontSize = fs.Int("fontsize", 0, "Font size in pixels for HTML export")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard")
	f.LineNumbers = fs.Bool("line-numbers", true, "Show the line number gutter")
	f.Fullscreen = fs.Bool("fullscreen", false, "Hide the status bar")
	f.Diagnostics = fs.Bool("diagnostics", true, "Mark lines with syntax errors")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file")
	f.HTMLStyle = fs.String("html-style", "", "Chroma style for HTML and terminal output")
	f.HTMLClasses = fs.Bool("html-classes", false, "Use CSS classes in HTML output")
	f.HTMLLineNumbers = fs.Bool("html-line-numbers", true, "Number lines in HTML output")
	f.HTMLStandalone = fs.Bool("html-standalone", true, "Write a full HTML document")
	return f
}

// Parse parses args, without the program name, and returns the non-flag
// arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies the flags that were set on the command line into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "history":
			if *f.HistoryCap > 0 {
				cfg.Editor.HistoryCap = *f.HistoryCap
			}
		case "fontsize":
			if *f.FontSize > 0 {
				cfg.Editor.FontSize = *f.FontSize
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "line-numbers":
			cfg.Editor.ShowLineNumbers = *f.LineNumbers
		case "fullscreen":
			cfg.Editor.Fullscreen = *f.Fullscreen
		case "diagnostics":
			cfg.Editor.Diagnostics = *f.Diagnostics
		case "theme":
			cfg.Theme.File = *f.ThemeFile
		case "html-style":
			if *f.HTMLStyle != "" {
				cfg.Export.HTMLStyle = *f.HTMLStyle
			}
		case "html-classes":
			cfg.Export.HTMLClasses = *f.HTMLClasses
		case "html-line-numbers":
			cfg.Export.HTMLLineNumbers = *f.HTMLLineNumbers
		case "html-standalone":
			cfg.Export.HTMLStandalone = *f.HTMLStandalone
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
