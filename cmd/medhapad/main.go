// cmd/medhapad/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // logger is not ready until the config is loaded
	"os"

	"github.com/bethropolis/medhapad/internal/app"
	"github.com/bethropolis/medhapad/internal/buffer"
	"github.com/bethropolis/medhapad/internal/config"
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/render"
)

func main() {
	flags := config.NewFlags(config.AppName, os.Stderr)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	logOut, err := logger.OpenOutput(cfg.Logger.LogFilePath, config.AppName)
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer logOut.Close()
	logger.Init(cfg.Logger, logOut)
	logger.SetDebugFilter(*flags.DebugLog)

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}
	for _, key := range cfg.Undecoded {
		logger.Warnf("Unknown config key '%s'", key)
	}

	if *flags.HTMLOut != "" || *flags.Print || *flags.Tokens {
		if err := runOneShot(flags, cfg, filePath); err != nil {
			logger.Errorf("%v", err)
			fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
			os.Exit(1)
		}
		return
	}

	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	medhaApp, err := app.NewApp(filePath, cfg, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
	if err := medhaApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// runOneShot handles -html, -print and -tokens without starting the TUI.
func runOneShot(flags *config.Flags, cfg *config.Config, filePath string) error {
	if filePath == "" {
		return errors.New("a file argument is required")
	}
	doc := buffer.NewDocument("")
	if err := doc.Load(filePath); err != nil {
		return err
	}
	text := doc.Text()

	switch {
	case *flags.Tokens:
		return app.DumpTokens(os.Stdout, text)
	case *flags.Print:
		return app.PrintANSI(os.Stdout, text, cfg.Export.HTMLStyle, render.DetectProfile())
	}

	var w io.Writer = os.Stdout
	if out := *flags.HTMLOut; out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create '%s': %w", out, err)
		}
		defer f.Close()
		w = f
	}
	opts := cfg.HTMLOptions()
	if err := app.ExportHTML(w, text, opts); err != nil {
		return fmt.Errorf("export html: %w", err)
	}
	// A fragment with classes needs its stylesheet next to it
	if opts.Classes && !opts.Standalone && *flags.HTMLOut != "-" {
		cssPath := *flags.HTMLOut + ".css"
		css, err := os.Create(cssPath)
		if err != nil {
			return fmt.Errorf("create '%s': %w", cssPath, err)
		}
		defer css.Close()
		if err := render.NewHTMLRenderer(opts).WriteCSS(css); err != nil {
			return fmt.Errorf("write css: %w", err)
		}
	}
	logger.Infof("Exported %s as HTML", filePath)
	return nil
}
