package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/adapters/pokeapi"
	"pokedex/core"
	"pokedex/dex/config"
	"pokedex/dex/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "widget configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := makeLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	catalog, err := pokeapi.NewClient(cfg.PokeAPIAddress, cfg.ClientTimeout, cfg.ClientRate, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init pokeapi adapter: %v\n", err)
		os.Exit(1)
	}

	svc, err := core.NewService(log, catalog, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init lookup service: %v\n", err)
		os.Exit(1)
	}

	m := ui.NewModel(svc, core.NewSession(), cfg.LookupTimeout, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "widget failed: %v\n", err)
		os.Exit(1)
	}
}

// makeLogger writes to the configured file, or discards everything so
// log lines never corrupt the terminal the widget is drawing on.
func makeLogger(logLevel, logFile string) (*slog.Logger, func(), error) {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level: %s", logLevel)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog, nil
}
