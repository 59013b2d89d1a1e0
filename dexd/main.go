package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"pokedex/adapters/pokeapi"
	"pokedex/adapters/rest"
	"pokedex/adapters/rest/middleware"
	"pokedex/core"
	"pokedex/dexd/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := mustMakeLogger(cfg.LogLevel)

	log.Info("starting server")
	log.Debug("debug messages are enabled")

	catalog, err := pokeapi.NewClient(cfg.PokeAPIAddress, cfg.ClientTimeout, cfg.ClientRate, log)
	if err != nil {
		log.Error("cannot init pokeapi adapter", "error", err)
		os.Exit(1)
	}

	svc, err := core.NewService(log, catalog, cfg.BatchConcurrency)
	if err != nil {
		log.Error("cannot init lookup service", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewConcurrencyLimiter(cfg.LookupConcurrency)

	mux := http.NewServeMux()

	mux.Handle("GET /api/ping", rest.NewPingHandler(log, map[string]core.Pinger{
		"pokeapi": catalog,
	}))
	mux.Handle("GET /api/pokemon", limiter.Wrap(rest.NewLookupHandler(log, svc)))
	mux.Handle("GET /api/pokemon/batch", limiter.Wrap(rest.NewBatchHandler(log, svc)))

	server := http.Server{
		Addr:        cfg.Address,
		ReadTimeout: cfg.HTTPTimeout,
		Handler:     mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down server")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("erroneous shutdown", "error", err)
		}
	}()

	log.Info("Running HTTP server", "address", cfg.Address)
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server closed unexpectedly", "error", err)
			return
		}
	}
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level, AddSource: true})
	return slog.New(handler)
}
