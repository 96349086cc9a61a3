package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/trivial-trip-planner/internal/config"
	"github.com/Tiliavir/trivial-trip-planner/internal/storage"
	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
	"github.com/Tiliavir/trivial-trip-planner/internal/tripapi"
	"github.com/Tiliavir/trivial-trip-planner/internal/wire"
)

// Exit codes: 1 for bad input, 2 for storage or backend failures.
const (
	exitUsage   = 1
	exitFailure = 2
)

// app bundles what every backend command needs.
type app struct {
	cfg    config.Config
	base   string
	codec  wire.Codec
	client *tripapi.Client
	log    zerolog.Logger
}

// fail prints err and exits with code.
func fail(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// loadApp reads the config and builds the backend client.
func loadApp() *app {
	cfg, err := config.Load()
	if err != nil {
		fail(exitFailure, err)
	}
	log := newLogger(cfg.LogLevel)

	base, err := config.Dir()
	if err != nil {
		fail(exitFailure, err)
	}

	loc, err := timecalc.LoadLocation(cfg.Timezone)
	if err != nil {
		fail(exitUsage, err)
	}
	codec := wire.Codec{Location: loc}

	log.Debug().Str("base_url", cfg.BaseURL).Str("timezone", loc.String()).Msg("config loaded")

	return &app{
		cfg:   cfg,
		base:  base,
		codec: codec,
		client: tripapi.NewClient(tripapi.ClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout(),
			Codec:   codec,
			Logger:  log,
		}),
		log: log,
	}
}

// session returns the stored session or exits if none is set.
func (a *app) session() tripapi.Session {
	s, err := storage.LoadSession(a.base)
	if err != nil {
		fail(exitFailure, err)
	}
	if s == nil {
		fail(exitUsage, fmt.Errorf("no session: run `ttp session set --user <id> --token <token>` first"))
	}
	return *s
}

// context returns a context bounded by the configured request timeout.
func (a *app) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.Timeout())
}

// parseID parses a positional id argument.
func parseID(what, s string) int {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		fail(exitUsage, fmt.Errorf("invalid %s %q: want a number", what, s))
	}
	return id
}
