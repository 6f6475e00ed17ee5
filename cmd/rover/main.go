package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"rover/internal/config"
	"rover/internal/logging"
	"rover/internal/route"
	"rover/internal/status"
	"rover/internal/telemetry"
	"rover/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stdout, config.Usage())
		return 0
	}
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rover: %v\n", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rover needs an interactive terminal")
		return 1
	}

	sessionID := logging.NewSessionID()
	logger, closer, err := logging.Open(cfg.Logging.FilePath, cfg.Logging.Level, sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rover: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
		SessionID:   sessionID,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("trace export disabled")
		provider = nil
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("flush traces")
		}
	}()

	store := status.NewStore()
	store.SetAppVersion(cfg.App.AppVersion)

	fallback, _ := route.ParseFallback(cfg.App.Fallback)

	configFile := cfg.File
	if configFile == "" {
		configFile = "(none)"
	}
	endpoint := cfg.Telemetry.Endpoint
	if endpoint == "" {
		endpoint = "(off)"
	}

	logger.Info().
		Str("start", cfg.App.StartPath).
		Stringer("fallback", fallback).
		Str("version", cfg.App.AppVersion).
		Bool("traces", provider.Enabled()).
		Msg("rover starting")

	model, err := ui.NewAppModel(ui.Options{
		Context:   ctx,
		Fallback:  fallback,
		StartPath: cfg.App.StartPath,
		Status:    store,
		Logger:    &logger,
		Settings: []ui.Setting{
			{Key: "Start path", Value: cfg.App.StartPath},
			{Key: "Log file", Value: cfg.Logging.FilePath},
			{Key: "Log level", Value: cfg.Logging.Level},
			{Key: "Traces", Value: endpoint},
			{Key: "Insecure export", Value: strconv.FormatBool(cfg.Telemetry.Insecure)},
			{Key: "Config file", Value: configFile},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("build shell")
		fmt.Fprintf(os.Stderr, "rover: %v\n", err)
		return 1
	}

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info().Msg("rover stopped")
	return 0
}
