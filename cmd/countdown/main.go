// Package main is the entry point for the interactive countdown.
//
// Usage:
//
//	countdown [target]
//
// The target is an ISO timestamp such as 2030-01-01T00:00:00Z. Without an
// argument COUNTDOWN_TARGET is used. See internal/config for all variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/countdown-timer/countdown/internal/adapter/console"
	"github.com/countdown-timer/countdown/internal/config"
	"github.com/countdown-timer/countdown/internal/domain"
	"github.com/countdown-timer/countdown/internal/infrastructure/logger"
	"github.com/countdown-timer/countdown/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	target, overridden := resolveTarget(cfg, os.Args[1:])
	if target == "" {
		fmt.Fprintln(os.Stderr, "usage: countdown <target>   (or set COUNTDOWN_TARGET)")
		os.Exit(2)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "countdown> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create readline: %v\n", err)
		os.Exit(1)
	}
	closeInput := sync.OnceFunc(func() { _ = rl.Close() })
	defer closeInput()

	// Log through readline so entries do not garble the prompt
	log := setupLogger(cfg, rl.Stderr())

	if overridden {
		logger.Warn().Str("env_target", cfg.Countdown.Target).Msg("Command-line target overrides COUNTDOWN_TARGET")
	}

	logger.Info().
		Str("env", cfg.App.Env).
		Str("target", target).
		Dur("interval", cfg.Countdown.Interval).
		Str("timezone", cfg.Countdown.Timezone).
		Msg("Configuration loaded")

	session := console.NewSession(rl, rl.Stdout())

	opts := []usecase.Option{
		usecase.WithLogger(log),
		usecase.WithObserver(session),
	}
	if cfg.Countdown.StartPaused {
		opts = append(opts, usecase.WithStartPaused())
	}

	engine := usecase.NewCountdownEngine(
		domain.TargetFromString(target),
		&usecase.Config{
			Interval: cfg.Countdown.Interval,
			Location: cfg.Location(),
		},
		opts...,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Unblock Readline on shutdown signals
	go func() {
		<-ctx.Done()
		closeInput()
	}()

	if err := session.Run(ctx, engine); err != nil {
		logger.Error().Err(err).Msg("Session ended with error")
	}

	shutdown(engine)
}

// resolveTarget prefers the command line over COUNTDOWN_TARGET.
// overridden reports that both were set.
func resolveTarget(cfg *config.Config, args []string) (target string, overridden bool) {
	if len(args) > 0 {
		return strings.Join(args, " "), cfg.Countdown.Target != ""
	}
	return cfg.Countdown.Target, false
}

// setupLogger configures zerolog from config and installs the result as the global logger.
func setupLogger(cfg *config.Config, out io.Writer) *logger.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := logger.NewWithOutput(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.LogFormat(),
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  "countdown",
	}, out)
	logger.SetGlobal(l)
	return l
}

// shutdown tears the engine down so no ticker outlives the process.
func shutdown(engine usecase.CountdownEngine) {
	logger.Info().Msg("Shutting down countdown...")
	engine.Close()
	logger.Info().Msg("Countdown stopped")
}
