package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"salesrace/cmd/salesrace/board"
	"salesrace/internal/config"
	"salesrace/internal/logging"
	"salesrace/internal/metrics"
)

// runBoard launches the interactive board and, when configured, the
// metrics endpoint next to it. Quitting the board stops both.
func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	store := newStore(cfg, rec.Observe)
	rec.Set(store.Snapshot())

	model := board.New(store, board.Options{
		Currency:   cfg.Race.Currency,
		Theme:      cfg.UI.Theme,
		TrackWidth: cfg.Race.TrackWidth,
		Logger:     logging.Get(logging.CategoryUI),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, rec, model)
}

// serve runs the program and the metrics server under one errgroup.
func serve(ctx context.Context, cfg *config.Config, rec *metrics.Recorder, model tea.Model, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(rec, logging.Get(logging.CategoryMetrics))
		g.Go(func() error {
			return srv.ListenAndServe(gctx, cfg.Metrics.Addr)
		})
	}

	g.Go(func() error {
		defer cancel()
		opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(gctx)}, opts...)
		if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) {
				logger.Info("board stopped", zap.Error(err))
				return nil
			}
			return fmt.Errorf("board: %w", err)
		}
		logger.Info("board closed")
		return nil
	})

	return g.Wait()
}
