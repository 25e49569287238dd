package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

func newLogger() *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minesweeper",
		Short:         "Single-player minesweeper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			return config.SetupEngineLog(mines.Log)
		},
	}
	root.AddCommand(newServeCmd(), newPlayCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		newLogger().Error("minesweeper failed", slog.Any("error", err))
		os.Exit(1)
	}
}
