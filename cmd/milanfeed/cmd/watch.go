package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run aggregation on a cron schedule",
	Long: `Run an aggregation pass immediately, then repeat on the configured
cron schedule (default every 30 minutes) until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule.CronSpec, func() {
		if err := collectOnce(ctx, cfg); err != nil {
			slog.Error("scheduled collection failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", cfg.Schedule.CronSpec, err)
	}

	// First pass runs immediately; a bad output path should fail fast
	// rather than at the first tick.
	if err := collectOnce(ctx, cfg); err != nil {
		return err
	}

	slog.Info("watching", "cron", cfg.Schedule.CronSpec)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}
