package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"milanfeed/internal/config"
	"milanfeed/internal/pipeline"
	"milanfeed/internal/snapshot"
	"milanfeed/internal/sources"
	"milanfeed/internal/storage"
	"milanfeed/internal/translate"
	"milanfeed/pkg/models"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run one aggregation pass",
	Long: `Fetch every configured source once, merge the results, and replace
the JSON snapshot. Individual source failures are reported and skipped;
only a failure to write the snapshot makes the run fail.`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return collectOnce(ctx, cfg)
}

// collectOnce runs the full fetch-merge-write cycle. Shared by the
// collect and watch commands.
func collectOnce(ctx context.Context, cfg config.Config) error {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("AC Milan News Aggregator")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	var translator sources.Translator
	if cfg.Translate.Enabled {
		translator = translate.New(translate.Config{
			SourceLang: cfg.Translate.SourceLang,
			TargetLang: cfg.Translate.TargetLang,
		})
	}

	fetchers := sources.Registry(sources.Options{
		Timeout:    cfg.Fetch.Timeout,
		UserAgent:  cfg.Fetch.UserAgent,
		Translator: translator,
	})

	for _, f := range fetchers {
		fmt.Printf("Fetching %s...\n", f.Name())
	}

	p := pipeline.New(fetchers)
	result := p.Run(ctx)

	for _, sr := range result.SourceResults {
		fmt.Println(sr.Summary())
	}

	fmt.Println()
	fmt.Printf("Total articles fetched: %d\n", result.TotalFetched)
	fmt.Printf("After deduplication: %d\n", len(result.Articles))

	writer := snapshot.NewWriter(cfg.Output.Path)
	snap, err := writer.Write(result.Articles)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Println()
	fmt.Printf("Saved %d articles to %s\n", len(result.Articles), cfg.Output.Path)
	fmt.Println(strings.Repeat("=", 50))

	if cfg.Storage.Enabled {
		publishSnapshot(ctx, cfg.Storage, snap)
	}

	return nil
}

// publishSnapshot uploads the snapshot to the configured bucket. A
// publish failure is logged, not returned: the local artifact already
// holds the run's output.
func publishSnapshot(ctx context.Context, storageCfg config.Storage, snap models.Snapshot) {
	client, err := storage.New(storage.Config{
		Endpoint:        storageCfg.Endpoint,
		Bucket:          storageCfg.Bucket,
		ObjectName:      storageCfg.ObjectName,
		AccessKeyID:     storageCfg.AccessKeyID,
		SecretAccessKey: storageCfg.SecretAccessKey,
		UseSSL:          storageCfg.UseSSL,
	})
	if err != nil {
		slog.Warn("storage client init failed", "error", err)
		return
	}

	data, err := snapshot.Encode(snap)
	if err != nil {
		slog.Warn("snapshot encode for publish failed", "error", err)
		return
	}

	if err := client.EnsureBucket(ctx); err != nil {
		slog.Warn("ensure bucket failed", "bucket", client.Bucket(), "error", err)
		return
	}
	if err := client.PublishSnapshot(ctx, data); err != nil {
		slog.Warn("snapshot publish failed", "bucket", client.Bucket(), "error", err)
		return
	}

	fmt.Printf("Published snapshot to bucket %s\n", client.Bucket())
}
