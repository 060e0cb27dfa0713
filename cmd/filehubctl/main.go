package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/filehub/filehubctl/internal/config"
	"github.com/filehub/filehubctl/internal/models"
	"github.com/filehub/filehubctl/internal/version"
	"github.com/filehub/filehubctl/pkg/aws"
	"github.com/filehub/filehubctl/pkg/cache"
	"github.com/filehub/filehubctl/pkg/formatter"
	"github.com/filehub/filehubctl/pkg/retention"
)

var (
	cfgFile     string
	bucket      string
	region      string
	watch       bool
	interval    time.Duration
	showVersion bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filehubctl",
		Short: "Admin console for a FileHub transfer bucket",
		Long: `filehubctl lists the objects in a FileHub S3 transfer bucket,
purges objects older than the retention window and displays the
result as tables with masked keys and expiry countdowns.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				info := version.Get()
				fmt.Printf("filehubctl version %s (built: %s, commit: %s)\n",
					info.Version, info.BuildDate, info.GitCommit)
				return nil
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			// Flags win over file and environment
			if bucket != "" {
				cfg.Bucket = bucket
			}
			if region != "" {
				cfg.Region = region
			}
			if cmd.Flags().Changed("interval") {
				cfg.WatchInterval = interval
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file")
	rootCmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Transfer bucket name (overrides config)")
	rootCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region of the bucket (overrides config)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render periodically until interrupted")
	rootCmd.Flags().DurationVarP(&interval, "interval", "i", 5*time.Second, "Render period in watch mode")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	client, err := aws.NewS3Client(ctx, aws.Options{
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return err
	}

	listings := cache.New(client, cfg.Bucket, cfg.RefreshInterval)
	sweeper := retention.NewSweeper(client, cfg.Bucket, cfg.ActiveTTL)
	session := retention.NewSession(listings, sweeper, cfg.ActiveTTL, cfg.RefreshInterval)

	if !watch {
		return renderOnce(ctx, session, cfg)
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.WatchInterval)
	defer ticker.Stop()

	for {
		// A failed refresh is reported and retried on the next tick
		if err := renderOnce(sigCtx, session, cfg); err != nil {
			fmt.Printf("Error refreshing bucket %s: %v\n", cfg.Bucket, err)
		}

		select {
		case <-sigCtx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func renderOnce(ctx context.Context, session *retention.Session, cfg *config.Config) error {
	scanStartTime := time.Now()

	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Refreshing bucket %s ...", cfg.Bucket)
	s.Start()

	snap, err := session.Tick(ctx)
	scanDuration := time.Since(scanStartTime)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d objects found] Bucket %s refreshed - Completed in %.2f seconds\n",
		len(snap.Objects), cfg.Bucket, scanDuration.Seconds())
	s.Stop()

	formatter.PrintObjectsSummary(os.Stdout, models.Summarize(snap.Objects))
	formatter.PrintActiveObjectsTable(os.Stdout, retention.ActiveObjects(snap.Objects))
	formatter.PrintAllObjectsTable(os.Stdout, retention.AllObjects(snap.Objects, cfg.DisplayHorizon), cfg.DisplayHorizon)
	formatter.PrintDeletionLog(os.Stdout, snap.Deletions)

	return nil
}
