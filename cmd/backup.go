package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filestorage/core/config"
	"filestorage/core/logger"
	"filestorage/core/remote"
	"filestorage/core/storage"
	"filestorage/feature/backup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy every stored object to an S3-compatible bucket",
	Long: `Uploads all objects under the storage root to the configured remote bucket
(REMOTE_* settings), keyed by BACKUP_PREFIX + object key. Prints a summary, or
the JSON report with --json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		engine, err := storage.NewEngine(cfg.Storage.Root)
		if err != nil {
			return fmt.Errorf("failed to open storage root %s: %w", cfg.Storage.Root, err)
		}

		client, err := remote.NewClient(cfg.Remote)
		if err != nil {
			return err
		}

		svc := backup.NewService(engine, client, cfg.Remote.Bucket, cfg.Backup, logg)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err := svc.Run(ctx)
		if err != nil {
			logg.Error("Backup aborted",
				zap.Int("uploaded", report.Uploaded),
				zap.Error(err))
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("Uploaded %d objects (%d bytes) to %s, skipped %d, in %s\n",
			report.Uploaded, report.Bytes, cfg.Remote.Bucket, report.Skipped,
			time.Since(startTime).Round(time.Millisecond))
		return nil
	},
}

func init() {
	backupCmd.Flags().Bool("json", false, "Print the report as JSON")
	RootCmd.AddCommand(backupCmd)
}
