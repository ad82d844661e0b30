package cmd

import (
	"encoding/json"
	"fmt"

	"file-agent/core/storage"
	"file-agent/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the storage bucket is reachable",
	Long:  `Runs the same checks as GET /health and prints the report.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := health.NewService(client, cfg.Storage.Bucket, logg, health.Components{
			Storage: true,
			Agent:   cfg.Agent.Enabled(),
		})
		report := svc.Check(cmd.Context())

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if report.Status != health.StatusHealthy {
			return fmt.Errorf("storage check failed: %s", report.Storage.Error)
		}
		logg.Info("Storage is reachable", zap.String("bucket", report.Storage.Bucket))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
