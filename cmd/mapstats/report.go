package main

import (
	"context"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/console"
	"github.com/jose-valero/faceit-map-stats/internal/app/service"
)

var (
	reportTeam  string
	reportTable bool
	reportKey   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the map report for one team and print it",
	Long: `Runs the full pipeline once against the FACEIT Data API.

Examples:
  mapstats report --team <team-id>
  mapstats report --team <team-id> --table`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportTeam, "team", "", "FACEIT team id (required)")
	reportCmd.Flags().BoolVar(&reportTable, "table", false, "render tables instead of JSON")
	reportCmd.Flags().StringVar(&reportKey, "api-key", "", "FACEIT API key (default: FACEIT_API_KEY)")
	_ = reportCmd.MarkFlagRequired("team")
}

func runReport(cmd *cobra.Command, args []string) error {
	key := reportKey
	if key == "" {
		key = cfg.FaceitAPIKey
	}
	if key == "" {
		return fmt.Errorf("FACEIT API key not configured")
	}

	rep, err := service.NewFaceitRunner(cfg).Run(context.Background(), reportTeam, key)
	if err != nil {
		return err
	}

	if reportTable {
		console.PrintReport(os.Stdout, rep, time.Now())
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
