package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jose-valero/faceit-map-stats/internal/infra/config"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

var (
	cfg         config.Config
	logLevel    string
	closeLogger = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "mapstats",
	Short: "FACEIT team map statistics",
	Long:  "Reconstructs a team's series from FACEIT match history and reports per-map win/loss over the last months.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		cfg = config.Load()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		closeLogger = logging.MustCreateLogger(logging.Level(cfg.LogLevel), cfg.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (default: LOG_LEVEL or info)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}
