package main

import (
	"github.com/spf13/cobra"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/httpstats"
	"github.com/jose-valero/faceit-map-stats/internal/app/service"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve GET /api/team-stats?teamId=<id> over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}
		srv := httpstats.New(cfg.FaceitAPIKey, service.NewFaceitRunner(cfg))
		return srv.Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: HTTP_ADDR or :8080)")
}
