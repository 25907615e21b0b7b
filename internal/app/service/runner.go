package service

import (
	"context"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/faceit"
	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/jose-valero/faceit-map-stats/internal/infra/config"
)

// Runner es el punto de entrada de las superficies (HTTP, Lambda, Discord, CLI):
// arma cliente + servicio nuevos por cada invocación.
type Runner struct {
	newClient ClientFactory
	opts      []Option
}

func NewRunner(newClient ClientFactory, opts ...Option) *Runner {
	return &Runner{newClient: newClient, opts: opts}
}

func (r *Runner) Run(ctx context.Context, teamID, apiKey string) (domain.Report, error) {
	return NewTeamStatsService(r.newClient(apiKey), r.opts...).ComputeTeamStatistics(ctx, teamID)
}

// NewFaceitRunner arma el Runner real contra la Data API de FACEIT según la config.
func NewFaceitRunner(cfg config.Config) *Runner {
	return NewRunner(func(apiKey string) FaceitAPI {
		return faceit.New(apiKey,
			faceit.WithBaseURL(cfg.FaceitBaseURL),
			faceit.WithGame(cfg.FaceitGame),
		)
	}, WithWindow(cfg.HistoryWindow()))
}
