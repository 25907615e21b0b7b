package service

import (
	"context"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

// Lo implementa internal/adapters/faceit.Client
type FaceitAPI interface {
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	GetPlayerHistory(ctx context.Context, playerID string, offset, limit int) (*domain.HistoryPage, error)
	GetMatch(ctx context.Context, matchID string) (*domain.RawMatch, error)
}

// ClientFactory arma un cliente por invocación con la credencial del caller.
type ClientFactory func(apiKey string) FaceitAPI
