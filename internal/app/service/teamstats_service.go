package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/faceit"
	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

const DefaultWindow = 90 * 24 * time.Hour

type Option func(*TeamStatsService)

func WithWindow(d time.Duration) Option {
	return func(s *TeamStatsService) {
		if d > 0 {
			s.window = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TeamStatsService) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *TeamStatsService) { s.log = l }
}

// TeamStatsService corre el pipeline completo para un equipo. Sin estado entre invocaciones.
type TeamStatsService struct {
	fc     FaceitAPI
	window time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewTeamStatsService(fc FaceitAPI, opts ...Option) *TeamStatsService {
	s := &TeamStatsService{
		fc:     fc,
		window: DefaultWindow,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *TeamStatsService) ComputeTeamStatistics(ctx context.Context, teamID string) (domain.Report, error) {
	now := s.now().UTC()
	cutoff := now.Add(-s.window)

	team, err := s.fc.GetTeam(ctx, teamID)
	if err != nil {
		return domain.Report{}, teamLookupError(err)
	}
	r := newRoster(team.Members)

	matches := s.collectHistory(ctx, team.Members, cutoff)
	series := s.reconstructSeries(ctx, matches, r)
	kept := filterTeamSeries(series, r)
	stats := aggregateMapStats(kept)

	diag := domain.Diagnostics{
		AllMatchesFound: matches.Len(),
		SeriesFound:     len(series),
		TeamSeriesFound: len(kept),
	}
	s.log.Info("team stats computed",
		slog.String("team", team.ID),
		slog.Int("matches", diag.AllMatchesFound),
		slog.Int("series", diag.SeriesFound),
		slog.Int("team_series", diag.TeamSeriesFound))

	return composeReport(reportInput{
		team:   team,
		roster: r,
		cutoff: cutoff,
		now:    now,
		kept:   kept,
		stats:  stats,
		diag:   diag,
	}), nil
}

func teamLookupError(err error) *domain.ServiceError {
	var apiErr *faceit.APIError
	switch {
	case errors.As(err, &apiErr):
		return &domain.ServiceError{
			Status:  apiErr.Status,
			Message: fmt.Sprintf("FACEIT API error: %d %s", apiErr.Status, http.StatusText(apiErr.Status)),
			Err:     err,
		}
	case errors.Is(err, faceit.ErrNotFound):
		return &domain.ServiceError{
			Status:  http.StatusNotFound,
			Message: fmt.Sprintf("FACEIT API error: %d %s", http.StatusNotFound, http.StatusText(http.StatusNotFound)),
			Err:     err,
		}
	default:
		return &domain.ServiceError{
			Status:  http.StatusBadGateway,
			Message: "FACEIT API error: " + err.Error(),
			Err:     err,
		}
	}
}
