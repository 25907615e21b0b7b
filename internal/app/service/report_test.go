package service

import (
	"fmt"
	"testing"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSeriesResult(t *testing.T) {
	require.Equal(t, SeriesWin, seriesResult([]domain.MatchSummary{played("a", "win"), played("b", "loss"), played("c", "win")}))
	require.Equal(t, SeriesLoss, seriesResult([]domain.MatchSummary{played("a", "loss")}))
	require.Equal(t, SeriesDraw, seriesResult([]domain.MatchSummary{played("a", "win"), played("b", "loss")}))
	require.Equal(t, SeriesDraw, seriesResult([]domain.MatchSummary{played("a", domain.UnknownResult)}))
}

func TestRecentSeriesNewestFirstAndCapped(t *testing.T) {
	var series []domain.Series
	for i := 0; i < 14; i++ {
		series = append(series, domain.Series{
			ID:         fmt.Sprintf("s%d", i),
			FinishedAt: daysAgo(20 - i),
			Matches:    []domain.MatchSummary{{Map: "de_dust2", Result: domain.ResultWin, Score: "1-0"}},
		})
	}

	views := recentSeries(series, RecentSeriesLimit)

	require.Len(t, views, RecentSeriesLimit)
	require.Equal(t, "s13", views[0].ID)
	require.Equal(t, "s4", views[9].ID)
	require.Equal(t, []domain.MapResult{{Map: "de_dust2", Result: "win", Score: "1-0"}}, views[0].Maps)
	require.Equal(t, SeriesWin, views[0].SeriesResult)
}
