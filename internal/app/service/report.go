package service

import (
	"sort"
	"time"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

const RecentSeriesLimit = 10

const (
	SeriesWin  = "Win"
	SeriesLoss = "Loss"
	SeriesDraw = "Draw"
)

type reportInput struct {
	team   *domain.Team
	roster roster
	cutoff time.Time
	now    time.Time
	kept   []domain.Series
	stats  []domain.MapStat
	diag   domain.Diagnostics
}

func composeReport(in reportInput) domain.Report {
	total := 0
	for _, sr := range in.kept {
		total += len(sr.Matches)
	}
	players := append([]string{}, in.roster.names...)
	return domain.Report{
		TeamID:        in.team.ID,
		TeamName:      in.team.Name,
		TeamNickname:  in.team.Nickname,
		Avatar:        in.team.Avatar,
		Game:          in.team.Game,
		Period:        domain.Period{From: domain.ISODate(in.cutoff), To: domain.ISODate(in.now)},
		Players:       players,
		TotalSeries:   len(in.kept),
		TotalMatches:  total,
		MapStatistics: in.stats,
		RecentSeries:  recentSeries(in.kept, RecentSeriesLimit),
		Diagnostics:   in.diag,
	}
}

// recentSeries: las más nuevas primero, recortadas a limit.
func recentSeries(series []domain.Series, limit int) []domain.SeriesView {
	sorted := append([]domain.Series{}, series...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FinishedAt > sorted[j].FinishedAt })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]domain.SeriesView, 0, len(sorted))
	for _, sr := range sorted {
		maps := make([]domain.MapResult, 0, len(sr.Matches))
		for _, m := range sr.Matches {
			maps = append(maps, domain.MapResult{Map: m.Map, Result: m.Result, Score: m.Score})
		}
		out = append(out, domain.SeriesView{
			ID:              sr.ID,
			Date:            sr.Date,
			Maps:            maps,
			SeriesResult:    seriesResult(sr.Matches),
			OurPlayers:      sr.OurPlayers,
			TotalOurPlayers: sr.TotalOurPlayers,
		})
	}
	return out
}

func seriesResult(ms []domain.MatchSummary) string {
	wins, losses := 0, 0
	for _, m := range ms {
		switch m.Result {
		case domain.ResultWin:
			wins++
		case domain.ResultLoss:
			losses++
		}
	}
	switch {
	case wins > losses:
		return SeriesWin
	case losses > wins:
		return SeriesLoss
	default:
		return SeriesDraw
	}
}
