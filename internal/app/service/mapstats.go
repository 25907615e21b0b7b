package service

import (
	"math"
	"sort"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

// aggregateMapStats agrupa por mapa (sin "Unknown"), ordena por partidas desc, empates en orden de aparición.
func aggregateMapStats(series []domain.Series) []domain.MapStat {
	idx := map[string]int{}
	out := []domain.MapStat{}
	for _, sr := range series {
		for _, m := range sr.Matches {
			if m.Map == domain.UnknownMap {
				continue
			}
			i, ok := idx[m.Map]
			if !ok {
				out = append(out, domain.MapStat{Map: m.Map})
				i = len(out) - 1
				idx[m.Map] = i
			}
			st := &out[i]
			st.TotalMatches++
			switch m.Result {
			case domain.ResultWin:
				st.Wins++
			case domain.ResultLoss:
				st.Losses++
			}
			st.WinRate = winRate(st.Wins, st.TotalMatches)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMatches > out[j].TotalMatches })
	return out
}

func winRate(wins, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(total) * 100))
}
