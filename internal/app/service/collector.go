package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

const HistoryPageSize = 100

// matchSet guarda matches únicos por id en orden de llegada; el primero gana.
type matchSet struct {
	byID  map[string]domain.RawMatch
	order []string
}

func newMatchSet() *matchSet {
	return &matchSet{byID: map[string]domain.RawMatch{}}
}

func (ms *matchSet) Add(m domain.RawMatch) bool {
	if _, ok := ms.byID[m.ID]; ok {
		return false
	}
	ms.byID[m.ID] = m
	ms.order = append(ms.order, m.ID)
	return true
}

func (ms *matchSet) Has(id string) bool {
	_, ok := ms.byID[id]
	return ok
}

func (ms *matchSet) Get(id string) domain.RawMatch { return ms.byID[id] }

func (ms *matchSet) Len() int { return len(ms.order) }

func (ms *matchSet) All() []domain.RawMatch {
	out := make([]domain.RawMatch, 0, len(ms.order))
	for _, id := range ms.order {
		out = append(out, ms.byID[id])
	}
	return out
}

func (s *TeamStatsService) collectHistory(ctx context.Context, roster []domain.Player, cutoff time.Time) *matchSet {
	set := newMatchSet()
	for _, p := range roster {
		added := s.collectPlayer(ctx, p, cutoff, set)
		s.log.Debug("history collected", slog.String("player", p.Nickname), slog.Int("new_matches", added))
	}
	return set
}

// collectPlayer pagina el historial asumiendo orden descendente por fecha.
// Corta en el primer match anterior al cutoff, en una página vacía o al llegar al final reportado.
func (s *TeamStatsService) collectPlayer(ctx context.Context, p domain.Player, cutoff time.Time, set *matchSet) int {
	added := 0
	for offset := 0; ; offset += HistoryPageSize {
		page, err := s.fc.GetPlayerHistory(ctx, p.ID, offset, HistoryPageSize)
		if err != nil {
			s.log.Warn("history page failed, skipping rest of player",
				slog.String("player", p.Nickname), slog.Int("offset", offset), logging.ErrAttr(err))
			return added
		}
		if len(page.Items) == 0 {
			return added
		}
		for _, m := range page.Items {
			if m.FinishedAt == 0 {
				// sin terminar todavía
				continue
			}
			if m.FinishedAt < cutoff.Unix() {
				return added
			}
			if set.Add(m) {
				added++
			}
		}
		next := offset + HistoryPageSize
		if len(page.Items) < HistoryPageSize || (page.End > 0 && page.End < next) {
			return added
		}
	}
}
