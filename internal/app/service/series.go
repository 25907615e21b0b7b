package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

var reMapToken = regexp.MustCompile(`de_[A-Za-z0-9_]+`)

// seriesBuilder arma las series de una invocación; cada match queda en una sola serie.
type seriesBuilder struct {
	byID   map[string]*domain.Series
	order  []string
	placed map[string]string // matchID -> seriesID
}

func newSeriesBuilder() *seriesBuilder {
	return &seriesBuilder{byID: map[string]*domain.Series{}, placed: map[string]string{}}
}

func (b *seriesBuilder) Placed(matchID string) bool {
	_, ok := b.placed[matchID]
	return ok
}

func (b *seriesBuilder) Has(seriesID string) bool {
	_, ok := b.byID[seriesID]
	return ok
}

func (b *seriesBuilder) Add(sr domain.Series) {
	if b.Has(sr.ID) {
		for _, m := range sr.Matches {
			b.Append(sr.ID, m)
		}
		return
	}
	b.byID[sr.ID] = &sr
	b.order = append(b.order, sr.ID)
	for _, m := range sr.Matches {
		b.placed[m.ID] = sr.ID
	}
}

func (b *seriesBuilder) AddStandalone(m domain.MatchSummary) {
	b.Add(domain.Series{
		ID:         m.ID,
		Date:       m.Date,
		FinishedAt: m.FinishedAt,
		Matches:    []domain.MatchSummary{m},
	})
}

// Append suma un match a una serie ya construida que no lo había declarado.
func (b *seriesBuilder) Append(seriesID string, m domain.MatchSummary) {
	if b.Placed(m.ID) {
		return
	}
	sr := b.byID[seriesID]
	sr.Matches = append(sr.Matches, m)
	sortChronological(sr.Matches)
	if m.FinishedAt > sr.FinishedAt {
		sr.FinishedAt = m.FinishedAt
		sr.Date = m.Date
	}
	b.placed[m.ID] = seriesID
}

func (b *seriesBuilder) Series() []domain.Series {
	out := make([]domain.Series, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.byID[id])
	}
	return out
}

func (s *TeamStatsService) reconstructSeries(ctx context.Context, set *matchSet, r roster) []domain.Series {
	b := newSeriesBuilder()
	for _, raw := range set.All() {
		if b.Placed(raw.ID) {
			continue
		}
		detail, err := s.fc.GetMatch(ctx, raw.ID)
		if err != nil {
			s.log.Warn("match detail failed, using standalone", slog.String("match", raw.ID), logging.ErrAttr(err))
			b.AddStandalone(summarize(raw, r))
			continue
		}
		m := mergeDetail(raw, *detail)
		parentID := m.ParentMatchID
		switch {
		case parentID == "":
			b.AddStandalone(summarize(m, r))
		case b.Has(parentID):
			b.Append(parentID, summarize(m, r))
		default:
			sr, err := s.buildSeries(ctx, parentID, m, set, b, r)
			if err != nil {
				s.log.Warn("series lookup failed, using standalone",
					slog.String("match", m.ID), slog.String("series", parentID), logging.ErrAttr(err))
				b.AddStandalone(summarize(m, r))
				continue
			}
			b.Add(sr)
		}
	}
	return b.Series()
}

// buildSeries lee el registro de la serie y resuelve cada partida declarada que conocemos localmente.
func (s *TeamStatsService) buildSeries(ctx context.Context, seriesID string, first domain.RawMatch, set *matchSet, b *seriesBuilder, r roster) (domain.Series, error) {
	parent, err := s.fc.GetMatch(ctx, seriesID)
	if err != nil {
		return domain.Series{}, fmt.Errorf("series %s: %w", seriesID, err)
	}

	matches := []domain.MatchSummary{summarize(first, r)}
	for _, id := range parent.MatchIDs {
		if id == first.ID || !set.Has(id) || b.Placed(id) {
			continue
		}
		d, err := s.fc.GetMatch(ctx, id)
		if err != nil {
			// queda sin ubicar; se procesa solo más adelante
			s.log.Warn("series member detail failed", slog.String("match", id), slog.String("series", seriesID), logging.ErrAttr(err))
			continue
		}
		matches = append(matches, summarize(mergeDetail(set.Get(id), *d), r))
	}
	sortChronological(matches)

	sr := domain.Series{ID: seriesID, Matches: matches}
	if parent.FinishedAt > 0 {
		sr.FinishedAt = parent.FinishedAt
		sr.Date = parent.Date()
	} else {
		last := matches[len(matches)-1]
		sr.FinishedAt = last.FinishedAt
		sr.Date = last.Date
	}
	return sr, nil
}

func sortChronological(ms []domain.MatchSummary) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].FinishedAt < ms[j].FinishedAt })
}

// mergeDetail completa el detalle con lo que ya trae el item del historial.
func mergeDetail(raw, detail domain.RawMatch) domain.RawMatch {
	if detail.ID == "" {
		detail.ID = raw.ID
	}
	if detail.FinishedAt == 0 {
		detail.FinishedAt = raw.FinishedAt
	}
	if len(detail.Teams) == 0 {
		detail.Teams = raw.Teams
	}
	if detail.Results == nil || detail.Results.Winner == "" {
		detail.Results = raw.Results
	}
	if detail.Voting == nil {
		detail.Voting = raw.Voting
	}
	return detail
}

func summarize(m domain.RawMatch, r roster) domain.MatchSummary {
	ours := ourFaction(m.Teams, r)
	winner := domain.UnknownResult
	if m.Results != nil && m.Results.Winner != "" {
		winner = m.Results.Winner
	}
	return domain.MatchSummary{
		ID:         m.ID,
		Date:       m.Date(),
		Map:        resolveMapName(m.Voting),
		Result:     teamResult(winner, ours),
		Winner:     winner,
		Score:      formatScore(m.Results, ours),
		FinishedAt: m.FinishedAt,
		Nicknames:  matchNicknames(m.Teams),
	}
}

// resolveMapName: pick del voto -> nombre de la entidad -> id de la entidad (token de_*) -> "Unknown".
func resolveMapName(v *domain.Voting) string {
	if v == nil || v.Map == nil {
		return domain.UnknownMap
	}
	if len(v.Map.Pick) > 0 && strings.TrimSpace(v.Map.Pick[0]) != "" {
		return v.Map.Pick[0]
	}
	if len(v.Map.Entities) == 0 {
		return domain.UnknownMap
	}
	e := v.Map.Entities[0]
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	for _, id := range []string{e.GameMapID, e.GUID, e.ClassName} {
		if id == "" {
			continue
		}
		if tok := reMapToken.FindString(id); tok != "" {
			return tok
		}
		return id
	}
	return domain.UnknownMap
}

func factionKeys(teams map[string]domain.Faction) []string {
	keys := make([]string, 0, len(teams))
	for k := range teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func matchNicknames(teams map[string]domain.Faction) []string {
	var out []string
	for _, k := range factionKeys(teams) {
		for _, p := range teams[k].Members() {
			out = append(out, p.Nickname)
		}
	}
	return out
}

// ourFaction es la facción con más nicks del roster; "" si no hay ninguno o hay empate.
func ourFaction(teams map[string]domain.Faction, r roster) string {
	best, bestN, tie := "", 0, false
	for _, k := range factionKeys(teams) {
		n := 0
		for _, p := range teams[k].Members() {
			if r.Has(p.Nickname) {
				n++
			}
		}
		switch {
		case n > bestN:
			best, bestN, tie = k, n, false
		case n == bestN && n > 0:
			tie = true
		}
	}
	if tie {
		return ""
	}
	return best
}

func teamResult(winner, ours string) string {
	if winner == domain.UnknownResult || ours == "" {
		return domain.UnknownResult
	}
	if winner == ours {
		return domain.ResultWin
	}
	return domain.ResultLoss
}

func formatScore(res *domain.Results, ours string) string {
	if res == nil || len(res.Score) == 0 {
		return ""
	}
	keys := make([]string, 0, len(res.Score))
	for k := range res.Score {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if ours != "" {
		if _, ok := res.Score[ours]; ok && len(keys) == 2 {
			other := keys[0]
			if other == ours {
				other = keys[1]
			}
			return fmt.Sprintf("%d-%d", res.Score[ours], res.Score[other])
		}
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprint(res.Score[k]))
	}
	return strings.Join(parts, "-")
}
