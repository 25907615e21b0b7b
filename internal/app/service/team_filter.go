package service

import "github.com/jose-valero/faceit-map-stats/internal/domain"

// MinRosterPlayers: una serie cuenta si aparecen al menos 5 nicks del roster.
// No se verifica que estén en el mismo lado; es presencia del roster, no alineación.
const MinRosterPlayers = 5

// roster es el set de nicknames del equipo (comparación exacta, case-sensitive).
type roster struct {
	nicks map[string]struct{}
	names []string
}

func newRoster(players []domain.Player) roster {
	r := roster{nicks: make(map[string]struct{}, len(players))}
	for _, p := range players {
		if _, dup := r.nicks[p.Nickname]; dup {
			continue
		}
		r.nicks[p.Nickname] = struct{}{}
		r.names = append(r.names, p.Nickname)
	}
	return r
}

func (r roster) Has(nick string) bool {
	_, ok := r.nicks[nick]
	return ok
}

// presentIn devuelve los nicks del roster vistos en la serie, sin repetir y en orden de aparición.
func (r roster) presentIn(matches []domain.MatchSummary) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, m := range matches {
		for _, n := range m.Nicknames {
			if !r.Has(n) {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

func filterTeamSeries(series []domain.Series, r roster) []domain.Series {
	kept := make([]domain.Series, 0, len(series))
	for _, sr := range series {
		ours := r.presentIn(sr.Matches)
		if len(ours) < MinRosterPlayers {
			continue
		}
		sr.OurPlayers = ours
		sr.TotalOurPlayers = len(ours)
		kept = append(kept, sr)
	}
	return kept
}
