package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/faceit"
	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

var (
	testNow    = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	testCutoff = testNow.Add(-DefaultWindow)
	errBoom    = errors.New("boom")
)

// fakeFaceit responde desde memoria y registra las llamadas.
type fakeFaceit struct {
	team    *domain.Team
	teamErr error

	pages     map[string][]domain.HistoryPage
	failAtPag map[string]int

	matches  map[string]domain.RawMatch
	matchErr map[string]error

	historyCalls map[string]int
	matchCalls   []string
}

func newFakeFaceit() *fakeFaceit {
	return &fakeFaceit{
		team:         testTeam(),
		pages:        map[string][]domain.HistoryPage{},
		failAtPag:    map[string]int{},
		matches:      map[string]domain.RawMatch{},
		matchErr:     map[string]error{},
		historyCalls: map[string]int{},
	}
}

func (f *fakeFaceit) GetTeam(_ context.Context, _ string) (*domain.Team, error) {
	if f.teamErr != nil {
		return nil, f.teamErr
	}
	return f.team, nil
}

func (f *fakeFaceit) GetPlayerHistory(_ context.Context, playerID string, offset, limit int) (*domain.HistoryPage, error) {
	f.historyCalls[playerID]++
	idx := offset / limit
	if at, ok := f.failAtPag[playerID]; ok && idx >= at {
		return nil, errBoom
	}
	pages := f.pages[playerID]
	if idx >= len(pages) {
		return &domain.HistoryPage{End: offset}, nil
	}
	p := pages[idx]
	return &p, nil
}

func (f *fakeFaceit) GetMatch(_ context.Context, matchID string) (*domain.RawMatch, error) {
	f.matchCalls = append(f.matchCalls, matchID)
	if err := f.matchErr[matchID]; err != nil {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, faceit.ErrNotFound
	}
	return &m, nil
}

func (f *fakeFaceit) addMatch(m domain.RawMatch) {
	f.matches[m.ID] = m
}

var rosterNicks = []string{"alpha", "bravo", "charlie", "delta", "echo"}

func testTeam() *domain.Team {
	t := &domain.Team{ID: "team-1", Name: "Los Pibes", Nickname: "lp", Game: "cs2"}
	for i, n := range rosterNicks {
		t.Members = append(t.Members, domain.Player{ID: fmt.Sprintf("p%d", i+1), Nickname: n})
	}
	return t
}

func daysAgo(d int) int64 {
	return testNow.Add(-time.Duration(d) * 24 * time.Hour).Unix()
}

// rawMatch arma un match con "ours" en faction1 y rivales genéricos en faction2.
func rawMatch(id string, finishedAt int64, winner, mapName string, ours ...string) domain.RawMatch {
	f1 := domain.Faction{FactionID: "faction1"}
	for _, n := range ours {
		f1.Roster = append(f1.Roster, domain.MatchPlayer{PlayerID: "id-" + n, Nickname: n})
	}
	f2 := domain.Faction{FactionID: "faction2"}
	for i := 0; i < 5; i++ {
		f2.Roster = append(f2.Roster, domain.MatchPlayer{PlayerID: fmt.Sprintf("r%d", i), Nickname: fmt.Sprintf("rival%d", i)})
	}
	m := domain.RawMatch{
		ID:         id,
		FinishedAt: finishedAt,
		Teams:      map[string]domain.Faction{"faction1": f1, "faction2": f2},
		Results:    &domain.Results{Winner: winner, Score: map[string]int{"faction1": 1, "faction2": 0}},
	}
	if winner == "faction2" {
		m.Results.Score = map[string]int{"faction1": 0, "faction2": 1}
	}
	if mapName != "" {
		m.Voting = &domain.Voting{Map: &domain.MapVoting{Pick: []string{mapName}}}
	}
	return m
}

func page(items ...domain.RawMatch) domain.HistoryPage {
	return domain.HistoryPage{Items: items, End: len(items)}
}

func newTestService(fc FaceitAPI) *TeamStatsService {
	return NewTeamStatsService(fc, WithClock(func() time.Time { return testNow }))
}
