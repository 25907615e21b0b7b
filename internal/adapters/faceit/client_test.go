package faceit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New("secret", WithHTTPClient(srv.Client()), WithBaseURL(srv.URL), WithThrottle(NoThrottle()))
}

func TestGetTeam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, "/teams/team-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"team_id":"team-1","name":"Los Pibes","nickname":"lp","game":"cs2",
			"members":[{"user_id":"p1","nickname":"alpha"},{"user_id":"p2","nickname":"bravo"}]}`))
	})

	team, err := c.GetTeam(context.Background(), "team-1")
	require.NoError(t, err)
	require.Equal(t, "Los Pibes", team.Name)
	require.Len(t, team.Members, 2)
	require.Equal(t, "bravo", team.Members[1].Nickname)
	require.Equal(t, "p1", team.Members[0].ID)
}

func TestGetPlayerHistoryQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/players/p1/history", r.URL.Path)
		require.Equal(t, "cs2", r.URL.Query().Get("game"))
		require.Equal(t, "200", r.URL.Query().Get("offset"))
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[{"match_id":"m1","finished_at":1700000000,
			"teams":{"faction1":{"players":[{"player_id":"p1","nickname":"alpha"}]}},
			"results":{"winner":"faction1","score":{"faction1":1,"faction2":0}}}],"start":200,"end":201}`))
	})

	page, err := c.GetPlayerHistory(context.Background(), "p1", 200, 100)
	require.NoError(t, err)
	require.Equal(t, 201, page.End)
	require.Len(t, page.Items, 1)
	require.Equal(t, "faction1", page.Items[0].Results.Winner)
	require.Equal(t, "alpha", page.Items[0].Teams["faction1"].Members()[0].Nickname)
}

func TestGetMatchVotingAndParent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"match_id":"m2","parent_match_id":"s1","finished_at":1700000100,
			"voting":{"map":{"pick":["de_mirage"],"entities":[{"name":"Mirage","game_map_id":"de_mirage"}]}}}`))
	})

	m, err := c.GetMatch(context.Background(), "m2")
	require.NoError(t, err)
	require.Equal(t, "s1", m.ParentMatchID)
	require.NotNil(t, m.Voting)
	require.Equal(t, []string{"de_mirage"}, m.Voting.Map.Pick)
}

func TestStatusErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/matches/missing" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GetMatch(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetTeam(context.Background(), "t")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Equal(t, "boom", apiErr.Body)
}

func TestTooManyRequestsIsNotRetried(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetMatch(context.Background(), "m1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	require.Equal(t, 1, calls)
}
