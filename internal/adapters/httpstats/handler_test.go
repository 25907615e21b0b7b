package httpstats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	rep    domain.Report
	err    error
	teamID string
	apiKey string
	calls  int
}

func (s *stubRunner) Run(_ context.Context, teamID, apiKey string) (domain.Report, error) {
	s.calls++
	s.teamID, s.apiKey = teamID, apiKey
	return s.rep, s.err
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	return out["error"]
}

func TestHandleValidation(t *testing.T) {
	run := &stubRunner{}
	cases := []struct {
		name   string
		req    Request
		status int
		msg    string
	}{
		{"method", Request{Method: http.MethodPost, TeamID: "t", APIKey: "k"}, http.StatusMethodNotAllowed, "Method not allowed"},
		{"team id", Request{Method: http.MethodGet, TeamID: "  ", APIKey: "k"}, http.StatusBadRequest, "teamId is required"},
		{"api key", Request{Method: http.MethodGet, TeamID: "t"}, http.StatusInternalServerError, "FACEIT API key not configured"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Handle(context.Background(), run, tc.req)
			require.Equal(t, tc.status, res.Status)
			require.Equal(t, tc.msg, decodeError(t, res.Body))
			require.Equal(t, "*", res.Headers["Access-Control-Allow-Origin"])
		})
	}
	require.Zero(t, run.calls)
}

func TestHandleOptions(t *testing.T) {
	res := Handle(context.Background(), &stubRunner{}, Request{Method: http.MethodOptions})
	require.Equal(t, http.StatusOK, res.Status)
	require.Empty(t, res.Body)
	require.Equal(t, "GET, OPTIONS", res.Headers["Access-Control-Allow-Methods"])
}

func TestHandleServiceError(t *testing.T) {
	run := &stubRunner{err: &domain.ServiceError{Status: http.StatusNotFound, Message: "FACEIT API error: 404 Not Found"}}
	res := Handle(context.Background(), run, Request{Method: http.MethodGet, TeamID: "t", APIKey: "k"})
	require.Equal(t, http.StatusNotFound, res.Status)
	require.Equal(t, "FACEIT API error: 404 Not Found", decodeError(t, res.Body))

	run.err = errors.New("kaput")
	res = Handle(context.Background(), run, Request{Method: http.MethodGet, TeamID: "t", APIKey: "k"})
	require.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestServerReturnsReport(t *testing.T) {
	run := &stubRunner{rep: domain.Report{
		TeamID:        "team-1",
		TeamName:      "Los Pibes",
		MapStatistics: []domain.MapStat{{Map: "de_dust2", TotalMatches: 3, Wins: 2, Losses: 1, WinRate: 67}},
	}}
	srv := httptest.NewServer(New("secret", run))
	t.Cleanup(srv.Close)

	res, err := http.Get(srv.URL + "/api/team-stats?teamId=team-1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	var rep domain.Report
	require.NoError(t, json.NewDecoder(res.Body).Decode(&rep))
	require.Equal(t, "Los Pibes", rep.TeamName)
	require.Equal(t, 67, rep.MapStatistics[0].WinRate)
	require.Equal(t, "team-1", run.teamID)
	require.Equal(t, "secret", run.apiKey)
}
