package httpstats

import (
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	apiKey string
	runner StatsRunner
	mux    *http.ServeMux
}

func New(apiKey string, runner StatsRunner) *Server {
	s := &Server{apiKey: apiKey, runner: runner, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/team-stats", s.handleTeamStats)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	res := Handle(r.Context(), s.runner, Request{
		Method: r.Method,
		TeamID: r.URL.Query().Get("teamId"),
		APIKey: s.apiKey,
	})
	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(res.Status)
	if len(res.Body) > 0 {
		_, _ = w.Write(res.Body)
	}
}

// Start bloquea hasta que el server termina. Sin WriteTimeout: un equipo activo puede tardar minutos.
func (s *Server) Start(addr string) error {
	slog.Info("HTTP listening", slog.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
