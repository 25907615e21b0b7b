package httpstats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

// StatsRunner lo implementa service.Runner.
type StatsRunner interface {
	Run(ctx context.Context, teamID, apiKey string) (domain.Report, error)
}

// Request es lo mínimo que necesitamos de cualquier transporte (net/http o API Gateway).
type Request struct {
	Method string
	TeamID string
	APIKey string
}

type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
		"Content-Type":                 "application/json",
	}
}

// Handle valida la request, corre el pipeline y serializa el resultado o el error.
func Handle(ctx context.Context, run StatsRunner, req Request) Response {
	switch req.Method {
	case http.MethodOptions:
		return Response{Status: http.StatusOK, Headers: corsHeaders()}
	case http.MethodGet:
	default:
		return errorResponse(http.StatusMethodNotAllowed, "Method not allowed")
	}

	teamID := strings.TrimSpace(req.TeamID)
	if teamID == "" {
		return errorResponse(http.StatusBadRequest, "teamId is required")
	}
	if strings.TrimSpace(req.APIKey) == "" {
		slog.Error("FACEIT API key missing")
		return errorResponse(http.StatusInternalServerError, "FACEIT API key not configured")
	}

	rep, err := run.Run(ctx, teamID, req.APIKey)
	if err != nil {
		slog.Error("team stats failed", slog.String("team", teamID), logging.ErrAttr(err))
		var svcErr *domain.ServiceError
		if errors.As(err, &svcErr) {
			status := svcErr.Status
			if status < 400 || status > 599 {
				status = http.StatusInternalServerError
			}
			return errorResponse(status, svcErr.Message)
		}
		return errorResponse(http.StatusInternalServerError, "Internal server error")
	}

	body, err := json.Marshal(rep)
	if err != nil {
		slog.Error("encode report", logging.ErrAttr(err))
		return errorResponse(http.StatusInternalServerError, "Internal server error")
	}
	return Response{Status: http.StatusOK, Headers: corsHeaders(), Body: body}
}

func errorResponse(status int, msg string) Response {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return Response{Status: status, Headers: corsHeaders(), Body: body}
}
