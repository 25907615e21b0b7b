package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/faceit-map-stats/internal/adapters/httpstats"
	"github.com/jose-valero/faceit-map-stats/internal/app/service"
	"github.com/jose-valero/faceit-map-stats/internal/infra/config"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

var (
	cfg    = config.Load()
	runner = service.NewFaceitRunner(cfg)
)

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := req.RequestContext.HTTP.Method
	slog.Info("request",
		slog.String("path", req.RawPath),
		slog.String("method", method),
		slog.String("ip", req.RequestContext.HTTP.SourceIP))

	res := httpstats.Handle(ctx, runner, httpstats.Request{
		Method: method,
		TeamID: req.QueryStringParameters["teamId"],
		APIKey: cfg.FaceitAPIKey,
	})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: res.Status,
		Headers:    res.Headers,
		Body:       string(res.Body),
	}, nil
}

func main() {
	closer := logging.MustCreateLogger(logging.Level(cfg.LogLevel), "")
	defer closer()
	lambda.Start(handler)
}
