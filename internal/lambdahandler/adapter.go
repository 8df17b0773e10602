// Package lambdahandler runs handler endpoints behind an API Gateway HTTP
// API (payload format 2.0) on AWS Lambda.
package lambdahandler

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/deppfellow/person-service/internal/errs"
	"github.com/deppfellow/person-service/internal/handler"
	"github.com/deppfellow/person-service/internal/logger"
	"github.com/deppfellow/person-service/internal/response"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Adapter converts API Gateway events into endpoint calls and endpoint
// envelopes back into API Gateway responses.
type Adapter struct {
	logger   *zerolog.Logger
	endpoint handler.Endpoint
}

// NewAdapter builds an Adapter serving endpoint.
func NewAdapter(logger *zerolog.Logger, endpoint handler.Endpoint) *Adapter {
	return &Adapter{
		logger:   logger,
		endpoint: endpoint,
	}
}

// Handle is the Lambda handler function. It never returns an error: every
// failure has already become an envelope with its status code.
func (a *Adapter) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := a.logger.With().
		Str("request_id", req.RequestContext.RequestID).
		Str("method", req.RequestContext.HTTP.Method).
		Str("path", req.RawPath).
		Str("ip", req.RequestContext.HTTP.SourceIP).
		Logger()

	if txn := newrelic.FromContext(ctx); txn != nil {
		requestLogger = logger.WithTraceContext(requestLogger, txn)
		txn.AddAttribute("request.id", req.RequestContext.RequestID)
	}

	ctx = logger.WithContext(ctx, &requestLogger)

	body := []byte(req.Body)
	if req.IsBase64Encoded && req.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			requestLogger.Warn().Err(err).Msg("invalid base64 request body")
			return toAPIGateway(response.APIResponse(http.StatusBadRequest, errs.MessageInvalidPayload)), nil
		}
		body = decoded
	}

	resp := a.endpoint(ctx, body)

	requestLogger.Info().
		Int("status", resp.StatusCode).
		Msg("API")

	return toAPIGateway(resp), nil
}

func toAPIGateway(resp *response.Response) events.APIGatewayV2HTTPResponse {
	headers := make(map[string]string, len(resp.Headers))
	for key, value := range resp.Headers {
		headers[key] = value
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}
}
