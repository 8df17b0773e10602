package handler

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/deppfellow/person-service/internal/errs"
	"github.com/deppfellow/person-service/internal/logger"
	"github.com/deppfellow/person-service/internal/response"
	"github.com/deppfellow/person-service/internal/server"
	"github.com/deppfellow/person-service/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers so they can reach the server container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a
// validated request payload and returns a response payload or an error.
//
// Req is a POINTER type, e.g. *model.AddPersonRequest.
type HandlerFunc[Req validation.Validatable, Res any] func(ctx context.Context, req Req) (Res, error)

// Endpoint is a transport-neutral endpoint: raw request body in, envelope
// out. It never fails; every error is already turned into an envelope.
// The Echo router and the Lambda adapter both drive endpoints.
type Endpoint func(ctx context.Context, body []byte) *response.Response

// handleRequest is the shared execution pipeline for all endpoints:
//
//   - decode + validation (400 on failure)
//   - handler execution (status from *errs.HTTPError, 500 otherwise)
//   - structured logging with the request-scoped logger
//   - New Relic attributes and error reporting
//   - envelope building
//
// newReq allocates a fresh payload per request, so concurrent requests
// never share one.
func handleRequest[Req validation.Validatable](
	ctx context.Context,
	operation string,
	body []byte,
	newReq func() Req,
	handler func(ctx context.Context, req Req) (any, error),
	status int,
) *response.Response {
	start := time.Now()

	// New Relic transaction is set by nrecho or nrlambda.
	txn := newrelic.FromContext(ctx)
	if txn != nil {
		txn.AddAttribute("handler.name", operation)
	}

	log := logger.FromContext(ctx).With().
		Str("operation", operation).
		Logger()

	log.Info().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	req := newReq()
	if err := validation.DecodeAndValidate(body, req); err != nil {
		validationDuration := time.Since(validationStart)

		log.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return errorResponse(err)
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	log.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(ctx, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		log.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		return errorResponse(err)
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	log.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return response.APIResponse(status, result)
}

// errorResponse turns err into its envelope. Anything that is not an
// *errs.HTTPError is an unexpected failure and answers a generic 500.
func errorResponse(err error) *response.Response {
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = errs.NewInternalServerError("", err)
	}
	return response.APIResponse(httpErr.Status, httpErr.Payload())
}

// Handle wraps a typed handler into an Endpoint with decoding, validation,
// error handling, logging and tracing.
//
// Usage pattern:
//
//	endpoint := handler.Handle("add_person", h.addPerson, http.StatusOK, newReqFn)
func Handle[Req validation.Validatable, Res any](
	operation string,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) Endpoint {
	return func(ctx context.Context, body []byte) *response.Response {
		return handleRequest(ctx, operation, body, newReq, func(ctx context.Context, req Req) (any, error) {
			return handler(ctx, req)
		}, status)
	}
}

// Echo adapts an Endpoint into an echo.HandlerFunc.
func Echo(endpoint Endpoint) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return errs.NewBadRequestError(err.Error())
		}

		return response.WriteEcho(c, endpoint(c.Request().Context(), body))
	}
}
