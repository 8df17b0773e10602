package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/person-service/internal/errs"
	"github.com/deppfellow/person-service/internal/middleware"
	"github.com/deppfellow/person-service/internal/response"
	"github.com/deppfellow/person-service/internal/server"
	"github.com/labstack/echo/v4"
)

// storePinger is what the health check needs from the person service.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes an endpoint that load balancers and uptime
// monitors use to verify the service is alive and the store is reachable.
type HealthHandler struct {
	Handler
	store storePinger
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, store storePinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		store:   store,
	}
}

// CheckHealth reports service status and the store check in the envelope.
//
// It returns:
// - 200 OK with the report as data if the store answers
// - 503 Service Unavailable with the report as errors otherwise
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	report := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	healthCfg := h.server.Config.Observability.HealthChecks
	if !healthCfg.Enabled {
		return response.WriteEcho(c, response.APIResponse(http.StatusOK, report))
	}

	timeout := healthCfg.Timeout
	if timeout <= 0 {
		timeout = server.StorePingTimeout
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	storeStart := time.Now()
	storeCheck := map[string]any{
		"driver": h.server.Config.Store.Driver,
	}

	err := h.store.Ping(ctx)
	storeCheck["response_time"] = time.Since(storeStart).String()
	report["checks"] = map[string]any{"store": storeCheck}

	if err != nil {
		storeCheck["status"] = "unhealthy"
		report["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(storeStart)).
			Msg("store health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       "store",
				"operation":        "health_check",
				"error_type":       "store_unhealthy",
				"response_time_ms": time.Since(storeStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		httpErr := errs.NewServiceUnavailableError(report, err)
		return response.WriteEcho(c, response.APIResponse(httpErr.Status, httpErr.Payload()))
	}

	storeCheck["status"] = "healthy"

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return response.WriteEcho(c, response.APIResponse(http.StatusOK, report))
}
