package logger

import (
	"context"
	"testing"

	"github.com/deppfellow/person-service/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, ls.GetApplication())
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := zerolog.Nop().With().Str("request_id", "abc").Logger()

	ctx := WithContext(context.Background(), &logger)

	assert.Same(t, &logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	logger := zerolog.Nop()

	assert.Equal(t, logger, WithTraceContext(logger, nil))
}
