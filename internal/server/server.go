// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic for the store clients, the HTTP
// server used when running outside Lambda, and graceful shutdown.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - DynamoDB client or Redis client, depending on the store driver
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/deppfellow/person-service/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/person-service/internal/logger"
)

// StorePingTimeout bounds the startup connectivity check.
const StorePingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. Store clients are created once and
// shared by every request; both are safe for concurrent use.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// DynamoDB is set when the store driver is dynamodb.
	DynamoDB *dynamodb.Client

	// Redis is set when the store driver is redis.
	Redis *redis.Client

	httpServer *http.Server
}

// New constructs a Server and opens the client for the configured store.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start,
// and only by the long-running entry point.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		client, err := newDynamoDBClient(ctx, cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize dynamodb client: %w", err)
		}
		server.DynamoDB = client

	case config.StoreDriverRedis:
		server.Redis = newRedisClient(ctx, cfg.Store, logger, loggerService)

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info().
		Str("driver", cfg.Store.Driver).
		Str("table", cfg.Store.TableName).
		Msg("store client initialized")

	return server, nil
}

// newDynamoDBClient loads AWS credentials and region the standard way
// (env, shared config, Lambda role). Region and endpoint from config win.
func newDynamoDBClient(ctx context.Context, storeCfg config.StoreConfig) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if storeCfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(storeCfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if storeCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(storeCfg.Endpoint)
		}
	}), nil
}

// newRedisClient creates the Redis client. Connections are lazy, so a
// failed ping is logged and startup continues; requests will fail with 500
// until Redis is reachable.
func newRedisClient(ctx context.Context, storeCfg config.StoreConfig, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr: storeCfg.RedisAddress,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(ctx, StorePingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("failed to connect to redis, continuing")
	}

	return redisClient
}

// SetupHTTPServer configures the internal net/http server.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
//
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server (if any) and closes the
// store client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
