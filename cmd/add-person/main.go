// Command add-person is the Lambda function (bootstrap binary) behind the
// POST / route of the person API.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/deppfellow/person-service/internal/config"
	"github.com/deppfellow/person-service/internal/handler"
	"github.com/deppfellow/person-service/internal/lambdahandler"
	"github.com/deppfellow/person-service/internal/logger"
	"github.com/deppfellow/person-service/internal/repository"
	"github.com/deppfellow/person-service/internal/server"
	"github.com/deppfellow/person-service/internal/service"
	"github.com/newrelic/go-agent/v3/integrations/nrlambda"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	// Clients are created once per execution environment and reused by
	// every invocation.
	srv, err := server.New(context.Background(), cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize repositories")
	}

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	adapter := lambdahandler.NewAdapter(&log, handlers.Person.AddPerson())

	if app := loggerService.GetApplication(); app != nil {
		nrlambda.Start(adapter.Handle, app)
		return
	}

	lambda.Start(adapter.Handle)
}
