package service

import (
	"context"

	"github.com/deppfellow/person-service/internal/errs"
	"github.com/deppfellow/person-service/internal/logger"
	"github.com/deppfellow/person-service/internal/model"
	"github.com/deppfellow/person-service/internal/repository"
	"github.com/deppfellow/person-service/internal/server"
)

type PersonService struct {
	server *server.Server
	repo   repository.PersonRepository
}

func NewPersonService(s *server.Server, repo repository.PersonRepository) *PersonService {
	return &PersonService{
		server: s,
		repo:   repo,
	}
}

// AddPerson builds the person for a validated request and writes it once.
// A store failure is not retried; the client only sees the generic message.
func (s *PersonService) AddPerson(ctx context.Context, req *model.AddPersonRequest) (*model.Person, error) {
	person := model.NewPerson(req)

	log := logger.FromContext(ctx).With().Str("person_id", person.ID).Logger()

	if err := s.repo.PutPerson(ctx, person); err != nil {
		log.Error().Err(err).Msg("failed to store person")
		return nil, errs.NewInternalServerError(errs.MessageStorePersonError, err)
	}

	log.Info().Msg("person stored")

	return person, nil
}

// Ping checks the store the service writes to.
func (s *PersonService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
