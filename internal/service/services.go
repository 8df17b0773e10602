// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the store
package service

import (
	"github.com/deppfellow/person-service/internal/repository"
	"github.com/deppfellow/person-service/internal/server"
)

type Services struct {
	Person *PersonService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	personService := NewPersonService(s, repos.Person)

	return &Services{
		Person: personService,
	}, nil
}
