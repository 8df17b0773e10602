package handler

import (
	"github.com/deppfellow/person-service/internal/server"
	"github.com/deppfellow/person-service/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health *HealthHandler // Health serves the store health endpoint.
	Person *PersonHandler // Person serves the person endpoints.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s, services.Person),
		Person: NewPersonHandler(s, services.Person),
	}
}
