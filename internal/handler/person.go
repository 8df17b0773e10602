package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/person-service/internal/model"
	"github.com/deppfellow/person-service/internal/server"
	"github.com/deppfellow/person-service/internal/service"
)

// PersonHandler serves the person endpoints.
type PersonHandler struct {
	Handler
	personService *service.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// AddPersonResponse is the data of a successful add: {"person": {...}}.
type AddPersonResponse struct {
	Person *model.Person `json:"person"`
}

// AddPerson returns the add-person endpoint:
// decode -> validate -> construct -> persist -> respond.
func (h *PersonHandler) AddPerson() Endpoint {
	return Handle("add_person", h.addPerson, http.StatusOK, func() *model.AddPersonRequest {
		return &model.AddPersonRequest{}
	})
}

func (h *PersonHandler) addPerson(ctx context.Context, req *model.AddPersonRequest) (*AddPersonResponse, error) {
	person, err := h.personService.AddPerson(ctx, req)
	if err != nil {
		return nil, err
	}

	return &AddPersonResponse{Person: person}, nil
}
