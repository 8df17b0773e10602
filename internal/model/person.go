// Package model declares the request payloads and persisted entities of
// the person service.
package model

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/deppfellow/person-service/internal/validation"
	"github.com/oklog/ulid/v2"
)

// AddPersonRequest is the body of a create-person request.
//
// The wire uses camelCase names; validation errors are keyed by them too.
type AddPersonRequest struct {
	FirstName string `json:"firstName" validate:"min=1"`
	LastName  string `json:"lastName" validate:"min=1"`
	Age       int    `json:"age" validate:"min=1"`
}

// Validate runs the declared field constraints. All violations are
// returned together.
func (r *AddPersonRequest) Validate() error {
	return validation.Struct(r)
}

// Person is the persisted entity. Responses carry it with snake_case
// names; the store uses the wire names plus the id.
type Person struct {
	ID        string `json:"id" dynamodbav:"id" redis:"id"`
	FirstName string `json:"first_name" dynamodbav:"firstName" redis:"firstName"`
	LastName  string `json:"last_name" dynamodbav:"lastName" redis:"lastName"`
	Age       int    `json:"age" dynamodbav:"age" redis:"age"`
}

// NewPerson builds the record for a validated request under a fresh ULID.
func NewPerson(req *AddPersonRequest) *Person {
	return &Person{
		ID:        NewID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	}
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a new ULID string. IDs generated in the same millisecond
// still sort in creation order thanks to the monotonic entropy source.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
