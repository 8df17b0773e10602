// Package repotest provides an in-memory PersonRepository for tests.
package repotest

import (
	"context"
	"sync"

	"github.com/deppfellow/person-service/internal/model"
)

// FakePersonRepository records every PutPerson call. PutErr and PingErr
// are returned when set.
type FakePersonRepository struct {
	PutErr  error
	PingErr error

	mu      sync.Mutex
	puts    []model.Person
	persons map[string]model.Person
}

// NewFakePersonRepository returns an empty fake.
func NewFakePersonRepository() *FakePersonRepository {
	return &FakePersonRepository{persons: make(map[string]model.Person)}
}

func (f *FakePersonRepository) PutPerson(_ context.Context, person *model.Person) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.puts = append(f.puts, *person)
	if f.PutErr != nil {
		return f.PutErr
	}

	f.persons[person.ID] = *person
	return nil
}

func (f *FakePersonRepository) Ping(_ context.Context) error {
	return f.PingErr
}

// Puts returns every attempted write, failed ones included.
func (f *FakePersonRepository) Puts() []model.Person {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]model.Person(nil), f.puts...)
}

// Get returns a stored person.
func (f *FakePersonRepository) Get(id string) (model.Person, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	person, ok := f.persons[id]
	return person, ok
}
