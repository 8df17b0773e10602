// Package repository handles all interactions with the key-value store.
//
// It contains the store-specific write and ping calls, abstracting the
// DynamoDB and Redis clients away from the service layer
package repository

import (
	"context"

	"github.com/deppfellow/person-service/internal/model"
)

// PersonRepository persists persons. Implementations must be safe for
// concurrent use: one instance serves every request.
type PersonRepository interface {
	// PutPerson writes the whole record keyed by person.ID in a single call.
	PutPerson(ctx context.Context, person *model.Person) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
