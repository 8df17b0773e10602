package repository

import (
	"context"

	"github.com/deppfellow/person-service/internal/model"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisPersonRepository stores each person as a hash under
// "<namespace>:<id>".
type RedisPersonRepository struct {
	client    redis.UniversalClient
	namespace string
}

// NewRedisPersonRepository builds a repository writing hashes under namespace.
func NewRedisPersonRepository(client redis.UniversalClient, namespace string) *RedisPersonRepository {
	return &RedisPersonRepository{
		client:    client,
		namespace: namespace,
	}
}

// Key returns the hash key a person id is stored under.
func (r *RedisPersonRepository) Key(id string) string {
	return r.namespace + ":" + id
}

// PutPerson writes all four fields with a single HSET.
func (r *RedisPersonRepository) PutPerson(ctx context.Context, person *model.Person) error {
	err := r.client.HSet(ctx, r.Key(person.ID),
		"id", person.ID,
		"firstName", person.FirstName,
		"lastName", person.LastName,
		"age", person.Age,
	).Err()
	if err != nil {
		return errors.Wrapf(err, "hset person %s", person.ID)
	}

	return nil
}

// Ping sends PING to the server.
func (r *RedisPersonRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping redis")
	}
	return nil
}
