package repository

import (
	"fmt"

	"github.com/deppfellow/person-service/internal/config"
	"github.com/deppfellow/person-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Person PersonRepository
}

// NewRepositories picks the person repository for the configured driver,
// backed by the store client the server container already opened.
func NewRepositories(s *server.Server) (*Repositories, error) {
	storeCfg := s.Config.Store

	var person PersonRepository
	switch storeCfg.Driver {
	case config.StoreDriverDynamoDB:
		if s.DynamoDB == nil {
			return nil, fmt.Errorf("dynamodb client not initialized")
		}
		person = NewDynamoDBPersonRepository(s.DynamoDB, storeCfg.TableName)
	case config.StoreDriverRedis:
		if s.Redis == nil {
			return nil, fmt.Errorf("redis client not initialized")
		}
		person = NewRedisPersonRepository(s.Redis, storeCfg.TableName)
	default:
		return nil, fmt.Errorf("unknown store driver %q", storeCfg.Driver)
	}

	return &Repositories{
		Person: person,
	}, nil
}
