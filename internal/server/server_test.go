package server

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/person-service/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.DefaultConfig()
	cfg.Store.Driver = config.StoreDriverRedis
	cfg.Store.TableName = "persons"
	cfg.Store.RedisAddress = mr.Addr()

	logger := zerolog.Nop()
	s, err := New(context.Background(), cfg, &logger, nil)
	require.NoError(t, err)

	require.NotNil(t, s.Redis)
	assert.Nil(t, s.DynamoDB)
	assert.NoError(t, s.Redis.Ping(context.Background()).Err())

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNewDynamoDBStore(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	cfg := config.DefaultConfig()
	cfg.Store.TableName = "persons"
	cfg.Store.Region = "eu-west-1"
	cfg.Store.Endpoint = "http://localhost:8000"

	logger := zerolog.Nop()
	s, err := New(context.Background(), cfg, &logger, nil)
	require.NoError(t, err)

	require.NotNil(t, s.DynamoDB)
	assert.Nil(t, s.Redis)
	assert.Equal(t, "eu-west-1", s.DynamoDB.Options().Region)
}

func TestNewUnknownDriver(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Store.Driver = "cassandra"

	logger := zerolog.Nop()
	_, err := New(context.Background(), cfg, &logger, nil)
	assert.Error(t, err)
}

func TestStartWithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: config.DefaultConfig(), Logger: &logger}

	assert.Error(t, s.Start())
}
