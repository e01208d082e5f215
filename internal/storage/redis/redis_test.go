package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"todoList/internal/storage"
	"todoList/internal/storage/redis"
	"todoList/internal/storage/storagetest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var _ storage.Storage = (*redis.Storage)(nil)

type RedisTestSuite struct {
	suite.Suite
	container testcontainers.Container
	addr      string
	storage   *redis.Storage
	ctx       context.Context
}

func (s *RedisTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(s.T(), err)

	port, err := container.MappedPort(s.ctx, "6379")
	require.NoError(s.T(), err)
	s.addr = fmt.Sprintf("%s:%s", host, port.Port())

	s.storage, err = redis.New(s.ctx, redis.Options{Addr: s.addr, Prefix: "todo:test:"})
	require.NoError(s.T(), err)
}

func (s *RedisTestSuite) TearDownSuite() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisTestSuite) SetupTest() {
	require.NoError(s.T(), s.storage.Clear(s.ctx))
}

func (s *RedisTestSuite) TestContract() {
	storagetest.Run(s.T(), s.storage)
}

// Clear must only drop keys under its own prefix.
func (s *RedisTestSuite) TestClearKeepsOtherPrefixes() {
	other, err := redis.New(s.ctx, redis.Options{Addr: s.addr, Prefix: "todo:other:"})
	s.Require().NoError(err)
	defer other.Close()

	s.Require().NoError(storage.Put(s.ctx, other, "tasks", []string{"foreign"}))
	s.Require().NoError(storage.Put(s.ctx, s.storage, "tasks", []string{"own"}))

	s.Require().NoError(s.storage.Clear(s.ctx))

	var out []string
	found, err := storage.Get(s.ctx, other, "tasks", &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal([]string{"foreign"}, out)

	s.Require().NoError(other.Clear(s.ctx))
}

func TestRedisSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(RedisTestSuite))
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redis.New(ctx, redis.Options{Addr: "127.0.0.1:1", Prefix: "todo:"})
	require.Error(t, err)
	require.NotErrorIs(t, err, redis.ErrEmptyPrefix)
}

func TestNew_EmptyPrefix(t *testing.T) {
	// must fail before dialing, so no server is needed
	_, err := redis.New(context.Background(), redis.Options{Addr: "127.0.0.1:1"})
	require.ErrorIs(t, err, redis.ErrEmptyPrefix)
}
