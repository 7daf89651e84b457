package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openpays/checkout-orchestrator/internal/config"
	"github.com/openpays/checkout-orchestrator/internal/domain"
	"github.com/openpays/checkout-orchestrator/internal/infrastructure/store"
)

type PostgresStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	db        *store.DB
	refs      *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres store suite in short mode")
	}
	suite.Run(t, new(PostgresStoreTestSuite))
}

func (suite *PostgresStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(suite.T(), err)
	suite.container = container

	host, err := container.Host(ctx)
	require.NoError(suite.T(), err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(suite.T(), err)

	dbConfig := &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Name:            "testdb",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := store.Connect(ctx, dbConfig, logger)
	require.NoError(suite.T(), err)
	suite.db = db

	suite.refs = store.NewPostgresStore(db)
	require.NoError(suite.T(), suite.refs.Migrate(ctx))
}

func (suite *PostgresStoreTestSuite) TearDownSuite() {
	suite.db.Close()
	require.NoError(suite.T(), suite.container.Terminate(context.Background()))
}

func (suite *PostgresStoreTestSuite) TearDownTest() {
	_, err := suite.db.Pool.Exec(context.Background(), "TRUNCATE TABLE session_references;")
	require.NoError(suite.T(), err)
}

func (suite *PostgresStoreTestSuite) Test_PutAndGet() {
	ctx := context.Background()

	_, ok, err := suite.refs.Get(ctx, "session-1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)

	require.NoError(suite.T(), suite.refs.Put(ctx, "session-1", "PSP-1"))

	ref, ok, err := suite.refs.Get(ctx, "session-1")
	require.NoError(suite.T(), err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "PSP-1", ref)
}

func (suite *PostgresStoreTestSuite) Test_WriteOnce() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.refs.Put(ctx, "session-1", "PSP-1"))
	require.NoError(suite.T(), suite.refs.Put(ctx, "session-1", "PSP-1"))

	err := suite.refs.Put(ctx, "session-1", "PSP-2")
	assert.ErrorIs(suite.T(), err, domain.ErrReferenceConflict)

	ref, ok, err := suite.refs.Get(ctx, "session-1")
	require.NoError(suite.T(), err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "PSP-1", ref)
}

func (suite *PostgresStoreTestSuite) Test_Delete() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.refs.Put(ctx, "session-1", "PSP-1"))
	require.NoError(suite.T(), suite.refs.Delete(ctx, "session-1"))

	_, ok, err := suite.refs.Get(ctx, "session-1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}
