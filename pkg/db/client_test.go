package db

import (
	"context"
	"testing"

	"github.com/famoussince/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteClient(t *testing.T) {
	client, err := New(context.Background(), config.DBConfig{
		DSN:          "file:dbclient?mode=memory&cache=shared",
		Driver:       "sqlite",
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, config.StoreDriverSQLite, client.Dialect())
	require.NoError(t, client.Ping(context.Background()))

	sqlDB, err := client.SQL()
	require.NoError(t, err)
	assert.NotNil(t, sqlDB)

	wrapped := NewWithConn(client.DB())
	assert.Equal(t, "sqlite", wrapped.Dialect())
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{Driver: "sqlite"}, nil)
	assert.Error(t, err)
}

func TestDialectorForRejectsUnknownDriver(t *testing.T) {
	_, _, err := dialectorFor(config.DBConfig{DSN: "x", Driver: "oracle"})
	assert.Error(t, err)

	_, name, err := dialectorFor(config.DBConfig{DSN: "postgres://localhost/fs"})
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverPostgres, name)
}
