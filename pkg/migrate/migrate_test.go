package migrate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famoussince/storefront/pkg/config"
	"github.com/famoussince/storefront/pkg/db"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestKVEntriesMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_kv_entries.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no kv_entries migration file found")

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	content := string(data)

	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS kv_entries",
		"PRIMARY KEY (scope, entry_key)",
		"DROP TABLE IF EXISTS kv_entries",
	} {
		assert.Contains(t, content, sub)
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}

func TestValidateDirRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644))
	assert.Error(t, ValidateDir(dir))
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Cart Index!")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_add_cart_index.sql"), path)
	require.NoError(t, ValidateDir(dir))

	_, err = CreateSQLMigration(dir, "!!!")
	require.Error(t, err)
	_, err = CreateSQLMigration("", "x")
	require.Error(t, err)
}

func TestGooseDialect(t *testing.T) {
	d, err := GooseDialect(config.StoreDriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d)

	_, err = GooseDialect(config.StoreDriverRedis)
	assert.Error(t, err)
}

func TestMaybeRunAppliesEmbeddedMigrations(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:migrate_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	client := db.NewWithConn(conn)

	cfg := &config.Config{
		App:   config.AppConfig{Env: "dev"},
		Store: config.StoreConfig{Driver: "sqlite", AutoMigrate: true},
	}
	require.NoError(t, MaybeRun(context.Background(), cfg, logger.Nop(), client))
	assert.True(t, conn.Migrator().HasTable("kv_entries"))
}

func TestMaybeRunSkipsWhenDisabled(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}
	require.NoError(t, MaybeRun(context.Background(), cfg, logger.Nop(), nil))
}
