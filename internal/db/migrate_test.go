package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesKVStore(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, "kv_store").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)
}

func TestMigrate_KVStoreKeyIsUnique(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'a', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'b', 'now')`)
	assert.Error(t, err, "duplicate key must violate the primary key")
}

func TestOpenDB_FileCreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "laskuri.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', 'now')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	var val string
	require.NoError(t, second.QueryRow(`SELECT value FROM kv_store WHERE key = 'k'`).Scan(&val))
	assert.Equal(t, "v", val)
}
