package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/laskuri/internal/db"
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/repository"
	"github.com/alexanderramin/laskuri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite checks that loads running alongside
// saves always see a complete ledger: some prefix of the final one, never a
// torn or corrupt record.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := repository.NewSQLiteLedgerRepo(database)

	final := testutil.NewTestLedger(20)
	require.NoError(t, repo.Save(ctx, domain.Ledger{}))

	var wg sync.WaitGroup
	writeErrs := make(chan error, len(final))

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= len(final); i++ {
			if err := repo.Save(ctx, final[:i]); err != nil {
				writeErrs <- err
			}
		}
	}()

	const readers = 4
	readErrs := make(chan error, readers*20)
	bad := make(chan domain.Ledger, readers*20)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reader := repository.NewSQLiteLedgerRepo(database)
			for i := 0; i < 20; i++ {
				l, err := reader.Load(ctx)
				if err != nil {
					readErrs <- err
					continue
				}
				if len(l) > len(final) || !assert.ObjectsAreEqual(final[:len(l)].Clone(), l) {
					bad <- l
				}
				time.Sleep(time.Millisecond)
			}
		}()
	}

	wg.Wait()
	close(writeErrs)
	close(readErrs)
	close(bad)

	for err := range writeErrs {
		t.Errorf("save failed: %v", err)
	}
	for err := range readErrs {
		t.Errorf("load failed: %v", err)
	}
	for l := range bad {
		t.Errorf("load saw a ledger that is not a prefix of the final one: %v", l)
	}

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, final, got)
}

// TestConcurrentAccess_TwoStoresSameDatabase checks last-writer-wins between
// two repos sharing one database, as two CLI processes would.
func TestConcurrentAccess_TwoStoresSameDatabase(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	a := repository.NewSQLiteLedgerRepo(database)
	b := repository.NewSQLiteLedgerRepo(database)

	require.NoError(t, a.Save(ctx, domain.Ledger{{WorkNumber: "A", Price: "1"}}))
	require.NoError(t, b.Save(ctx, domain.Ledger{{WorkNumber: "B", Price: "2"}}))

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Ledger{{WorkNumber: "B", Price: "2"}}, got)
}
