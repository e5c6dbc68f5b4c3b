package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/repository"
	"github.com/alexanderramin/laskuri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerRepo_RoundTrip(t *testing.T) {
	repo := repository.NewMemoryLedgerRepo()
	ctx := context.Background()

	assert.Nil(t, repo.Raw(), "nothing written yet")

	want := testutil.NewTestLedger(3)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryLedgerRepo_LoadIsolatedFromCaller(t *testing.T) {
	repo := repository.NewMemoryLedgerRepo()
	ctx := context.Background()

	l := domain.Ledger{{WorkNumber: "W1", Price: "1"}}
	require.NoError(t, repo.Save(ctx, l))
	l[0].Price = "changed"

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", got[0].Price)
}

func TestMemoryLedgerRepo_CorruptRaw(t *testing.T) {
	repo := repository.NewMemoryLedgerRepo()
	repo.SetRaw([]byte(`[{"workNumber":`))

	l, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrCorrupt)
	assert.Empty(t, l)
}

func TestMemoryLedgerRepo_NullRecord(t *testing.T) {
	repo := repository.NewMemoryLedgerRepo()
	repo.SetRaw([]byte(`null`))

	l, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.Empty(t, l)
}
