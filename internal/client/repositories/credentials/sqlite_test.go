package credentials

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "lumina.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storeContract(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	first := models.CredentialPair{AccessToken: "a1", RefreshToken: "r1"}
	require.NoError(t, s.Save(ctx, first))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := models.CredentialPair{AccessToken: "a2", RefreshToken: "r2"}
	require.NoError(t, s.Save(ctx, second))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CredentialPair{}, got)

	require.NoError(t, s.Clear(ctx))
}

func TestSQLiteStore(t *testing.T) {
	storeContract(t, NewSQLiteStore(newTestDB(t)))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lumina.db")

	db, err := client.InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Save(ctx, models.CredentialPair{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, db.Close())

	db, err = client.InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSQLiteStore(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
}

func TestSQLiteStore_ClosedDB(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())

	s := NewSQLiteStore(db)
	_, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Save(context.Background(), models.CredentialPair{AccessToken: "a"}))
	assert.Error(t, s.Clear(context.Background()))
}
