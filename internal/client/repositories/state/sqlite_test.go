package state

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jcsoftlabs/Yeng-client/internal/dbx"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE client_state (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "customer-auth", []byte(`{"token":"abc"}`)))

	got, err := repo.Get(ctx, "customer-auth")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"token":"abc"}`), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "k", []byte("one")))
	require.NoError(t, repo.Set(ctx, "k", []byte("two")))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestSQLiteRepository_GetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	require.NoError(t, repo.Delete(ctx, "a"))
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_InsideTransaction(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, "customer-auth", []byte("blob")); err != nil {
			return err
		}
		return repo.Set(ctx, "customer_token", []byte("token"))
	})
	require.NoError(t, err)

	repo := NewSQLiteRepository(db)
	got, err := repo.Get(ctx, "customer_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), got)
}
