package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/reimagine/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStateDB(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func putKey(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, '2026-10-15T12:00:00Z')
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func stateKeys(t *testing.T, database *sql.DB) map[string]string {
	t.Helper()
	rows, err := database.Query(`SELECT key, value FROM app_state`)
	require.NoError(t, err)
	defer rows.Close()
	got := map[string]string{}
	for rows.Next() {
		var k, v string
		require.NoError(t, rows.Scan(&k, &v))
		got[k] = v
	}
	require.NoError(t, rows.Err())
	return got
}

func TestWithinTx_CommitsBothKeys(t *testing.T) {
	database, uow := openStateDB(t)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := putKey(ctx, tx, "projects", `[]`); err != nil {
			return err
		}
		return putKey(ctx, tx, "activeId", `""`)
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"projects": `[]`, "activeId": `""`}, stateKeys(t, database))
}

func TestWithinTx_ErrorLeavesPreviousState(t *testing.T) {
	database, uow := openStateDB(t)
	ctx := context.Background()
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return putKey(ctx, tx, "projects", `[{"id":"a"}]`)
	}))

	errHalfway := errors.New("second key failed")
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := putKey(ctx, tx, "projects", `[]`); err != nil {
			return err
		}
		return errHalfway
	})

	require.ErrorIs(t, err, errHalfway)
	assert.Equal(t, map[string]string{"projects": `[{"id":"a"}]`}, stateKeys(t, database))
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := openStateDB(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putKey(ctx, tx, "projects", `[]`)
			panic("boom")
		})
	})

	assert.Empty(t, stateKeys(t, database))
}
