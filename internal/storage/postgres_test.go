package storage_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgres(t *testing.T) (storage.Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return storage.NewPostgresStore(db, testTTL), mock, db
}

func TestPostgresGet(t *testing.T) {
	ctx := t.Context()
	key := "profile:abc:favorites"
	query := regexp.QuoteMeta(`SELECT value FROM profile_settings WHERE key = $1`)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock, _ := setupPostgres(t)
		payload, _ := json.Marshal([]int64{3, 7})

		mock.ExpectQuery(query).WithArgs(key).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(payload))

		// Act
		var ids []int64
		found, err := store.Get(ctx, key, &ids)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int64{3, 7}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock, _ := setupPostgres(t)

		mock.ExpectQuery(query).WithArgs(key).WillReturnError(sql.ErrNoRows)

		// Act
		var ids []int64
		found, err := store.Get(ctx, key, &ids)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		store, mock, _ := setupPostgres(t)
		dbErr := errors.New("connection reset")

		mock.ExpectQuery(query).WithArgs(key).WillReturnError(dbErr)

		// Act
		var ids []int64
		found, err := store.Get(ctx, key, &ids)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresSet(t *testing.T) {
	ctx := t.Context()
	key := "profile:abc:userId"
	query := regexp.QuoteMeta(`INSERT INTO profile_settings (key, value, updated_at, expires_at)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store, mock, _ := setupPostgres(t)

		mock.ExpectExec(query).WithArgs(key, []byte("42"), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := store.Set(ctx, key, int64(42))

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		store, mock, _ := setupPostgres(t)
		dbErr := errors.New("disk full")

		mock.ExpectExec(query).WillReturnError(dbErr)

		// Act
		err := store.Set(ctx, key, int64(42))

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to set key "+key+" in postgres")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresDelete(t *testing.T) {
	ctx := t.Context()
	key := "profile:abc:currentUser"
	query := regexp.QuoteMeta(`DELETE FROM profile_settings WHERE key = $1`)

	// Arrange
	store, mock, _ := setupPostgres(t)

	mock.ExpectExec(query).WithArgs(key).WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := store.Delete(ctx, key)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS profile_settings")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, storage.EnsureSchema(t.Context(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
