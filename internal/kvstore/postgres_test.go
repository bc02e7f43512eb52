package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostgresStore_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"name":"Demo"}`)
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("userDetails").
			WillReturnRows(rows)

		store := NewPostgresStore(db)
		val, ok, err := store.Get(context.Background(), "userDetails")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"name":"Demo"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		store := NewPostgresStore(db)
		val, ok, err := store.Get(context.Background(), "missing")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", val)
	})

	t.Run("Query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("orders").
			WillReturnError(errors.New("connection reset"))

		store := NewPostgresStore(db)
		_, _, err = store.Get(context.Background(), "orders")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "kvstore get")
	})
}

func TestPostgresStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("orders", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgresStore(db)
	assert.NoError(t, store.Set(context.Background(), "orders", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgresStore(db)
	assert.NoError(t, store.Remove(context.Background(), "orders"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
