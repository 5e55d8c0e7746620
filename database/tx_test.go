package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "library.db"), Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func countBooks(t *testing.T, db *DB) int {
	t.Helper()

	var count int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM books").Scan(&count))
	return count
}

func insertBookStmt(isbn string) string {
	return fmt.Sprintf(
		`INSERT INTO books (isbn, title, author, total_copies, available_copies)
		 VALUES ('%s', 'Title', 'Author', 1, 1)`, isbn)
}

func TestWithTxCommit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertBookStmt("111")); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertBookStmt("222")); err != nil {
			return err
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countBooks(t, db))
}

func TestWithTxRollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := fmt.Errorf("boom")
	err := WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertBookStmt("111")); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	// İlk insert geri alınmış olmalı — yarım state gözlemlenemez.
	assert.Equal(t, 0, countBooks(t, db))
}

func TestWithTxRollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, insertBookStmt("111")); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	assert.Equal(t, 0, countBooks(t, db))
}

func TestWithTxRollbackOnConstraintViolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertBookStmt("111")); err != nil {
			return err
		}
		// Aynı primary key — UNIQUE ihlali.
		_, err := tx.ExecContext(ctx, insertBookStmt("111"))
		return err
	})

	require.Error(t, err)
	assert.Equal(t, 0, countBooks(t, db))
}
