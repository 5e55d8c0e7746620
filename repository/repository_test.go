package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/models"
)

// newTestDB, her test için izole bir SQLite dosyası açar ve gerçek
// migration'ları çalıştırır — şema üretimde olanla birebir aynıdır.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "library.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func testBook(isbn string, copies int) *models.Book {
	return &models.Book{
		ISBN:            isbn,
		Title:           "The Go Programming Language",
		Author:          "Alan Donovan",
		Publisher:       "Addison-Wesley",
		PublicationYear: 2015,
		Category:        "Technology",
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
}

func testMember(id string) *models.Member {
	return &models.Member{
		MemberID:  id,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     id + "@example.com",
		Phone:     "555-0100",
		Address:   "1 Navy Way",
	}
}

// mustCreateBook / mustCreateMember / mustBorrow — fixture helper'ları.
func mustCreateBook(t *testing.T, db *database.DB, book *models.Book) {
	t.Helper()
	require.NoError(t, NewSQLiteBookRepo(db.Conn).Create(context.Background(), book))
}

func mustCreateMember(t *testing.T, db *database.DB, member *models.Member) {
	t.Helper()
	require.NoError(t, NewSQLiteMemberRepo(db.Conn).Create(context.Background(), member))
}

func mustBorrow(t *testing.T, db *database.DB, memberID, isbn, borrowDate, dueDate string) *models.Borrowing {
	t.Helper()

	b := &models.Borrowing{
		MemberID:   memberID,
		ISBN:       isbn,
		BorrowDate: borrowDate,
		DueDate:    dueDate,
	}
	require.NoError(t, NewSQLiteBorrowingRepo(db.Conn).Insert(context.Background(), b))
	return b
}
