package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/repository"
)

// testEnv, service testleri için gerçek SQLite üzerinde kurulu tüm katmanlar.
type testEnv struct {
	db          *database.DB
	books       BookService
	members     MemberService
	circulation CirculationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "library.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	bookRepo := repository.NewSQLiteBookRepo(db.Conn)
	memberRepo := repository.NewSQLiteMemberRepo(db.Conn)
	borrowingRepo := repository.NewSQLiteBorrowingRepo(db.Conn)

	return &testEnv{
		db:          db,
		books:       NewBookService(bookRepo, borrowingRepo),
		members:     NewMemberService(memberRepo, borrowingRepo),
		circulation: NewCirculationService(db.Conn, borrowingRepo),
	}
}

func (e *testEnv) createBook(t *testing.T, isbn string, copies int) *models.Book {
	t.Helper()

	book, err := e.books.Create(context.Background(), &models.CreateBookRequest{
		ISBN:        isbn,
		Title:       "The Pragmatic Programmer",
		Author:      "Andrew Hunt",
		Category:    "Technology",
		TotalCopies: copies,
	})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createMember(t *testing.T, memberID string) *models.Member {
	t.Helper()

	member, err := e.members.Create(context.Background(), &models.CreateMemberRequest{
		MemberID:  memberID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     memberID + "@example.com",
	})
	require.NoError(t, err)
	return member
}

func (e *testEnv) availableCopies(t *testing.T, isbn string) int {
	t.Helper()

	book, err := e.books.GetByISBN(context.Background(), isbn)
	require.NoError(t, err)
	return book.AvailableCopies
}
