package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
)

func TestBorrowingInsertAndFindOpen(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)
	ctx := context.Background()

	mustCreateBook(t, db, testBook("111", 2))
	mustCreateMember(t, db, testMember("M001"))

	b := mustBorrow(t, db, "M001", "111", "2024-01-01", "2024-01-15")
	assert.Greater(t, b.ID, int64(0))
	assert.Equal(t, models.StatusBorrowed, b.Status)
	assert.Nil(t, b.ReturnDate)

	open, err := repo.FindOpen(ctx, "M001", "111")
	require.NoError(t, err)
	assert.Equal(t, b.ID, open.ID)
}

func TestBorrowingFindOpenNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)

	_, err := repo.FindOpen(context.Background(), "M001", "111")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBorrowingClose(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)
	ctx := context.Background()

	mustCreateBook(t, db, testBook("111", 1))
	mustCreateMember(t, db, testMember("M001"))
	b := mustBorrow(t, db, "M001", "111", "2024-01-01", "2024-01-15")

	require.NoError(t, repo.Close(ctx, b.ID, "2024-01-10"))

	// Kapalı satır artık açık olarak bulunamaz.
	_, err := repo.FindOpen(ctx, "M001", "111")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Zaten kapalı satırı tekrar kapatmak NotFound — WHERE return_date IS NULL.
	assert.ErrorIs(t, repo.Close(ctx, b.ID, "2024-01-11"), pkg.ErrNotFound)
}

func TestBorrowingOpenPairUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)
	ctx := context.Background()

	mustCreateBook(t, db, testBook("111", 5))
	mustCreateMember(t, db, testMember("M001"))
	mustBorrow(t, db, "M001", "111", "2024-01-01", "2024-01-15")

	// Aynı çift için ikinci açık satır — partial unique index reddeder.
	err := repo.Insert(ctx, &models.Borrowing{
		MemberID:   "M001",
		ISBN:       "111",
		BorrowDate: "2024-01-02",
		DueDate:    "2024-01-16",
	})
	require.Error(t, err)

	// İlk satır kapatıldıktan sonra yeni açık satıra izin verilir.
	open, err := repo.FindOpen(ctx, "M001", "111")
	require.NoError(t, err)
	require.NoError(t, repo.Close(ctx, open.ID, "2024-01-10"))

	require.NoError(t, repo.Insert(ctx, &models.Borrowing{
		MemberID:   "M001",
		ISBN:       "111",
		BorrowDate: "2024-01-11",
		DueDate:    "2024-01-25",
	}))
}

func TestBorrowingListOpenDetailed(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)
	ctx := context.Background()

	book := testBook("111", 5)
	book.Title = "Structure and Interpretation"
	mustCreateBook(t, db, book)
	mustCreateMember(t, db, testMember("M001"))
	mustCreateMember(t, db, testMember("M002"))

	// Due date'leri ters sırada ekle — liste due_date sırasında dönmeli.
	mustBorrow(t, db, "M001", "111", "2024-01-01", "2024-02-20")
	mustBorrow(t, db, "M002", "111", "2024-01-01", "2024-01-15")

	details, err := repo.ListOpenDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "M002", details[0].MemberID)
	assert.Equal(t, "2024-01-15", details[0].DueDate)
	assert.Equal(t, "Structure and Interpretation", details[0].Title)
	assert.Equal(t, "Grace", details[0].FirstName)

	// Kapalı satırlar listede görünmez.
	require.NoError(t, repo.Close(ctx, details[0].ID, "2024-01-20"))
	details, err = repo.ListOpenDetailed(ctx)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestBorrowingCountOpen(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBorrowingRepo(db.Conn)
	ctx := context.Background()

	mustCreateBook(t, db, testBook("111", 5))
	mustCreateMember(t, db, testMember("M001"))

	count, err := repo.CountOpenByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	b := mustBorrow(t, db, "M001", "111", "2024-01-01", "2024-01-15")

	count, err = repo.CountOpenByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountOpenByMember(ctx, "M001")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Close(ctx, b.ID, "2024-01-10"))

	count, err = repo.CountOpenByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
