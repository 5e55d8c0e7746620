package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil170404/servver/pkg"
)

func TestBookCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	book := testBook("9780134190440", 2)
	require.NoError(t, repo.Create(ctx, book))

	got, err := repo.GetByISBN(ctx, "9780134190440")
	require.NoError(t, err)
	assert.Equal(t, book, got)
}

func TestBookGetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)

	_, err := repo.GetByISBN(context.Background(), "0000000000")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBookCreateDuplicateISBN(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testBook("111", 1)))

	err := repo.Create(ctx, testBook("111", 1))
	// UNIQUE ihlali sentinel'e çevrilmez — generic store hatası olarak kalır.
	require.Error(t, err)
	assert.NotErrorIs(t, err, pkg.ErrNotFound)
}

func TestBookUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	book := testBook("111", 2)
	require.NoError(t, repo.Create(ctx, book))

	book.Title = "Updated Title"
	book.TotalCopies = 5
	book.AvailableCopies = 4
	require.NoError(t, repo.Update(ctx, book))

	got, err := repo.GetByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, 5, got.TotalCopies)
	assert.Equal(t, 4, got.AvailableCopies)
}

func TestBookUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)

	err := repo.Update(context.Background(), testBook("missing", 1))
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBookDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testBook("111", 1)))
	require.NoError(t, repo.Delete(ctx, "111"))

	_, err := repo.GetByISBN(ctx, "111")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// İkinci silme — satır yok.
	assert.ErrorIs(t, repo.Delete(ctx, "111"), pkg.ErrNotFound)
}

func TestBookSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	golang := testBook("111", 1)
	golang.Title = "The Go Programming Language"
	require.NoError(t, repo.Create(ctx, golang))

	kernighan := testBook("222", 1)
	kernighan.Title = "The C Programming Language"
	kernighan.Author = "Brian Kernighan"
	require.NoError(t, repo.Create(ctx, kernighan))

	// Başlıkta substring
	results, err := repo.Search(ctx, "Go Prog")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "111", results[0].ISBN)

	// Yazarda substring
	results, err = repo.Search(ctx, "Kernighan")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "222", results[0].ISBN)

	// ISBN'de substring
	results, err = repo.Search(ctx, "22")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Eşleşme yok
	results, err = repo.Search(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBookSearchEmptyQueryEqualsGetAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	for _, isbn := range []string{"333", "111", "222"} {
		b := testBook(isbn, 1)
		b.Title = "Book " + isbn
		require.NoError(t, repo.Create(ctx, b))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)

	searched, err := repo.Search(ctx, "")
	require.NoError(t, err)

	// Aynı küme, aynı sıralama.
	assert.Equal(t, all, searched)
}

func TestBookDecrementAvailableGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	book := testBook("111", 1)
	require.NoError(t, repo.Create(ctx, book))

	ok, err := repo.DecrementAvailable(ctx, "111")
	require.NoError(t, err)
	assert.True(t, ok)

	// Sayaç 0 — guard etkilenen satır bırakmaz, sayaç negatife düşmez.
	ok, err = repo.DecrementAvailable(ctx, "111")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableCopies)

	// Olmayan kitap da false döner.
	ok, err = repo.DecrementAvailable(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookIncrementAvailableCap(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	book := testBook("111", 2)
	require.NoError(t, repo.Create(ctx, book))

	// Sayaç zaten tavanda — artırılamaz.
	ok, err := repo.IncrementAvailable(ctx, "111")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.DecrementAvailable(ctx, "111")
	require.NoError(t, err)

	ok, err = repo.IncrementAvailable(ctx, "111")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByISBN(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableCopies)
}

func TestBookGetAllOrderedByTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBookRepo(db.Conn)
	ctx := context.Background()

	titles := map[string]string{"111": "Zebra", "222": "Alpha", "333": "Middle"}
	for isbn, title := range titles {
		b := testBook(isbn, 1)
		b.Title = title
		require.NoError(t, repo.Create(ctx, b))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Alpha", "Middle", "Zebra"},
		[]string{all[0].Title, all[1].Title, all[2].Title})
}
