package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
)

func TestBorrowDecrementsAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 3)
	env.createMember(t, "M001")

	b, err := env.circulation.Borrow(ctx, &models.BorrowRequest{
		MemberID:   "M001",
		ISBN:       "111",
		BorrowDate: "2024-01-01",
		DueDate:    "2024-01-15",
	})
	require.NoError(t, err)

	assert.Greater(t, b.ID, int64(0))
	assert.Equal(t, models.StatusBorrowed, b.Status)
	assert.Equal(t, 2, env.availableCopies(t, "111"))
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 3)
	env.createMember(t, "M001")

	_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{
		MemberID: "M001", ISBN: "111",
		BorrowDate: "2024-01-01", DueDate: "2024-01-15",
	})
	require.NoError(t, err)

	returned, err := env.circulation.Return(ctx, &models.ReturnRequest{
		MemberID: "M001", ISBN: "111", ReturnDate: "2024-01-10",
	})
	require.NoError(t, err)

	// İade sayacı geri yükler, kayıt kapanır.
	assert.Equal(t, models.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, "2024-01-10", *returned.ReturnDate)
	assert.Equal(t, 3, env.availableCopies(t, "111"))

	open, err := env.circulation.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestBorrowBookNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.createMember(t, "M001")

	_, err := env.circulation.Borrow(context.Background(), &models.BorrowRequest{
		MemberID: "M001", ISBN: "no-such-isbn",
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBorrowMemberNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.createBook(t, "111", 3)

	_, err := env.circulation.Borrow(context.Background(), &models.BorrowRequest{
		MemberID: "M999", ISBN: "111",
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBorrowSamePairTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 3)
	env.createMember(t, "M001")

	_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{MemberID: "M001", ISBN: "111"})
	require.NoError(t, err)

	// Aynı üye aynı kitabı iade etmeden tekrar alamaz.
	_, err = env.circulation.Borrow(ctx, &models.BorrowRequest{MemberID: "M001", ISBN: "111"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
	assert.Equal(t, 2, env.availableCopies(t, "111"))
}

func TestBorrowNoCopiesAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 1)
	env.createMember(t, "M001")
	env.createMember(t, "M002")

	_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{MemberID: "M001", ISBN: "111"})
	require.NoError(t, err)

	_, err = env.circulation.Borrow(ctx, &models.BorrowRequest{MemberID: "M002", ISBN: "111"})
	assert.ErrorIs(t, err, pkg.ErrNoCopiesAvailable)

	// Başarısız borrow hiçbir iz bırakmaz: insert de geri alınmıştır.
	assert.Equal(t, 0, env.availableCopies(t, "111"))
	open, err := env.circulation.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "M001", open[0].MemberID)
}

func TestBorrowValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.circulation.Borrow(context.Background(), &models.BorrowRequest{ISBN: "111"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = env.circulation.Borrow(context.Background(), &models.BorrowRequest{
		MemberID: "M001", ISBN: "111", BorrowDate: "01/15/2024",
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestReturnWithoutOpenBorrowing(t *testing.T) {
	env := newTestEnv(t)

	env.createBook(t, "111", 3)
	env.createMember(t, "M001")

	_, err := env.circulation.Return(context.Background(), &models.ReturnRequest{
		MemberID: "M001", ISBN: "111",
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.Equal(t, 3, env.availableCopies(t, "111"))
}

func TestReturnTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 3)
	env.createMember(t, "M001")

	_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{MemberID: "M001", ISBN: "111"})
	require.NoError(t, err)

	_, err = env.circulation.Return(ctx, &models.ReturnRequest{MemberID: "M001", ISBN: "111"})
	require.NoError(t, err)

	// İkinci iade açık kayıt bulamaz; sayaç total'in üstüne çıkmaz.
	_, err = env.circulation.Return(ctx, &models.ReturnRequest{MemberID: "M001", ISBN: "111"})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.Equal(t, 3, env.availableCopies(t, "111"))
}

// TestConcurrentBorrowLastCopy: son kopya için yarışan iki istekten yalnızca
// biri başarılı olur, kaybeden ErrNoCopiesAvailable alır.
//
// Havuz üretim konfigürasyonundadır — transaction'lar gerçekten yarışır.
// DSN'deki _txlock=immediate yazarları busy_timeout üzerinde sıraya sokar;
// kaybeden sayacı commit edilmiş haliyle okur ve SQLITE_BUSY yerine domain
// hatasını alır. Yarış zamanlamaya bağlı olduğu için senaryo tekrarlanır.
func TestConcurrentBorrowLastCopy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createMember(t, "M001")
	env.createMember(t, "M002")

	for i := 0; i < 30; i++ {
		isbn := fmt.Sprintf("race-%d", i)
		env.createBook(t, isbn, 1)

		results := make(chan error, 2)
		var wg sync.WaitGroup
		for _, memberID := range []string{"M001", "M002"} {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{
					MemberID: id, ISBN: isbn,
				})
				results <- err
			}(memberID)
		}
		wg.Wait()
		close(results)

		var succeeded, rejected int
		for err := range results {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, pkg.ErrNoCopiesAvailable,
					"iteration %d: loser must get the domain error, got: %v", i, err)
				rejected++
			}
		}

		assert.Equal(t, 1, succeeded, "iteration %d", i)
		assert.Equal(t, 1, rejected, "iteration %d", i)
		assert.Equal(t, 0, env.availableCopies(t, isbn), "iteration %d", i)
	}
}

func TestListOpenOrderedByDueDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createBook(t, "111", 5)
	env.createMember(t, "M001")
	env.createMember(t, "M002")

	_, err := env.circulation.Borrow(ctx, &models.BorrowRequest{
		MemberID: "M001", ISBN: "111", BorrowDate: "2024-01-01", DueDate: "2024-03-01",
	})
	require.NoError(t, err)
	_, err = env.circulation.Borrow(ctx, &models.BorrowRequest{
		MemberID: "M002", ISBN: "111", BorrowDate: "2024-01-01", DueDate: "2024-02-01",
	})
	require.NoError(t, err)

	open, err := env.circulation.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "M002", open[0].MemberID)
	assert.Equal(t, "M001", open[1].MemberID)
}
