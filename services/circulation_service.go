// Package services — CirculationService, ödünç alma/iade transaction koordinatörü.
//
// Borrow ve Return çok adımlı yazmalardır: ödünç defterine satır yazılır VE
// kitabın available_copies sayacı güncellenir. İki adım database.WithTx ile
// tek atomik birim olarak çalışır — herhangi bir adım başarısız olursa
// tamamı geri alınır, yarım state asla gözlemlenemez.
//
// Sayaç guard'ı UPDATE'in WHERE clause'undadır (available_copies > 0).
// Read-then-write yerine bu koşullu güncelleme kullanılır: son kopya için
// yarışan iki borrow isteğinden yalnızca biri satırı etkiler, diğeri
// ErrNoCopiesAvailable alır ve sayaç negatife düşemez.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/repository"
)

// CirculationService, ödünç alma/iade iş mantığı interface'i.
type CirculationService interface {
	Borrow(ctx context.Context, req *models.BorrowRequest) (*models.Borrowing, error)
	Return(ctx context.Context, req *models.ReturnRequest) (*models.Borrowing, error)
	ListOpen(ctx context.Context) ([]models.BorrowingDetail, error)
}

type circulationService struct {
	db            *sql.DB
	borrowingRepo repository.BorrowingRepository
}

// NewCirculationService, constructor.
//
// *sql.DB doğrudan alınır çünkü Borrow/Return kendi transaction'larını açar;
// transaction içindeki repo'lar *sql.Tx üzerinden yeniden oluşturulur
// (repository constructor'ları TxQuerier kabul eder).
func NewCirculationService(db *sql.DB, borrowingRepo repository.BorrowingRepository) CirculationService {
	return &circulationService{
		db:            db,
		borrowingRepo: borrowingRepo,
	}
}

// Borrow, bir kitabı üyeye ödünç verir.
//
// Hata türleri:
//   - pkg.ErrNotFound          → kitap veya üye yok (404)
//   - pkg.ErrAlreadyExists     → aynı (üye, kitap) çifti için açık ödünç zaten var (409)
//   - pkg.ErrNoCopiesAvailable → rafta kopya kalmamış (400)
func (s *circulationService) Borrow(ctx context.Context, req *models.BorrowRequest) (*models.Borrowing, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	borrowing := &models.Borrowing{
		MemberID:   req.MemberID,
		ISBN:       req.ISBN,
		BorrowDate: req.BorrowDate,
		DueDate:    req.DueDate,
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		books := repository.NewSQLiteBookRepo(tx)
		members := repository.NewSQLiteMemberRepo(tx)
		borrowings := repository.NewSQLiteBorrowingRepo(tx)

		if _, err := books.GetByISBN(ctx, req.ISBN); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return fmt.Errorf("%w: book %s", pkg.ErrNotFound, req.ISBN)
			}
			return err
		}

		if _, err := members.GetByID(ctx, req.MemberID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return fmt.Errorf("%w: member %s", pkg.ErrNotFound, req.MemberID)
			}
			return err
		}

		// Aynı çift için ikinci açık ödünç yasak (partial unique index de korur,
		// ama uygulama seviyesinde okunur bir hata dönmek için önce kontrol edilir).
		if _, err := borrowings.FindOpen(ctx, req.MemberID, req.ISBN); err == nil {
			return fmt.Errorf("%w: open borrowing for member %s and book %s",
				pkg.ErrAlreadyExists, req.MemberID, req.ISBN)
		} else if !errors.Is(err, pkg.ErrNotFound) {
			return err
		}

		if err := borrowings.Insert(ctx, borrowing); err != nil {
			return err
		}

		// Sayaç guard'ı: 0 satır etkilendiyse kopya kalmamış — insert dahil
		// tüm birim geri alınır.
		decremented, err := books.DecrementAvailable(ctx, req.ISBN)
		if err != nil {
			return err
		}
		if !decremented {
			return fmt.Errorf("%w: book %s", pkg.ErrNoCopiesAvailable, req.ISBN)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return borrowing, nil
}

// Return, açık bir ödünç kaydını kapatır.
//
// Hata türleri:
//   - pkg.ErrNotFound → (üye, kitap) çifti için açık ödünç yok (404)
func (s *circulationService) Return(ctx context.Context, req *models.ReturnRequest) (*models.Borrowing, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	var closed *models.Borrowing

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		books := repository.NewSQLiteBookRepo(tx)
		borrowings := repository.NewSQLiteBorrowingRepo(tx)

		open, err := borrowings.FindOpen(ctx, req.MemberID, req.ISBN)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return fmt.Errorf("%w: no active borrowing for member %s and book %s",
					pkg.ErrNotFound, req.MemberID, req.ISBN)
			}
			return err
		}

		if err := borrowings.Close(ctx, open.ID, req.ReturnDate); err != nil {
			return err
		}

		// Tavan guard'ı: sayaç total_copies'teyse artırma yapılamaz —
		// defter ile sayaç sapmıştır, iade commit edilmez.
		incremented, err := books.IncrementAvailable(ctx, req.ISBN)
		if err != nil {
			return err
		}
		if !incremented {
			return fmt.Errorf("available copies already at total for book %s", req.ISBN)
		}

		open.ReturnDate = &req.ReturnDate
		open.Status = models.StatusReturned
		closed = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	return closed, nil
}

func (s *circulationService) ListOpen(ctx context.Context) ([]models.BorrowingDetail, error) {
	return s.borrowingRepo.ListOpenDetailed(ctx)
}
