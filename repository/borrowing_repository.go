package repository

import (
	"context"

	"github.com/Nikhil170404/servver/models"
)

// BorrowingRepository, ödünç defteri işlemleri için interface.
// Satırlar asla silinmez: iade sadece return_date ve status alanlarını doldurur.
type BorrowingRepository interface {
	// Insert, yeni bir açık ödünç satırı ekler (return_date NULL, status 'borrowed').
	// Başarıda borrowing.ID doldurulur.
	Insert(ctx context.Context, borrowing *models.Borrowing) error

	// FindOpen, (member, isbn) çifti için açık ödünç satırını döner.
	// Birden fazla açık satır varsa (unique index kaldırılmışsa oluşabilir)
	// deterministik olarak en erken borrow_date'li satır seçilir.
	FindOpen(ctx context.Context, memberID, isbn string) (*models.Borrowing, error)

	// Close, satırın return_date'ini yazar ve status'u 'returned' yapar.
	Close(ctx context.Context, id int64, returnDate string) error

	// ListOpenDetailed, tüm açık ödünçleri üye + kitap bilgisiyle,
	// due_date sırasına göre döner.
	ListOpenDetailed(ctx context.Context) ([]models.BorrowingDetail, error)

	// CountOpenByISBN / CountOpenByMember, silme korumaları için açık kayıt sayar.
	CountOpenByISBN(ctx context.Context, isbn string) (int, error)
	CountOpenByMember(ctx context.Context, memberID string) (int, error)
}
