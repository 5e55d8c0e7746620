package repository

import (
	"context"

	"github.com/Nikhil170404/servver/models"
)

// BookRepository, kitap veritabanı işlemleri için interface.
//
// DecrementAvailable/IncrementAvailable sayaç guard'larıdır:
// koşul WHERE clause'undadır, etkilenen satır sayısı caller'a döner.
// Read-then-write yerine koşullu UPDATE — eşzamanlı ödünç isteklerinde
// available_copies asla negatife düşemez.
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, isbn string) error

	// DecrementAvailable, available_copies > 0 ise sayacı 1 azaltır.
	// false dönerse kitap ya yok ya da rafta kopya kalmamış.
	DecrementAvailable(ctx context.Context, isbn string) (bool, error)

	// IncrementAvailable, available_copies < total_copies ise sayacı 1 artırır.
	// false dönerse sayaç zaten tavandadır — ödünç defteri ile sayaç sapmış demektir.
	IncrementAvailable(ctx context.Context, isbn string) (bool, error)
}
