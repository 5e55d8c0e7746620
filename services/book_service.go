// Package services, iş mantığı katmanını içerir.
// Service'ler repository interface'lerine bağımlıdır, concrete SQLite
// implementasyonlarına değil — testlerde gerçek DB veya fake geçilebilir.
package services

import (
	"context"
	"fmt"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/repository"
)

// BookService, kitap katalog iş mantığı interface'i.
type BookService interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	Create(ctx context.Context, req *models.CreateBookRequest) (*models.Book, error)
	Update(ctx context.Context, isbn string, req *models.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, isbn string) error
}

type bookService struct {
	bookRepo      repository.BookRepository
	borrowingRepo repository.BorrowingRepository
}

// NewBookService, constructor.
// borrowingRepo silme koruması için gerekir — açık ödünçlü kitap silinemez.
func NewBookService(
	bookRepo repository.BookRepository,
	borrowingRepo repository.BorrowingRepository,
) BookService {
	return &bookService{
		bookRepo:      bookRepo,
		borrowingRepo: borrowingRepo,
	}
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.bookRepo.GetAll(ctx)
}

func (s *bookService) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return s.bookRepo.GetByISBN(ctx, isbn)
}

func (s *bookService) Search(ctx context.Context, query string) ([]models.Book, error) {
	return s.bookRepo.Search(ctx, query)
}

func (s *bookService) Create(ctx context.Context, req *models.CreateBookRequest) (*models.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if err := s.bookRepo.Create(ctx, req.Book()); err != nil {
		return nil, err
	}

	// Insert sonrası yeniden oku — istemci DB'nin gördüğü satırı alır.
	return s.bookRepo.GetByISBN(ctx, req.ISBN)
}

func (s *bookService) Update(ctx context.Context, isbn string, req *models.UpdateBookRequest) (*models.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	book := &models.Book{
		ISBN:            isbn,
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Category:        req.Category,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	return s.bookRepo.GetByISBN(ctx, isbn)
}

func (s *bookService) Delete(ctx context.Context, isbn string) error {
	// Açık ödünç varken silmeye izin verme — FK hatası yerine okunur bir 409.
	open, err := s.borrowingRepo.CountOpenByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("%w: book has %d open borrowing(s)", pkg.ErrConflict, open)
	}

	return s.bookRepo.Delete(ctx, isbn)
}
