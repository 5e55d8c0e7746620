package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
)

// bookColumns, tüm SELECT sorgularında aynı sırayla kullanılır — scanBook ile eşleşir.
const bookColumns = `isbn, title, author, publisher, publication_year, category, total_copies, available_copies`

// sqliteBookRepo, BookRepository interface'inin SQLite implementasyonu.
type sqliteBookRepo struct {
	db database.TxQuerier
}

// NewSQLiteBookRepo, constructor — interface döner.
// TxQuerier kabul eder: normalde *sql.DB, transaction içinde *sql.Tx geçilir.
func NewSQLiteBookRepo(db database.TxQuerier) BookRepository {
	return &sqliteBookRepo{db: db}
}

func (r *sqliteBookRepo) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (isbn, title, author, publisher, publication_year, category, total_copies, available_copies)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		book.ISBN,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublicationYear,
		book.Category,
		book.TotalCopies,
		book.AvailableCopies,
	)
	if err != nil {
		// UNIQUE ihlali dahil her DB hatası olduğu gibi yukarı taşınır (→ 500).
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *sqliteBookRepo) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = ?`

	book := &models.Book{}
	err := scanBook(r.db.QueryRowContext(ctx, query, isbn), book)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	return book, nil
}

func (r *sqliteBookRepo) GetAll(ctx context.Context) ([]models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

// Search, title/author/isbn üzerinde substring (LIKE containment) araması yapar.
// Boş query "%%" pattern'ı üretir — her satırla eşleşir, GetAll ile aynı
// küme ve aynı sıralama döner.
func (r *sqliteBookRepo) Search(ctx context.Context, query string) ([]models.Book, error) {
	sqlQuery := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE title LIKE ? OR author LIKE ? OR isbn LIKE ?
		ORDER BY title ASC`

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *sqliteBookRepo) Update(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books
		SET title = ?, author = ?, publisher = ?, publication_year = ?, category = ?,
		    total_copies = ?, available_copies = ?
		WHERE isbn = ?`

	result, err := r.db.ExecContext(ctx, query,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublicationYear,
		book.Category,
		book.TotalCopies,
		book.AvailableCopies,
		book.ISBN,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteBookRepo) Delete(ctx context.Context, isbn string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE isbn = ?`, isbn)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteBookRepo) DecrementAvailable(ctx context.Context, isbn string) (bool, error) {
	// Guard WHERE clause'unda: sayaç 0 ise satır etkilenmez, sayaç negatife düşemez.
	result, err := r.db.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies - 1
		 WHERE isbn = ? AND available_copies > 0`, isbn)
	if err != nil {
		return false, fmt.Errorf("failed to decrement available copies: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *sqliteBookRepo) IncrementAvailable(ctx context.Context, isbn string) (bool, error) {
	// Tavan guard'ı: available_copies total_copies'i aşamaz.
	result, err := r.db.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies + 1
		 WHERE isbn = ? AND available_copies < total_copies`, isbn)
	if err != nil {
		return false, fmt.Errorf("failed to increment available copies: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return affected > 0, nil
}

// rowScanner, *sql.Row ve *sql.Rows'un ortak Scan metodunu soyutlar.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner, book *models.Book) error {
	return row.Scan(
		&book.ISBN,
		&book.Title,
		&book.Author,
		&book.Publisher,
		&book.PublicationYear,
		&book.Category,
		&book.TotalCopies,
		&book.AvailableCopies,
	)
}

func collectBooks(rows *sql.Rows) ([]models.Book, error) {
	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}
