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

// sqliteBorrowingRepo, BorrowingRepository interface'inin SQLite implementasyonu.
type sqliteBorrowingRepo struct {
	db database.TxQuerier
}

// NewSQLiteBorrowingRepo, constructor — interface döner.
func NewSQLiteBorrowingRepo(db database.TxQuerier) BorrowingRepository {
	return &sqliteBorrowingRepo{db: db}
}

func (r *sqliteBorrowingRepo) Insert(ctx context.Context, b *models.Borrowing) error {
	query := `
		INSERT INTO borrowings (member_id, isbn, borrow_date, due_date, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		b.MemberID,
		b.ISBN,
		b.BorrowDate,
		b.DueDate,
		models.StatusBorrowed,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to insert borrowing: %w", err)
	}

	b.Status = models.StatusBorrowed
	b.ReturnDate = nil
	return nil
}

func (r *sqliteBorrowingRepo) FindOpen(ctx context.Context, memberID, isbn string) (*models.Borrowing, error) {
	// ORDER BY borrow_date, id: birden fazla açık satır varsa en eskisi kapatılır.
	query := `
		SELECT id, member_id, isbn, borrow_date, due_date, return_date, status
		FROM borrowings
		WHERE member_id = ? AND isbn = ? AND return_date IS NULL
		ORDER BY borrow_date ASC, id ASC
		LIMIT 1`

	b := &models.Borrowing{}
	err := r.db.QueryRowContext(ctx, query, memberID, isbn).Scan(
		&b.ID, &b.MemberID, &b.ISBN, &b.BorrowDate, &b.DueDate, &b.ReturnDate, &b.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find open borrowing: %w", err)
	}

	return b, nil
}

func (r *sqliteBorrowingRepo) Close(ctx context.Context, id int64, returnDate string) error {
	query := `
		UPDATE borrowings
		SET return_date = ?, status = ?
		WHERE id = ? AND return_date IS NULL`

	result, err := r.db.ExecContext(ctx, query, returnDate, models.StatusReturned, id)
	if err != nil {
		return fmt.Errorf("failed to close borrowing: %w", err)
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

func (r *sqliteBorrowingRepo) ListOpenDetailed(ctx context.Context) ([]models.BorrowingDetail, error) {
	query := `
		SELECT br.id, br.member_id, br.isbn, br.borrow_date, br.due_date, br.return_date, br.status,
		       m.first_name, m.last_name, m.email,
		       b.title, b.author
		FROM borrowings br
		JOIN members m ON m.member_id = br.member_id
		JOIN books b ON b.isbn = br.isbn
		WHERE br.return_date IS NULL
		ORDER BY br.due_date ASC, br.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open borrowings: %w", err)
	}
	defer rows.Close()

	var details []models.BorrowingDetail
	for rows.Next() {
		var d models.BorrowingDetail
		if err := rows.Scan(
			&d.ID, &d.MemberID, &d.ISBN, &d.BorrowDate, &d.DueDate, &d.ReturnDate, &d.Status,
			&d.FirstName, &d.LastName, &d.Email,
			&d.Title, &d.Author,
		); err != nil {
			return nil, fmt.Errorf("failed to scan borrowing row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating borrowing rows: %w", err)
	}

	return details, nil
}

func (r *sqliteBorrowingRepo) CountOpenByISBN(ctx context.Context, isbn string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM borrowings WHERE isbn = ? AND return_date IS NULL`, isbn,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open borrowings by isbn: %w", err)
	}
	return count, nil
}

func (r *sqliteBorrowingRepo) CountOpenByMember(ctx context.Context, memberID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM borrowings WHERE member_id = ? AND return_date IS NULL`, memberID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open borrowings by member: %w", err)
	}
	return count, nil
}
