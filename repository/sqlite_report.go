package repository

import (
	"context"
	"fmt"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/models"
)

// sqliteReportRepo, ReportRepository interface'inin SQLite implementasyonu.
type sqliteReportRepo struct {
	db database.TxQuerier
}

// NewSQLiteReportRepo, constructor — interface döner.
func NewSQLiteReportRepo(db database.TxQuerier) ReportRepository {
	return &sqliteReportRepo{db: db}
}

func (r *sqliteReportRepo) Overdue(ctx context.Context) ([]models.OverdueBorrowing, error) {
	// julianday farkı gün cinsinden gecikmeyi verir; CAST ile tam güne yuvarlanır.
	query := `
		SELECT br.id, br.member_id, m.first_name, m.last_name, m.email,
		       br.isbn, b.title, br.borrow_date, br.due_date,
		       CAST(julianday(date('now')) - julianday(br.due_date) AS INTEGER) AS days_overdue
		FROM borrowings br
		JOIN members m ON m.member_id = br.member_id
		JOIN books b ON b.isbn = br.isbn
		WHERE br.return_date IS NULL AND br.due_date < date('now')
		ORDER BY days_overdue DESC, br.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue report: %w", err)
	}
	defer rows.Close()

	var overdue []models.OverdueBorrowing
	for rows.Next() {
		var o models.OverdueBorrowing
		if err := rows.Scan(
			&o.ID, &o.MemberID, &o.FirstName, &o.LastName, &o.Email,
			&o.ISBN, &o.Title, &o.BorrowDate, &o.DueDate, &o.DaysOverdue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overdue row: %w", err)
		}
		overdue = append(overdue, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overdue rows: %w", err)
	}

	return overdue, nil
}

func (r *sqliteReportRepo) Popular(ctx context.Context) ([]models.PopularBook, error) {
	query := `
		SELECT b.isbn, b.title, b.author, b.category, COUNT(br.id) AS borrow_count
		FROM books b
		JOIN borrowings br ON br.isbn = b.isbn
		GROUP BY b.isbn
		ORDER BY borrow_count DESC, b.title ASC
		LIMIT 10`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular report: %w", err)
	}
	defer rows.Close()

	var popular []models.PopularBook
	for rows.Next() {
		var p models.PopularBook
		if err := rows.Scan(&p.ISBN, &p.Title, &p.Author, &p.Category, &p.BorrowCount); err != nil {
			return nil, fmt.Errorf("failed to scan popular row: %w", err)
		}
		popular = append(popular, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popular rows: %w", err)
	}

	return popular, nil
}

func (r *sqliteReportRepo) Inventory(ctx context.Context) ([]models.CategoryInventory, error) {
	// Dışarıdaki kopya sayısı sayaçlardan türetilir — ödünç defteriyle
	// JOIN gerekmez, sayaç invariant'ı zaten transaction'larla korunur.
	query := `
		SELECT category, COUNT(*) AS book_count,
		       SUM(total_copies) AS total_copies,
		       SUM(total_copies - available_copies) AS copies_on_loan
		FROM books
		GROUP BY category
		ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory report: %w", err)
	}
	defer rows.Close()

	var inventory []models.CategoryInventory
	for rows.Next() {
		var inv models.CategoryInventory
		if err := rows.Scan(&inv.Category, &inv.BookCount, &inv.TotalCopies, &inv.CopiesOnLoan); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		inventory = append(inventory, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return inventory, nil
}

func (r *sqliteReportRepo) Activity(ctx context.Context) ([]models.MemberActivity, error) {
	// LEFT JOIN: hiç ödünç almamış üyeler de 0 ile görünür.
	query := `
		SELECT m.member_id, m.first_name, m.last_name, COUNT(br.id) AS borrow_count
		FROM members m
		LEFT JOIN borrowings br ON br.member_id = m.member_id
		GROUP BY m.member_id
		ORDER BY borrow_count DESC, m.member_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity report: %w", err)
	}
	defer rows.Close()

	var activity []models.MemberActivity
	for rows.Next() {
		var a models.MemberActivity
		if err := rows.Scan(&a.MemberID, &a.FirstName, &a.LastName, &a.BorrowCount); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activity = append(activity, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activity, nil
}
