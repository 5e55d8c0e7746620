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

const memberColumns = `member_id, first_name, last_name, email, phone, address, join_date`

// sqliteMemberRepo, MemberRepository interface'inin SQLite implementasyonu.
type sqliteMemberRepo struct {
	db database.TxQuerier
}

// NewSQLiteMemberRepo, constructor — interface döner.
func NewSQLiteMemberRepo(db database.TxQuerier) MemberRepository {
	return &sqliteMemberRepo{db: db}
}

func (r *sqliteMemberRepo) Create(ctx context.Context, member *models.Member) error {
	// join_date DB default'u ile dolar; RETURNING ile modele geri okunur.
	query := `
		INSERT INTO members (member_id, first_name, last_name, email, phone, address)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING join_date`

	err := r.db.QueryRowContext(ctx, query,
		member.MemberID,
		member.FirstName,
		member.LastName,
		member.Email,
		member.Phone,
		member.Address,
	).Scan(&member.JoinDate)
	if err != nil {
		// UNIQUE ihlali (member_id veya email) dahil her DB hatası yukarı taşınır (→ 500).
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

func (r *sqliteMemberRepo) GetByID(ctx context.Context, memberID string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = ?`

	member := &models.Member{}
	err := scanMember(r.db.QueryRowContext(ctx, query, memberID), member)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by id: %w", err)
	}

	return member, nil
}

func (r *sqliteMemberRepo) GetAll(ctx context.Context) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY member_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// Search, ad/soyad/üye kodu/email üzerinde substring araması yapar.
// Boş query tüm üyeleri döner (GetAll ile aynı sıralama).
func (r *sqliteMemberRepo) Search(ctx context.Context, query string) ([]models.Member, error) {
	sqlQuery := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE first_name LIKE ? OR last_name LIKE ? OR member_id LIKE ? OR email LIKE ?
		ORDER BY member_id ASC`

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

func (r *sqliteMemberRepo) Update(ctx context.Context, member *models.Member) error {
	query := `
		UPDATE members
		SET first_name = ?, last_name = ?, email = ?, phone = ?, address = ?
		WHERE member_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		member.FirstName,
		member.LastName,
		member.Email,
		member.Phone,
		member.Address,
		member.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
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

func (r *sqliteMemberRepo) Delete(ctx context.Context, memberID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE member_id = ?`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
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

func scanMember(row rowScanner, member *models.Member) error {
	return row.Scan(
		&member.MemberID,
		&member.FirstName,
		&member.LastName,
		&member.Email,
		&member.Phone,
		&member.Address,
		&member.JoinDate,
	)
}

func collectMembers(rows *sql.Rows) ([]models.Member, error) {
	var members []models.Member
	for rows.Next() {
		var member models.Member
		if err := scanMember(rows, &member); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}
