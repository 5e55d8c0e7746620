// Package database — şema ve örnek veri endpoint'lerinin arka tarafı.
//
// GET /api/setup ve GET /api/seed eski istemcilerle uyumluluk için korunur:
// şema zaten açılışta migration'larla kurulur, setup sadece baseline DDL'i
// tekrar çalıştırır (tamamı IF NOT EXISTS olduğu için idempotent).
package database

import (
	"context"
	"fmt"
	"io/fs"
)

// seedStatements, sabit örnek satırları ekler.
// INSERT OR IGNORE: primary key zaten varsa satıra dokunulmaz — seed sonrası
// değişmiş (ör. ödünç verilmiş) bir kitabın sayaçları asla ezilmez.
var seedStatements = []string{
	`INSERT OR IGNORE INTO books
		(isbn, title, author, publisher, publication_year, category, total_copies, available_copies)
	VALUES
		('9780061122415', 'To Kill a Mockingbird', 'Harper Lee', 'Harper Perennial', 1960, 'Fiction', 3, 3),
		('9780451524935', '1984', 'George Orwell', 'Signet Classic', 1949, 'Fiction', 2, 2),
		('9780141439518', 'Pride and Prejudice', 'Jane Austen', 'Penguin Classics', 1813, 'Romance', 2, 2),
		('9780307474278', 'The Da Vinci Code', 'Dan Brown', 'Anchor', 2003, 'Thriller', 4, 4),
		('9780132350884', 'Clean Code', 'Robert C. Martin', 'Prentice Hall', 2008, 'Technology', 2, 2)`,
	`INSERT OR IGNORE INTO members
		(member_id, first_name, last_name, email, phone, address)
	VALUES
		('M001', 'Alice', 'Johnson', 'alice.johnson@example.com', '555-0101', '12 Oak Street'),
		('M002', 'Bob', 'Smith', 'bob.smith@example.com', '555-0102', '34 Elm Avenue'),
		('M003', 'Carol', 'Davis', 'carol.davis@example.com', '555-0103', '56 Pine Road')`,
}

// EnsureSchema, baseline şemayı (yoksa) oluşturur.
// runMigrations ile aynı dosya listesi üzerinden yürür — yeni bir migration
// dosyası eklendiğinde burası otomatik kapsar. Tüm DDL IF NOT EXISTS olduğu
// için tekrar tekrar çağrılabilir.
func (db *DB) EnsureSchema(ctx context.Context) error {
	files, err := db.migrationFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := fs.ReadFile(db.migrations, file)
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", file, err)
		}

		for i, stmt := range splitStatements(string(content)) {
			if _, err := db.Conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to ensure schema (%s, statement %d): %w", file, i+1, err)
			}
		}
	}

	return nil
}

// Seed, örnek kitap ve üye satırlarını ekler. Idempotent — bkz. seedStatements.
func (db *DB) Seed(ctx context.Context) error {
	for _, stmt := range seedStatements {
		if _, err := db.Conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}
	return nil
}

// Now, veritabanının şu anki zamanını döner.
// GET /api/test bağlantı probe'u için kullanılır — sorgu gerçekten
// store'a gidip döndüğünü kanıtlar.
func (db *DB) Now(ctx context.Context) (string, error) {
	var now string
	if err := db.Conn.QueryRowContext(ctx, "SELECT datetime('now')").Scan(&now); err != nil {
		return "", fmt.Errorf("failed to query current time: %w", err)
	}
	return now, nil
}
