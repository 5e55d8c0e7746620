package models

// Rapor sorgularının satır tipleri. Hepsi read-only aggregate'lerdir —
// repository katmanındaki SQL dışında hesaplama yapılmaz.

// OverdueBorrowing, iade tarihi geçmiş açık bir ödünç kaydı.
// Email alanı gecikme bildirimi gönderirken kullanılır.
type OverdueBorrowing struct {
	ID          int64  `json:"id"`
	MemberID    string `json:"member_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	BorrowDate  string `json:"borrow_date"`
	DueDate     string `json:"due_date"`
	DaysOverdue int    `json:"days_overdue"`
}

// PopularBook, tüm zamanların ödünç sayısına göre sıralanmış kitap.
type PopularBook struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	BorrowCount int    `json:"borrow_count"`
}

// CategoryInventory, kategori başına stok özeti.
// CopiesOnLoan = total_copies - available_copies toplamı.
type CategoryInventory struct {
	Category     string `json:"category"`
	BookCount    int    `json:"book_count"`
	TotalCopies  int    `json:"total_copies"`
	CopiesOnLoan int    `json:"copies_on_loan"`
}

// MemberActivity, üye başına tüm zamanların ödünç sayısı.
// Hiç ödünç almamış üyeler de 0 ile listelenir.
type MemberActivity struct {
	MemberID    string `json:"member_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BorrowCount int    `json:"borrow_count"`
}
