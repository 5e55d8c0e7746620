package models

import (
	"fmt"
	"strings"
	"time"
)

// BorrowingStatus, bir ödünç kaydının durumunu temsil eder.
// Go'da enum yerine typed constant kullanılır.
type BorrowingStatus string

const (
	StatusBorrowed BorrowingStatus = "borrowed"
	StatusReturned BorrowingStatus = "returned"
)

// Borrowing, ödünç defterindeki tek bir satırı temsil eder.
// Üye ile kitap arasındaki many-to-many ilişkinin transaction metadata'sıdır.
// ReturnDate nil ise kayıt "açık"tır — kitap hâlâ dışarıdadır.
// Tarihler "2006-01-02" formatında TEXT olarak saklanır; API'de de aynı
// formatta taşınır, time.Time dönüşümüne gerek kalmaz.
type Borrowing struct {
	ID         int64           `json:"id"`
	MemberID   string          `json:"member_id"`
	ISBN       string          `json:"isbn"`
	BorrowDate string          `json:"borrow_date"`
	DueDate    string          `json:"due_date"`
	ReturnDate *string         `json:"return_date"`
	Status     BorrowingStatus `json:"status"`
}

// BorrowingDetail, açık ödünç listesi için üye + kitap bilgisiyle
// zenginleştirilmiş satır. GET /api/borrowings bu yapıyı döner.
type BorrowingDetail struct {
	Borrowing
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Author    string `json:"author"`
}

// defaultLoanDays, due_date gönderilmediğinde kullanılan ödünç süresi.
const defaultLoanDays = 14

// dateLayout, tüm ödünç tarihlerinin formatı.
const dateLayout = "2006-01-02"

// BorrowRequest, ödünç alma isteği (POST /api/borrow).
// BorrowDate/DueDate boş bırakılabilir — bugün ve bugün+14 gün varsayılır.
type BorrowRequest struct {
	MemberID   string `json:"member_id"`
	ISBN       string `json:"isbn"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date"`
}

// Validate, isteği doğrular ve boş tarihleri varsayılanlarla doldurur.
func (r *BorrowRequest) Validate() error {
	r.MemberID = strings.TrimSpace(r.MemberID)
	r.ISBN = strings.TrimSpace(r.ISBN)

	if r.MemberID == "" {
		return fmt.Errorf("member_id is required")
	}
	if r.ISBN == "" {
		return fmt.Errorf("isbn is required")
	}

	if r.BorrowDate == "" {
		r.BorrowDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, r.BorrowDate); err != nil {
		return fmt.Errorf("borrow_date must be in YYYY-MM-DD format")
	}

	if r.DueDate == "" {
		borrowed, _ := time.Parse(dateLayout, r.BorrowDate)
		r.DueDate = borrowed.AddDate(0, 0, defaultLoanDays).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, r.DueDate); err != nil {
		return fmt.Errorf("due_date must be in YYYY-MM-DD format")
	}

	return nil
}

// ReturnRequest, iade isteği (POST /api/return).
// ReturnDate boş bırakılabilir — bugün varsayılır.
type ReturnRequest struct {
	MemberID   string `json:"member_id"`
	ISBN       string `json:"isbn"`
	ReturnDate string `json:"return_date"`
}

// Validate, isteği doğrular ve boş iade tarihini bugünle doldurur.
func (r *ReturnRequest) Validate() error {
	r.MemberID = strings.TrimSpace(r.MemberID)
	r.ISBN = strings.TrimSpace(r.ISBN)

	if r.MemberID == "" {
		return fmt.Errorf("member_id is required")
	}
	if r.ISBN == "" {
		return fmt.Errorf("isbn is required")
	}

	if r.ReturnDate == "" {
		r.ReturnDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, r.ReturnDate); err != nil {
		return fmt.Errorf("return_date must be in YYYY-MM-DD format")
	}

	return nil
}
