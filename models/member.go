package models

import (
	"fmt"
	"strings"
)

// Member, kayıtlı bir kütüphane üyesini temsil eder.
// MemberID primary key'dir ("M001" gibi kullanıcıya görünür bir kod).
// JoinDate DB tarafında varsayılan olarak kayıt tarihine ayarlanır.
type Member struct {
	MemberID  string `json:"member_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	JoinDate  string `json:"join_date"`
}

// CreateMemberRequest, yeni üye kayıt isteği.
type CreateMemberRequest struct {
	MemberID  string `json:"member_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Validate, CreateMemberRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateMemberRequest) Validate() error {
	r.MemberID = strings.TrimSpace(r.MemberID)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	if r.MemberID == "" {
		return fmt.Errorf("member_id is required")
	}
	if r.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}

	return nil
}

// Member, request'ten Member modeli üretir (JoinDate'i DB doldurur).
func (r *CreateMemberRequest) Member() *Member {
	return &Member{
		MemberID:  r.MemberID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// UpdateMemberRequest, üye güncelleme isteği (PUT — tüm alanlar).
// MemberID path'ten gelir, body'de bulunmaz.
type UpdateMemberRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Validate, UpdateMemberRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateMemberRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	if r.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}

	return nil
}
