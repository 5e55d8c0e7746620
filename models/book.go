// Package models, veritabanı tablolarının Go karşılıklarını ve
// HTTP request/response yapılarını içerir.
package models

import (
	"fmt"
	"strings"
)

// Book, katalogdaki bir kitabı temsil eder.
// ISBN primary key'dir — katalogda her kitap tek satırdır,
// fiziksel kopya sayısı total_copies/available_copies ile izlenir.
// Invariant: 0 ≤ available_copies ≤ total_copies (şemada CHECK ile desteklenir).
type Book struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// CreateBookRequest, yeni kitap ekleme isteği.
// AvailableCopies pointer'dır — gönderilmezse TotalCopies'e eşitlenir
// (yeni eklenen kitabın tüm kopyaları raftadır).
type CreateBookRequest struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies *int   `json:"available_copies"`
}

// Validate, CreateBookRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateBookRequest) Validate() error {
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)

	if r.ISBN == "" {
		return fmt.Errorf("isbn is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Author == "" {
		return fmt.Errorf("author is required")
	}
	if r.TotalCopies <= 0 {
		r.TotalCopies = 1
	}
	if r.AvailableCopies != nil {
		if *r.AvailableCopies < 0 || *r.AvailableCopies > r.TotalCopies {
			return fmt.Errorf("available_copies must be between 0 and total_copies")
		}
	}

	return nil
}

// Book, request'ten Book modeli üretir.
func (r *CreateBookRequest) Book() *Book {
	available := r.TotalCopies
	if r.AvailableCopies != nil {
		available = *r.AvailableCopies
	}
	return &Book{
		ISBN:            r.ISBN,
		Title:           r.Title,
		Author:          r.Author,
		Publisher:       r.Publisher,
		PublicationYear: r.PublicationYear,
		Category:        r.Category,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: available,
	}
}

// UpdateBookRequest, kitap güncelleme isteği (PUT — tüm alanlar).
// ISBN path'ten gelir, body'de bulunmaz.
type UpdateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// Validate, UpdateBookRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateBookRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)

	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Author == "" {
		return fmt.Errorf("author is required")
	}
	if r.TotalCopies <= 0 {
		return fmt.Errorf("total_copies must be positive")
	}
	if r.AvailableCopies < 0 || r.AvailableCopies > r.TotalCopies {
		return fmt.Errorf("available_copies must be between 0 and total_copies")
	}

	return nil
}
