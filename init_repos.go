// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository aynı *sql.DB bağlantısını alır ve interface döner.
package main

import (
	"database/sql"

	"github.com/Nikhil170404/servver/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
// Ayrı ayrı değişkenler yerine tek struct — fonksiyon imzaları temiz kalır,
// yeni repository eklendiğinde sadece burası güncellenir.
type Repositories struct {
	Book      repository.BookRepository
	Member    repository.MemberRepository
	Borrowing repository.BorrowingRepository
	Report    repository.ReportRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// Go'nun sql.DB'si thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		Book:      repository.NewSQLiteBookRepo(conn),
		Member:    repository.NewSQLiteMemberRepo(conn),
		Borrowing: repository.NewSQLiteBorrowingRepo(conn),
		Report:    repository.NewSQLiteReportRepo(conn),
	}
}
