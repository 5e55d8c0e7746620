// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service ihtiyaç duyduğu repository interface'lerini constructor
// injection ile alır. Circulation ayrıca *sql.DB alır — ödünç/iade
// transaction'larını kendisi açar.
package main

import (
	"database/sql"
	"log"

	"github.com/Nikhil170404/servver/config"
	"github.com/Nikhil170404/servver/pkg/email"
	"github.com/Nikhil170404/servver/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Book        services.BookService
	Member      services.MemberService
	Circulation services.CirculationService
}

// initServices, tüm service'leri oluşturur.
func initServices(db *sql.DB, repos *Repositories) *Services {
	return &Services{
		Book:        services.NewBookService(repos.Book, repos.Borrowing),
		Member:      services.NewMemberService(repos.Member, repos.Borrowing),
		Circulation: services.NewCirculationService(db, repos.Borrowing),
	}
}

// initMailer, gecikme bildirimi sender'ını seçer.
// API key yoksa log-only sender — endpoint çalışır ama email çıkmaz.
func initMailer(cfg *config.Config) email.OverdueNoticeSender {
	if cfg.Mail.APIKey == "" {
		log.Println("[mail] MAIL_API_KEY not set, overdue notices will be logged only")
		return email.NewLogSender()
	}
	return email.NewResendSender(cfg.Mail.APIKey, cfg.Mail.FromEmail)
}
