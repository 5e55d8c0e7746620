// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Handler'lar "thin"dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/handlers"
	"github.com/Nikhil170404/servver/pkg/email"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Book        *handlers.BookHandler
	Member      *handlers.MemberHandler
	Circulation *handlers.CirculationHandler
	Report      *handlers.ReportHandler
	System      *handlers.SystemHandler
}

// initHandlers, tüm handler'ları dependency'leri ile oluşturur.
// Report handler service yerine doğrudan repository alır (raporlar salt SQL),
// System handler şemaya dokunabilmek için *database.DB alır.
func initHandlers(svcs *Services, repos *Repositories, db *database.DB, mailer email.OverdueNoticeSender) *Handlers {
	return &Handlers{
		Book:        handlers.NewBookHandler(svcs.Book),
		Member:      handlers.NewMemberHandler(svcs.Member),
		Circulation: handlers.NewCirculationHandler(svcs.Circulation),
		Report:      handlers.NewReportHandler(repos.Report, mailer),
		System:      handlers.NewSystemHandler(db),
	}
}
