// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Path'ler orijinal API ile birebir aynıdır — mevcut istemciler
// değişiklik yapmadan çalışmaya devam eder.
package main

import "net/http"

// initRoutes, tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Go 1.22 mux'ında literal segment'ler wildcard'lardan
// daha spesifiktir — "/api/books/search", "/api/books/{isbn}" ile çakışmaz.
func initRoutes(mux *http.ServeMux, h *Handlers) {
	// System — probe, şema, örnek veri
	mux.HandleFunc("GET /api/test", h.System.Test)
	mux.HandleFunc("GET /api/setup", h.System.Setup)
	mux.HandleFunc("GET /api/seed", h.System.Seed)

	// Books
	mux.HandleFunc("GET /api/books", h.Book.List)
	mux.HandleFunc("GET /api/books/search", h.Book.Search)
	mux.HandleFunc("GET /api/books/{isbn}", h.Book.Get)
	mux.HandleFunc("POST /api/books", h.Book.Create)
	mux.HandleFunc("PUT /api/books/{isbn}", h.Book.Update)
	mux.HandleFunc("DELETE /api/books/{isbn}", h.Book.Delete)

	// Members
	mux.HandleFunc("GET /api/members", h.Member.List)
	mux.HandleFunc("GET /api/members/search", h.Member.Search)
	mux.HandleFunc("GET /api/members/{id}", h.Member.Get)
	mux.HandleFunc("POST /api/members", h.Member.Create)
	mux.HandleFunc("PUT /api/members/{id}", h.Member.Update)
	mux.HandleFunc("DELETE /api/members/{id}", h.Member.Delete)

	// Circulation — ödünç alma/iade + açık ödünç listesi
	mux.HandleFunc("GET /api/borrowings", h.Circulation.ListOpen)
	mux.HandleFunc("POST /api/borrow", h.Circulation.Borrow)
	mux.HandleFunc("POST /api/return", h.Circulation.Return)

	// Reports — read-only aggregate'ler
	mux.HandleFunc("GET /api/reports/overdue", h.Report.Overdue)
	mux.HandleFunc("GET /api/reports/popular", h.Report.Popular)
	mux.HandleFunc("GET /api/reports/inventory", h.Report.Inventory)
	mux.HandleFunc("GET /api/reports/activity", h.Report.Activity)
	mux.HandleFunc("POST /api/reports/overdue/notify", h.Report.NotifyOverdue)
}
