package handlers

import (
	"log"
	"net/http"

	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/pkg/email"
	"github.com/Nikhil170404/servver/repository"
)

// ReportHandler, read-only rapor endpoint'lerini yöneten struct.
// Raporlar SQL aggregate'lerinden ibarettir — araya service katmanı
// koymaya gerek yok, handler doğrudan repository alır.
type ReportHandler struct {
	reportRepo repository.ReportRepository
	mailer     email.OverdueNoticeSender
}

// NewReportHandler, constructor.
func NewReportHandler(reportRepo repository.ReportRepository, mailer email.OverdueNoticeSender) *ReportHandler {
	return &ReportHandler{
		reportRepo: reportRepo,
		mailer:     mailer,
	}
}

// Overdue godoc
// GET /api/reports/overdue
func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.reportRepo.Overdue(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, overdue)
}

// Popular godoc
// GET /api/reports/popular
func (h *ReportHandler) Popular(w http.ResponseWriter, r *http.Request) {
	popular, err := h.reportRepo.Popular(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, popular)
}

// Inventory godoc
// GET /api/reports/inventory
func (h *ReportHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.reportRepo.Inventory(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, inventory)
}

// Activity godoc
// GET /api/reports/activity
func (h *ReportHandler) Activity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.reportRepo.Activity(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, activity)
}

// NotifyOverdueResponse, gecikme bildirimi endpoint'inin response formatı.
type NotifyOverdueResponse struct {
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

// NotifyOverdue godoc
// POST /api/reports/overdue/notify
//
// Her gecikmiş üyeye hatırlatma email'i gönderir. Tek bir gönderim hatası
// tüm isteği düşürmez — başarı/hata sayıları ayrı ayrı raporlanır.
// MAIL_API_KEY yapılandırılmamışsa log-only sender wire edilmiştir,
// endpoint aynı şekilde çalışır ama gerçek email çıkmaz.
func (h *ReportHandler) NotifyOverdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.reportRepo.Overdue(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	resp := NotifyOverdueResponse{}
	for _, o := range overdue {
		notice := email.OverdueNotice{
			ToEmail:     o.Email,
			MemberName:  o.FirstName + " " + o.LastName,
			BookTitle:   o.Title,
			DueDate:     o.DueDate,
			DaysOverdue: o.DaysOverdue,
		}

		if err := h.mailer.SendOverdueNotice(r.Context(), notice); err != nil {
			log.Printf("[mail] overdue notice to %s failed: %v", o.Email, err)
			resp.Failed++
			continue
		}
		resp.Notified++
	}

	pkg.JSON(w, http.StatusOK, resp)
}
