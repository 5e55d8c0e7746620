package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/services"
)

// CirculationHandler, ödünç alma/iade endpoint'lerini yöneten struct.
type CirculationHandler struct {
	circulationService services.CirculationService
}

// NewCirculationHandler, constructor.
func NewCirculationHandler(circulationService services.CirculationService) *CirculationHandler {
	return &CirculationHandler{circulationService: circulationService}
}

// ListOpen godoc
// GET /api/borrowings
// Tüm açık ödünçler, üye + kitap bilgisiyle, due_date sırasında.
func (h *CirculationHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	borrowings, err := h.circulationService.ListOpen(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, borrowings)
}

// Borrow godoc
// POST /api/borrow
// 404: kitap/üye yok, 409: çift için açık ödünç zaten var,
// 400: kopya kalmamış, 500: store hatası.
func (h *CirculationHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req models.BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	borrowing, err := h.circulationService.Borrow(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, borrowing)
}

// Return godoc
// POST /api/return
// 404: açık ödünç yok, 500: store hatası.
func (h *CirculationHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req models.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	borrowing, err := h.circulationService.Return(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, borrowing)
}
