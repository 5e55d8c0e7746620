// Package handlers, HTTP request handler'larını içerir.
// Handler'lar "thin"dir — sadece HTTP parse + service call + response write.
// Status code seçimi pkg.Error içindeki merkezi eşlemeye bırakılır.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/services"
)

// BookHandler, kitap katalog endpoint'lerini yöneten struct.
type BookHandler struct {
	bookService services.BookService
}

// NewBookHandler, constructor.
func NewBookHandler(bookService services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List godoc
// GET /api/books
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, books)
}

// Search godoc
// GET /api/books/search?q=
// Boş q tüm katalogu döner — pattern "contains empty string" her satırla eşleşir.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, books)
}

// Get godoc
// GET /api/books/{isbn}
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	book, err := h.bookService.GetByISBN(r.Context(), isbn)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, book)
}

// Create godoc
// POST /api/books
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, book)
}

// Update godoc
// PUT /api/books/{isbn}
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	var req models.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.Update(r.Context(), isbn, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, book)
}

// Delete godoc
// DELETE /api/books/{isbn}
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	if err := h.bookService.Delete(r.Context(), isbn); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "book deleted"})
}
