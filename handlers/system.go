package handlers

import (
	"net/http"

	"github.com/Nikhil170404/servver/database"
	"github.com/Nikhil170404/servver/pkg"
)

// SystemHandler, bağlantı probe'u ve şema/örnek veri endpoint'lerini yönetir.
// Şemaya dokunan tek katman database paketi olduğu için bu handler
// doğrudan *database.DB alır.
//
// Şema açılışta migration'larla zaten kurulur; /api/setup ve /api/seed
// orijinal API ile uyumluluk için korunur, ikisi de idempotenttir.
type SystemHandler struct {
	db *database.DB
}

// NewSystemHandler, constructor.
func NewSystemHandler(db *database.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Test godoc
// GET /api/test
// Store'un şu anki zamanını döner — sorgu gerçekten DB'ye gidip döndüğünü kanıtlar.
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	now, err := h.db.Now(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"time": now})
}

// Setup godoc
// GET /api/setup
// Baseline şemayı (yoksa) oluşturur — tüm DDL IF NOT EXISTS.
func (h *SystemHandler) Setup(w http.ResponseWriter, r *http.Request) {
	if err := h.db.EnsureSchema(r.Context()); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "schema ready"})
}

// Seed godoc
// GET /api/seed
// Sabit örnek satırları ekler (INSERT OR IGNORE — mevcut satırlara dokunmaz).
func (h *SystemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Seed(r.Context()); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "sample data seeded"})
}
