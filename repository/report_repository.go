package repository

import (
	"context"

	"github.com/Nikhil170404/servver/models"
)

// ReportRepository, read-only rapor sorguları için interface.
// Hiçbir metod mutasyon yapmaz; tüm hesaplama SQL aggregate'lerindedir.
type ReportRepository interface {
	// Overdue, iade tarihi geçmiş açık ödünçleri gecikme gününe göre
	// azalan sırada döner.
	Overdue(ctx context.Context) ([]models.OverdueBorrowing, error)

	// Popular, tüm zamanların ödünç sayısına göre ilk 10 kitabı döner.
	Popular(ctx context.Context) ([]models.PopularBook, error)

	// Inventory, kategori başına kitap/kopya/dışarıdaki kopya özetini döner.
	Inventory(ctx context.Context) ([]models.CategoryInventory, error)

	// Activity, üye başına tüm zamanların ödünç sayısını azalan sırada döner.
	Activity(ctx context.Context) ([]models.MemberActivity, error)
}
