package repository

import (
	"context"

	"github.com/Nikhil170404/servver/models"
)

// MemberRepository, üye veritabanı işlemleri için interface.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, memberID string) (*models.Member, error)
	GetAll(ctx context.Context) ([]models.Member, error)
	Search(ctx context.Context, query string) ([]models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, memberID string) error
}
