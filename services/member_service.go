package services

import (
	"context"
	"fmt"

	"github.com/Nikhil170404/servver/models"
	"github.com/Nikhil170404/servver/pkg"
	"github.com/Nikhil170404/servver/repository"
)

// MemberService, üye iş mantığı interface'i.
type MemberService interface {
	GetAll(ctx context.Context) ([]models.Member, error)
	GetByID(ctx context.Context, memberID string) (*models.Member, error)
	Search(ctx context.Context, query string) ([]models.Member, error)
	Create(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error)
	Update(ctx context.Context, memberID string, req *models.UpdateMemberRequest) (*models.Member, error)
	Delete(ctx context.Context, memberID string) error
}

type memberService struct {
	memberRepo    repository.MemberRepository
	borrowingRepo repository.BorrowingRepository
}

// NewMemberService, constructor.
func NewMemberService(
	memberRepo repository.MemberRepository,
	borrowingRepo repository.BorrowingRepository,
) MemberService {
	return &memberService{
		memberRepo:    memberRepo,
		borrowingRepo: borrowingRepo,
	}
}

func (s *memberService) GetAll(ctx context.Context) ([]models.Member, error) {
	return s.memberRepo.GetAll(ctx)
}

func (s *memberService) GetByID(ctx context.Context, memberID string) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}

func (s *memberService) Search(ctx context.Context, query string) ([]models.Member, error) {
	return s.memberRepo.Search(ctx, query)
}

func (s *memberService) Create(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member := req.Member()
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) Update(ctx context.Context, memberID string, req *models.UpdateMemberRequest) (*models.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member := &models.Member{
		MemberID:  memberID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	// join_date güncellenmez — güncel satırı yeniden oku.
	return s.memberRepo.GetByID(ctx, memberID)
}

func (s *memberService) Delete(ctx context.Context, memberID string) error {
	// Üyenin dışarıda kitabı varken kaydı silinemez.
	open, err := s.borrowingRepo.CountOpenByMember(ctx, memberID)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("%w: member has %d open borrowing(s)", pkg.ErrConflict, open)
	}

	return s.memberRepo.Delete(ctx, memberID)
}
