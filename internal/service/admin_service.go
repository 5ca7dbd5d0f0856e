package service

import (
	"context"

	"github.com/google/uuid"

	"tooldocker/internal/model"
	"tooldocker/internal/repository"
)

// AdminService is the cross-tenant console: read everything, flip approvals.
type AdminService interface {
	ListUsers(ctx context.Context) ([]EnrichedUser, error)
	ListProducts(ctx context.Context) ([]EnrichedProduct, error)
	SetApproval(ctx context.Context, userID uuid.UUID, approve bool) (*model.UserApproval, error)
}

type adminService struct {
	productRepo  repository.ProductRepository
	profileRepo  repository.ProfileRepository
	approvalRepo repository.ApprovalRepository
	approvals    ApprovalService
}

// NewAdminService creates a new admin service.
func NewAdminService(
	productRepo repository.ProductRepository,
	profileRepo repository.ProfileRepository,
	approvalRepo repository.ApprovalRepository,
	approvals ApprovalService,
) AdminService {
	return &adminService{
		productRepo:  productRepo,
		profileRepo:  profileRepo,
		approvalRepo: approvalRepo,
		approvals:    approvals,
	}
}

// ListUsers returns every profile with its approval state left-joined.
func (s *adminService) ListUsers(ctx context.Context) ([]EnrichedUser, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	approvals, err := s.approvalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichUsers(profiles, approvals), nil
}

// ListProducts returns every product newest-first with seller profiles.
func (s *adminService) ListProducts(ctx context.Context) ([]EnrichedProduct, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Enrich(products, profiles), nil
}

func (s *adminService) SetApproval(ctx context.Context, userID uuid.UUID, approve bool) (*model.UserApproval, error) {
	return s.approvals.SetApproval(ctx, userID, approve)
}
