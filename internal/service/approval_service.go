package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tooldocker/internal/cache"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
)

// Approval state is cached briefly so the per-request gate stays cheap; the
// cache is invalidated on every decision so a revoke is seen on the caller's
// next sensitive fetch.
const approvalCacheTTL = 30 * time.Second

// ApprovalService reads and writes the seller approval gate.
type ApprovalService interface {
	// IsApproved treats a missing row as "not approved", never as an error.
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
	GetApproval(ctx context.Context, userID uuid.UUID) (*model.UserApproval, error)
	SetApproval(ctx context.Context, userID uuid.UUID, approve bool) (*model.UserApproval, error)
}

type approvalService struct {
	repo  repository.ApprovalRepository
	cache *cache.Client
}

// NewApprovalService creates a new approval service.
func NewApprovalService(repo repository.ApprovalRepository, cache *cache.Client) ApprovalService {
	return &approvalService{repo: repo, cache: cache}
}

func (s *approvalService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("approval:%s", userID.String())
}

func (s *approvalService) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached bool
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	approval, err := s.repo.Find(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	if payload, err := json.Marshal(approval.IsApproved); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, approvalCacheTTL)
	}
	return approval.IsApproved, nil
}

// GetApproval returns the caller's approval row, synthesizing an unapproved
// one when none exists yet.
func (s *approvalService) GetApproval(ctx context.Context, userID uuid.UUID) (*model.UserApproval, error) {
	approval, err := s.repo.Find(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &model.UserApproval{UserID: userID, IsApproved: false}, nil
		}
		return nil, err
	}
	return approval, nil
}

// SetApproval flips the gate. approved_at is set on approve and cleared on
// revoke; the row is created lazily on the first decision.
func (s *approvalService) SetApproval(ctx context.Context, userID uuid.UUID, approve bool) (*model.UserApproval, error) {
	var approvedAt *time.Time
	if approve {
		now := time.Now().UTC()
		approvedAt = &now
	}

	approval, err := s.repo.Upsert(ctx, userID, approve, approvedAt)
	if err != nil {
		return nil, fmt.Errorf("set approval for %s: %w", userID, err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return approval, nil
}
