package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tooldocker/internal/model"
)

// ApprovalRepository defines user_approvals persistence operations.
type ApprovalRepository interface {
	Find(ctx context.Context, userID uuid.UUID) (*model.UserApproval, error)
	// Upsert atomically inserts or updates the single approval row for userID.
	Upsert(ctx context.Context, userID uuid.UUID, approve bool, approvedAt *time.Time) (*model.UserApproval, error)
	List(ctx context.Context) ([]model.UserApproval, error)
}

type approvalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new approval repository.
func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

func (r *approvalRepository) Find(ctx context.Context, userID uuid.UUID) (*model.UserApproval, error) {
	var approval model.UserApproval
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).First(&approval).Error
	})
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// Upsert relies on ON CONFLICT (user_id) so two concurrent first-time
// decisions cannot create duplicate rows.
func (r *approvalRepository) Upsert(ctx context.Context, userID uuid.UUID, approve bool, approvedAt *time.Time) (*model.UserApproval, error) {
	approval := model.UserApproval{
		UserID:     userID,
		IsApproved: approve,
		ApprovedAt: approvedAt,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_approved", "approved_at", "updated_at"}),
		}).
		Create(&approval).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

func (r *approvalRepository) List(ctx context.Context) ([]model.UserApproval, error) {
	var approvals []model.UserApproval
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Find(&approvals).Error
	})
	if err != nil {
		return nil, err
	}
	return approvals, nil
}
