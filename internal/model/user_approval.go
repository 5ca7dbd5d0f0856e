package model

import (
	"time"

	"github.com/google/uuid"
)

// UserApproval gates seller features for a profile. Rows are created lazily
// on the first approval decision, never at signup. At most one row per user.
type UserApproval struct {
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;primaryKey"`
	IsApproved bool       `json:"is_approved" gorm:"not null;default:false"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName keeps the externally defined table name.
func (UserApproval) TableName() string { return "user_approvals" }
