package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tooldocker/internal/model"
)

// ProfileRepository defines profile persistence operations. Profiles are
// created at registration and read-only afterwards.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Find(&profiles).Error
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
