package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tooldocker/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// FindByName matches the product name case-insensitively.
	FindByName(ctx context.Context, name string) (*model.Product, error)
	// FindOwned returns the product only when it belongs to ownerID.
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Product, error)
	// ListByOwner returns ownerID's products ordered by created_at descending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Product, error)
	// ListAll returns every product ordered by created_at descending.
	ListAll(ctx context.Context) ([]model.Product, error)
	// DeleteOwned deletes by id AND owner so a non-owner call is a no-op.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", ownerID).
			Order("created_at DESC").
			Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := retryRead(ctx, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Product{}).Error
}
