package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tooldocker/internal/cache"
	"tooldocker/internal/errors"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
	"tooldocker/internal/storage"
)

// ImageUpload is an optional image file attached to a create or update.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// DashboardService is the seller-facing, ownership-scoped product CRUD.
// Every operation re-checks the approval gate so a revoke takes effect on
// the very next call, not the next login.
type DashboardService interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]EnrichedProduct, error)
	Create(ctx context.Context, userID uuid.UUID, in ProductInput, image *ImageUpload) (*model.Product, error)
	Update(ctx context.Context, userID, productID uuid.UUID, in ProductInput, image *ImageUpload) (*model.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type dashboardService struct {
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	approvals   ApprovalService
	store       storage.Store
	cache       *cache.Client
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	productRepo repository.ProductRepository,
	profileRepo repository.ProfileRepository,
	approvals ApprovalService,
	store storage.Store,
	cache *cache.Client,
) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		profileRepo: profileRepo,
		approvals:   approvals,
		store:       store,
		cache:       cache,
	}
}

func (s *dashboardService) gate(ctx context.Context, userID uuid.UUID) error {
	approved, err := s.approvals.IsApproved(ctx, userID)
	if err != nil {
		return fmt.Errorf("check approval: %w", err)
	}
	if !approved {
		return errors.ErrNotApproved
	}
	return nil
}

// ListOwned returns the caller's products newest-first with the caller's own
// profile attached.
func (s *dashboardService) ListOwned(ctx context.Context, userID uuid.UUID) ([]EnrichedProduct, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	var profiles []model.Profile
	if owner, err := s.profileRepo.FindByID(ctx, userID); err == nil {
		profiles = []model.Profile{*owner}
	}
	return Enrich(products, profiles), nil
}

// Create validates the input, uploads the image first, then writes the row.
// An upload failure aborts the create; an insert failure removes the object
// it just uploaded so no orphan is left behind.
func (s *dashboardService) Create(ctx context.Context, userID uuid.UUID, in ProductInput, image *ImageUpload) (*model.Product, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	validated, err := ValidateProductInput(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.profileRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("check owner profile: %w", err)
	}

	var imageURL string
	if image != nil {
		imageURL, err = s.store.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			log.Printf("upload product image: %v", err)
			return nil, errors.ErrStorageUpload
		}
	}

	product := &model.Product{
		UserID:      userID,
		Name:        validated.Name,
		Description: validated.Description,
		Category:    validated.Category,
		Price:       validated.Price,
		Stock:       validated.Stock,
		ImageURL:    imageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if imageURL != "" {
			if rmErr := s.store.Remove(ctx, storage.ObjectPath(imageURL)); rmErr != nil {
				log.Printf("rollback uploaded image: %v", rmErr)
			}
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogFeedCacheKey)
	return product, nil
}

// Update validates and rewrites the row, keeping the previous image URL when
// no new file is supplied. The mutation is scoped by id AND owner.
func (s *dashboardService) Update(ctx context.Context, userID, productID uuid.UUID, in ProductInput, image *ImageUpload) (*model.Product, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	validated, err := ValidateProductInput(in)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindOwned(ctx, productID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	imageURL := product.ImageURL
	if image != nil {
		imageURL, err = s.store.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			log.Printf("upload product image: %v", err)
			return nil, errors.ErrStorageUpload
		}
	}

	product.Name = validated.Name
	product.Description = validated.Description
	product.Category = validated.Category
	product.Price = validated.Price
	product.Stock = validated.Stock
	product.ImageURL = imageURL

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogFeedCacheKey)
	return product, nil
}

// Delete removes the caller's product and its stored image. A non-owner call
// finds no row and returns without touching anything.
func (s *dashboardService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.gate(ctx, userID); err != nil {
		return err
	}

	product, err := s.productRepo.FindOwned(ctx, productID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if product.ImageURL != "" {
		if err := s.store.Remove(ctx, storage.ObjectPath(product.ImageURL)); err != nil {
			// Best effort: an unreachable store must not block the row delete.
			log.Printf("remove product image: %v", err)
		}
	}

	if err := s.productRepo.DeleteOwned(ctx, productID, userID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogFeedCacheKey)
	return nil
}
