package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"tooldocker/internal/cache"
	"tooldocker/internal/errors"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
)

const (
	catalogFeedCacheKey = "catalog:feed"
	catalogFeedCacheTTL = time.Minute
)

// CatalogService serves the public storefront feed.
type CatalogService interface {
	ListAll(ctx context.Context) ([]EnrichedProduct, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Categories() []string
}

type catalogService struct {
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, profileRepo repository.ProfileRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// ListAll returns every product newest-first with seller profiles attached.
func (s *catalogService) ListAll(ctx context.Context) ([]EnrichedProduct, error) {
	if data, _ := s.cache.Get(ctx, catalogFeedCacheKey); data != nil {
		var cached []EnrichedProduct
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	enriched := Enrich(products, profiles)

	if payload, err := json.Marshal(enriched); err == nil {
		_ = s.cache.Set(ctx, catalogFeedCacheKey, payload, catalogFeedCacheTTL)
	}
	return enriched, nil
}

// GetBySlug resolves a hyphenated product name back to its row with a
// case-insensitive name match.
func (s *catalogService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	name := strings.ReplaceAll(strings.TrimSpace(slug), "-", " ")
	if name == "" {
		return nil, errors.ErrProductNotFound
	}

	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) Categories() []string {
	return model.Categories
}

// Slugify derives the public URL slug from a product name.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
