package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tooldocker/internal/errors"
	"tooldocker/internal/model"
)

func TestCatalogService_ListAll(t *testing.T) {
	seller := model.Profile{ID: uuid.New(), Email: "seller@example.com"}
	products := []model.Product{
		{ID: uuid.New(), UserID: seller.ID, Name: "Bridge Saw BS-600"},
		{ID: uuid.New(), UserID: uuid.New(), Name: "Orphan Listing"},
	}

	productRepo := new(MockProductRepository)
	productRepo.On("ListAll", mock.Anything).Return(products, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("List", mock.Anything).Return([]model.Profile{seller}, nil)

	svc := NewCatalogService(productRepo, profileRepo, nil)

	enriched, err := svc.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, enriched, 2)
	assert.Equal(t, seller.Email, enriched[0].Profiles.Email)
	assert.Nil(t, enriched[1].Profiles)
}

func TestCatalogService_GetBySlug(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Name: "Edge Polisher"}

	productRepo := new(MockProductRepository)
	productRepo.On("FindByName", mock.Anything, "edge polisher").Return(product, nil)

	svc := NewCatalogService(productRepo, new(MockProfileRepository), nil)

	found, err := svc.GetBySlug(context.Background(), "edge-polisher")

	assert.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
}

func TestCatalogService_GetBySlugNotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("FindByName", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCatalogService(productRepo, new(MockProfileRepository), nil)

	_, err := svc.GetBySlug(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, errors.ErrProductNotFound)

	_, err = svc.GetBySlug(context.Background(), "")
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "bridge-saw-bs-600", Slugify("Bridge Saw BS-600"))
	assert.Equal(t, "drill-x", Slugify("  Drill   X "))
}

func TestCatalogService_Categories(t *testing.T) {
	svc := NewCatalogService(new(MockProductRepository), new(MockProfileRepository), nil)
	assert.Equal(t, model.Categories, svc.Categories())
}
