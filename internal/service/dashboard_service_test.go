package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tooldocker/internal/errors"
	"tooldocker/internal/model"
)

func approvedGate(userID uuid.UUID) *MockApprovalRepository {
	m := new(MockApprovalRepository)
	m.On("Find", mock.Anything, userID).Return(&model.UserApproval{UserID: userID, IsApproved: true}, nil)
	return m
}

func validInput() ProductInput {
	return ProductInput{
		Name:        "Drill X",
		Description: "Wet core drill",
		Category:    "Diamond Bits",
		Price:       "19.99",
		Stock:       "3",
	}
}

func TestDashboardService_GateBlocksUnapproved(t *testing.T) {
	userID := uuid.New()

	approvalRepo := new(MockApprovalRepository)
	approvalRepo.On("Find", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	productRepo := new(MockProductRepository)
	profileRepo := new(MockProfileRepository)
	store := &fakeStore{}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvalRepo, nil), store, nil)

	_, err := svc.ListOwned(context.Background(), userID)
	assert.ErrorIs(t, err, errors.ErrNotApproved)

	_, err = svc.Create(context.Background(), userID, validInput(), nil)
	assert.ErrorIs(t, err, errors.ErrNotApproved)

	err = svc.Delete(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, errors.ErrNotApproved)

	// Nothing reached the repositories or the store.
	productRepo.AssertExpectations(t)
	assert.Empty(t, store.uploads)
}

func TestDashboardService_CreateValidation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		mutate      func(in *ProductInput)
		expectedErr error
	}{
		{"negative price", func(in *ProductInput) { in.Price = "-5" }, errors.ErrInvalidPrice},
		{"non-numeric stock", func(in *ProductInput) { in.Stock = "abc" }, errors.ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			profileRepo := new(MockProfileRepository)
			store := &fakeStore{}

			svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

			in := validInput()
			tt.mutate(&in)

			product, err := svc.Create(context.Background(), userID, in, nil)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, product)

			// No row written, no object uploaded.
			productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, store.uploads)
		})
	}
}

func TestDashboardService_CreateOwnerNotFound(t *testing.T) {
	userID := uuid.New()

	productRepo := new(MockProductRepository)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
	store := &fakeStore{}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

	product, err := svc.Create(context.Background(), userID, validInput(), nil)
	assert.ErrorIs(t, err, errors.ErrOwnerNotFound)
	assert.Nil(t, product)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDashboardService_CreateWithImage(t *testing.T) {
	userID := uuid.New()

	productRepo := new(MockProductRepository)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByID", mock.Anything, userID).Return(&model.Profile{ID: userID}, nil)
	store := &fakeStore{uploadURL: "http://localhost:8080/storage/product-images/abc.png"}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

	image := &ImageUpload{Filename: "drill.png", Reader: strings.NewReader("png-bytes")}
	product, err := svc.Create(context.Background(), userID, validInput(), image)

	assert.NoError(t, err)
	assert.Equal(t, userID, product.UserID)
	assert.Equal(t, "Drill X", product.Name)
	assert.Equal(t, "19.99", product.Price.StringFixed(2))
	assert.Equal(t, 3, product.Stock)
	assert.Equal(t, store.uploadURL, product.ImageURL)
	assert.Equal(t, []string{"drill.png"}, store.uploads)
	productRepo.AssertExpectations(t)
}

func TestDashboardService_CreateUploadFailureAborts(t *testing.T) {
	userID := uuid.New()

	productRepo := new(MockProductRepository)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByID", mock.Anything, userID).Return(&model.Profile{ID: userID}, nil)
	store := &fakeStore{uploadErr: assert.AnError}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

	image := &ImageUpload{Filename: "drill.png", Reader: strings.NewReader("png-bytes")}
	product, err := svc.Create(context.Background(), userID, validInput(), image)

	assert.ErrorIs(t, err, errors.ErrStorageUpload)
	assert.Nil(t, product)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDashboardService_CreateInsertFailureRemovesUpload(t *testing.T) {
	userID := uuid.New()

	productRepo := new(MockProductRepository)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(assert.AnError)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByID", mock.Anything, userID).Return(&model.Profile{ID: userID}, nil)
	store := &fakeStore{uploadURL: "http://localhost:8080/storage/product-images/abc.png"}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

	image := &ImageUpload{Filename: "drill.png", Reader: strings.NewReader("png-bytes")}
	_, err := svc.Create(context.Background(), userID, validInput(), image)

	assert.Error(t, err)
	// The orphaned object was compensated away.
	assert.Equal(t, []string{"product-images/abc.png"}, store.removed)
}

func TestDashboardService_UpdateKeepsImageWithoutNewFile(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	existing := &model.Product{
		ID:       productID,
		UserID:   userID,
		Name:     "Old Name",
		Category: "Other",
		ImageURL: "http://localhost:8080/storage/product-images/old.png",
	}

	productRepo := new(MockProductRepository)
	productRepo.On("FindOwned", mock.Anything, productID, userID).Return(existing, nil)
	productRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	profileRepo := new(MockProfileRepository)
	store := &fakeStore{}

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), store, nil)

	product, err := svc.Update(context.Background(), userID, productID, validInput(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "Drill X", product.Name)
	assert.Equal(t, "http://localhost:8080/storage/product-images/old.png", product.ImageURL)
	assert.Empty(t, store.uploads)
	productRepo.AssertExpectations(t)
}

func TestDashboardService_UpdateNotOwned(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	productRepo := new(MockProductRepository)
	productRepo.On("FindOwned", mock.Anything, productID, userID).Return(nil, gorm.ErrRecordNotFound)
	profileRepo := new(MockProfileRepository)

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), &fakeStore{}, nil)

	product, err := svc.Update(context.Background(), userID, productID, validInput(), nil)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
	assert.Nil(t, product)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDashboardService_DeleteNonOwnerNoOp(t *testing.T) {
	callerID := uuid.New()
	productID := uuid.New()

	productRepo := new(MockProductRepository)
	productRepo.On("FindOwned", mock.Anything, productID, callerID).Return(nil, gorm.ErrRecordNotFound)
	store := &fakeStore{}

	svc := NewDashboardService(productRepo, new(MockProfileRepository), NewApprovalService(approvedGate(callerID), nil), store, nil)

	err := svc.Delete(context.Background(), callerID, productID)

	// A non-owner delete succeeds without touching the row or the image.
	assert.NoError(t, err)
	productRepo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, store.removed)
}

func TestDashboardService_DeleteRemovesImageAndRow(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	existing := &model.Product{
		ID:       productID,
		UserID:   userID,
		ImageURL: "http://localhost:8080/storage/product-images/abc.png",
	}

	productRepo := new(MockProductRepository)
	productRepo.On("FindOwned", mock.Anything, productID, userID).Return(existing, nil)
	productRepo.On("DeleteOwned", mock.Anything, productID, userID).Return(nil)
	store := &fakeStore{}

	svc := NewDashboardService(productRepo, new(MockProfileRepository), NewApprovalService(approvedGate(userID), nil), store, nil)

	err := svc.Delete(context.Background(), userID, productID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"product-images/abc.png"}, store.removed)
	productRepo.AssertExpectations(t)
}

func TestDashboardService_DeleteImageFailureDoesNotBlockRow(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	existing := &model.Product{
		ID:       productID,
		UserID:   userID,
		ImageURL: "http://localhost:8080/storage/product-images/abc.png",
	}

	productRepo := new(MockProductRepository)
	productRepo.On("FindOwned", mock.Anything, productID, userID).Return(existing, nil)
	productRepo.On("DeleteOwned", mock.Anything, productID, userID).Return(nil)
	store := &fakeStore{removeErr: assert.AnError}

	svc := NewDashboardService(productRepo, new(MockProfileRepository), NewApprovalService(approvedGate(userID), nil), store, nil)

	err := svc.Delete(context.Background(), userID, productID)
	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestDashboardService_ListOwned(t *testing.T) {
	userID := uuid.New()
	owner := &model.Profile{ID: userID, Email: "owner@example.com"}
	owned := []model.Product{
		{ID: uuid.New(), UserID: userID, Name: "Drill X"},
		{ID: uuid.New(), UserID: userID, Name: "Bit Set"},
	}

	productRepo := new(MockProductRepository)
	productRepo.On("ListByOwner", mock.Anything, userID).Return(owned, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByID", mock.Anything, userID).Return(owner, nil)

	svc := NewDashboardService(productRepo, profileRepo, NewApprovalService(approvedGate(userID), nil), &fakeStore{}, nil)

	products, err := svc.ListOwned(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, owner.Email, p.Profiles.Email)
	}
}
