package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tooldocker/internal/model"
)

func TestAdminService_ListUsers(t *testing.T) {
	approved := model.Profile{ID: uuid.New(), Email: "approved@example.com"}
	pending := model.Profile{ID: uuid.New(), Email: "pending@example.com"}
	now := time.Now()

	profileRepo := new(MockProfileRepository)
	profileRepo.On("List", mock.Anything).Return([]model.Profile{approved, pending}, nil)
	approvalRepo := new(MockApprovalRepository)
	approvalRepo.On("List", mock.Anything).Return([]model.UserApproval{
		{UserID: approved.ID, IsApproved: true, ApprovedAt: &now},
	}, nil)

	svc := NewAdminService(new(MockProductRepository), profileRepo, approvalRepo, NewApprovalService(approvalRepo, nil))

	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.True(t, users[0].IsApproved)
	assert.NotNil(t, users[0].ApprovedAt)
	assert.False(t, users[1].IsApproved)
}

func TestAdminService_ListProducts(t *testing.T) {
	seller := model.Profile{ID: uuid.New(), Email: "seller@example.com"}
	products := []model.Product{
		{ID: uuid.New(), UserID: seller.ID, Name: "Bridge Saw"},
		{ID: uuid.New(), UserID: uuid.New(), Name: "Orphan Listing"},
	}

	productRepo := new(MockProductRepository)
	productRepo.On("ListAll", mock.Anything).Return(products, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("List", mock.Anything).Return([]model.Profile{seller}, nil)
	approvalRepo := new(MockApprovalRepository)

	svc := NewAdminService(productRepo, profileRepo, approvalRepo, NewApprovalService(approvalRepo, nil))

	enriched, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, enriched, 2)
	assert.Equal(t, seller.Email, enriched[0].Profiles.Email)
	assert.Nil(t, enriched[1].Profiles)
}

func TestAdminService_SetApproval(t *testing.T) {
	userID := uuid.New()

	approvalRepo := new(MockApprovalRepository)
	approvalRepo.On("Upsert", mock.Anything, userID, true, mock.AnythingOfType("*time.Time")).
		Return(&model.UserApproval{UserID: userID, IsApproved: true}, nil)

	svc := NewAdminService(new(MockProductRepository), new(MockProfileRepository), approvalRepo, NewApprovalService(approvalRepo, nil))

	approval, err := svc.SetApproval(context.Background(), userID, true)

	assert.NoError(t, err)
	assert.True(t, approval.IsApproved)
	approvalRepo.AssertExpectations(t)
}
