package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"photoapp/internal/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserList(ctx context.Context) ([]models.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockUserService) GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserDetail), args.Error(1)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) GetPhotosOfUser(ctx context.Context, userID string) ([]models.PopulatedPhoto, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopulatedPhoto), args.Error(1)
}

type MockInfoService struct {
	mock.Mock
}

func (m *MockInfoService) GetSchemaInfo(ctx context.Context) (*models.SchemaInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SchemaInfo), args.Error(1)
}

func (m *MockInfoService) GetCollectionCounts(ctx context.Context) (*models.CollectionCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollectionCounts), args.Error(1)
}
