package testhelpers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockRecipeAPI is a mock implementation of the external recipe data source
type MockRecipeAPI struct {
	mock.Mock
}

func (m *MockRecipeAPI) GetRandom(ctx context.Context, count int) (json.RawMessage, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRecipeAPI) GetByID(ctx context.Context, id int) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRecipeAPI) Search(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockImageService is a mock implementation of the picture storage service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadProfilePicture(ctx context.Context, userID uint, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, userID, body, size, contentType)
	return args.String(0), args.Error(1)
}
