package handlers_test

import (
	"OutfitLab/internal/config"
	"OutfitLab/internal/handlers"
	"OutfitLab/internal/middleware"
	"OutfitLab/internal/model"
	"OutfitLab/internal/repo"
	"OutfitLab/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) Seed(ctx context.Context, items []model.CatalogItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *mockCatalogRepo) List(ctx context.Context, limit int) ([]model.CatalogItem, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.CatalogItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetByClothID(ctx context.Context, clothID string) (*model.CatalogItem, error) {
	args := m.Called(ctx, clothID)
	if v, ok := args.Get(0).(*model.CatalogItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CatalogRepository = (*mockCatalogRepo)(nil)

type mockOutfitRepo struct{ mock.Mock }

func (m *mockOutfitRepo) CreateUpload(ctx context.Context, up *model.Upload) (*model.Upload, error) {
	args := m.Called(ctx, up)
	if v, ok := args.Get(0).(*model.Upload); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOutfitRepo) GetUpload(ctx context.Context, uniqueID string) (*model.Upload, error) {
	args := m.Called(ctx, uniqueID)
	if v, ok := args.Get(0).(*model.Upload); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOutfitRepo) UploadsByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Upload); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOutfitRepo) SaveOutfit(ctx context.Context, so *model.SavedOutfit) (bool, error) {
	args := m.Called(ctx, so)
	return args.Bool(0), args.Error(1)
}

func (m *mockOutfitRepo) UnsaveOutfit(ctx context.Context, userID int64, uploadID, clientOutfitID string) (bool, error) {
	args := m.Called(ctx, userID, uploadID, clientOutfitID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOutfitRepo) SavedByUpload(ctx context.Context, userID int64, uploadID string) ([]model.SavedOutfit, error) {
	args := m.Called(ctx, userID, uploadID)
	if v, ok := args.Get(0).([]model.SavedOutfit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.OutfitRepository = (*mockOutfitRepo)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository, cr repo.CatalogRepository, or repo.OutfitRepository) http.Handler {
	t.Helper()
	if ur == nil {
		ur = &mockUserRepo{}
	}
	if cr == nil {
		cr = &mockCatalogRepo{}
	}
	if or == nil {
		or = &mockOutfitRepo{}
	}

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	recSvc := service.NewRecommendationService(cr, or, logger)
	outfitSvc := service.NewOutfitService(or)

	h := handlers.NewHandler(userSvc, recSvc, outfitSvc, cr, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
