package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"OutfitLab/internal/model"
	"OutfitLab/internal/outfit"
	"OutfitLab/internal/repo"
)

// ProvideRequest — метаданные загруженной вещи, присланные клиентом.
type ProvideRequest struct {
	Type     string `json:"type" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Gender   string `json:"gender,omitempty"`
	Usage    string `json:"usage,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ProvideResult — созданная загрузка и подобранные комбинации.
type ProvideResult struct {
	UploadID     string               `json:"id"`
	Combinations []outfit.Combination `json:"outfits"`
}

// RecommendationService подбирает комбинации для загрузки поверх каталога
// из БД и сохраняет результат на записи Upload.
type RecommendationService struct {
	catalogRepo repo.CatalogRepository
	outfitRepo  repo.OutfitRepository
	logger      *zap.SugaredLogger
	genOpts     []outfit.GeneratorOption
}

// RecommendationOption настраивает сервис.
type RecommendationOption func(*RecommendationService)

// WithGeneratorOptions пробрасывает опции генератора (например, seed для тестов).
func WithGeneratorOptions(opts ...outfit.GeneratorOption) RecommendationOption {
	return func(s *RecommendationService) { s.genOpts = opts }
}

func NewRecommendationService(cr repo.CatalogRepository, or repo.OutfitRepository, logger *zap.SugaredLogger, opts ...RecommendationOption) *RecommendationService {
	s := &RecommendationService{catalogRepo: cr, outfitRepo: or, logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Provide создаёт загрузку пользователя, генерирует комбинации по каталогу
// и сохраняет их на записи Upload. Возвращает id загрузки и комбинации.
func (s *RecommendationService) Provide(ctx context.Context, userID int64, req ProvideRequest) (*ProvideResult, error) {
	uploadID := uuid.NewString()
	up := outfit.UserUpload{
		ID:       uploadID,
		Type:     req.Type,
		Color:    req.Color,
		Gender:   req.Gender,
		Usage:    req.Usage,
		ImageURL: req.ImageURL,
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	gen := outfit.NewGenerator(catalog, s.genOpts...)
	combos, err := gen.Generate(up)
	if err != nil {
		return nil, err
	}

	outfitsJSON, err := json.Marshal(combos)
	if err != nil {
		return nil, fmt.Errorf("encode outfits: %w", err)
	}

	_, err = s.outfitRepo.CreateUpload(ctx, &model.Upload{
		UniqueID: uploadID,
		UserID:   userID,
		Type:     req.Type,
		Color:    req.Color,
		Gender:   req.Gender,
		Usage:    req.Usage,
		ImageURL: req.ImageURL,
		Outfits:  string(outfitsJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}

	return &ProvideResult{UploadID: uploadID, Combinations: combos}, nil
}

// UploadCombinations возвращает комбинации, сохранённые на записи Upload.
func (s *RecommendationService) UploadCombinations(ctx context.Context, uniqueID string) ([]outfit.Combination, error) {
	up, err := s.outfitRepo.GetUpload(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	var combos []outfit.Combination
	if up.Outfits != "" {
		if err := json.Unmarshal([]byte(up.Outfits), &combos); err != nil {
			return nil, fmt.Errorf("decode outfits: %w", err)
		}
	}
	return combos, nil
}

// loadCatalog читает каталог из БД; пустая таблица — откат на встроенный сид.
func (s *RecommendationService) loadCatalog(ctx context.Context) (outfit.Catalog, error) {
	items, err := s.catalogRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(items) == 0 {
		s.logger.Warnw("catalog table is empty, using built-in seed")
		return outfit.DefaultCatalog(), nil
	}
	return repo.BuildCatalog(items), nil
}
