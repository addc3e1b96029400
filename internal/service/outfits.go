package service

import (
	"context"
	"encoding/json"
	"fmt"

	"OutfitLab/internal/model"
	"OutfitLab/internal/outfit"
	"OutfitLab/internal/repo"
)

// OutfitService — серверное зеркало сохранений: сохранить/убрать комбинацию,
// перечислить сохранённые и загрузки пользователя.
type OutfitService struct {
	repo repo.OutfitRepository
}

func NewOutfitService(r repo.OutfitRepository) *OutfitService {
	return &OutfitService{repo: r}
}

// Save сохраняет комбинацию для пользователя. Повторное сохранение той же
// пары (uploadID, combo.ID) — no-op; created=false.
func (s *OutfitService) Save(ctx context.Context, userID int64, uploadID string, combo outfit.Combination, upload *outfit.UserUpload) (bool, error) {
	outfitJSON, err := json.Marshal(combo)
	if err != nil {
		return false, fmt.Errorf("encode outfit: %w", err)
	}
	so := &model.SavedOutfit{
		UploadID:       uploadID,
		ClientOutfitID: combo.ID,
		UserID:         userID,
		OutfitData:     string(outfitJSON),
	}
	if upload != nil {
		uploadJSON, err := json.Marshal(upload)
		if err != nil {
			return false, fmt.Errorf("encode upload: %w", err)
		}
		so.UploadData = string(uploadJSON)
	}
	return s.repo.SaveOutfit(ctx, so)
}

// Unsave убирает сохранённую пару; отсутствие записи — не ошибка.
func (s *OutfitService) Unsave(ctx context.Context, userID int64, uploadID, comboID string) (bool, error) {
	return s.repo.UnsaveOutfit(ctx, userID, uploadID, comboID)
}

// Saved возвращает сохранённые комбинации пользователя в порядке сохранения;
// uploadID == "all" — все.
func (s *OutfitService) Saved(ctx context.Context, userID int64, uploadID string) ([]outfit.SavedCombination, error) {
	rows, err := s.repo.SavedByUpload(ctx, userID, uploadID)
	if err != nil {
		return nil, err
	}
	out := make([]outfit.SavedCombination, 0, len(rows))
	for _, row := range rows {
		var combo outfit.Combination
		if err := json.Unmarshal([]byte(row.OutfitData), &combo); err != nil {
			return nil, fmt.Errorf("decode outfit %s: %w", row.ClientOutfitID, err)
		}
		out = append(out, outfit.SavedCombination{
			Combo:    combo,
			UploadID: row.UploadID,
			SavedAt:  row.CreatedAt,
		})
	}
	return out, nil
}

// Uploads возвращает загрузки пользователя в порядке создания.
func (s *OutfitService) Uploads(ctx context.Context, userID int64) ([]model.Upload, error) {
	return s.repo.UploadsByUser(ctx, userID)
}
