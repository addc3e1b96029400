package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"OutfitLab/internal/model"
)

// OutfitRepository — доступ к загрузкам пользователя и сохранённым комбинациям.
type OutfitRepository interface {
	// CreateUpload сохраняет загрузку пользователя вместе со сгенерированными
	// комбинациями (поле Outfits).
	CreateUpload(ctx context.Context, up *model.Upload) (*model.Upload, error)

	// GetUpload возвращает загрузку по её UUID, без проверки владельца.
	// Если не найдена — (nil, gorm.ErrRecordNotFound).
	GetUpload(ctx context.Context, uniqueID string) (*model.Upload, error)

	// UploadsByUser возвращает все загрузки пользователя в порядке создания.
	UploadsByUser(ctx context.Context, userID int64) ([]model.Upload, error)

	// SaveOutfit сохраняет комбинацию. Повторное сохранение той же пары
	// (upload_id, client_outfit_id) — no-op; возвращает created=false.
	SaveOutfit(ctx context.Context, so *model.SavedOutfit) (created bool, err error)

	// UnsaveOutfit удаляет сохранённую пару. Отсутствие записи — не ошибка;
	// возвращает removed=false.
	UnsaveOutfit(ctx context.Context, userID int64, uploadID, clientOutfitID string) (removed bool, err error)

	// SavedByUpload возвращает сохранённые комбинации пользователя для
	// конкретной загрузки; uploadID == "all" — все сохранённые пользователя.
	SavedByUpload(ctx context.Context, userID int64, uploadID string) ([]model.SavedOutfit, error)
}

type outfitRepo struct {
	db *gorm.DB
}

// NewOutfitRepository создаёт реализацию репозитория.
func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepo{db: db}
}

func (r *outfitRepo) CreateUpload(ctx context.Context, up *model.Upload) (*model.Upload, error) {
	if err := r.db.WithContext(ctx).Create(up).Error; err != nil {
		return nil, err
	}
	return up, nil
}

func (r *outfitRepo) GetUpload(ctx context.Context, uniqueID string) (*model.Upload, error) {
	var up model.Upload
	err := r.db.WithContext(ctx).Where("unique_id = ?", uniqueID).First(&up).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &up, nil
}

func (r *outfitRepo) UploadsByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	var ups []model.Upload
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&ups).Error
	if err != nil {
		return nil, err
	}
	return ups, nil
}

func (r *outfitRepo) SaveOutfit(ctx context.Context, so *model.SavedOutfit) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "upload_id"}, {Name: "client_outfit_id"}},
		DoNothing: true,
	}).Create(so)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *outfitRepo) UnsaveOutfit(ctx context.Context, userID int64, uploadID, clientOutfitID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND upload_id = ? AND client_outfit_id = ?", userID, uploadID, clientOutfitID).
		Delete(&model.SavedOutfit{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *outfitRepo) SavedByUpload(ctx context.Context, userID int64, uploadID string) ([]model.SavedOutfit, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if uploadID != "all" {
		q = q.Where("upload_id = ?", uploadID)
	}
	var saved []model.SavedOutfit
	if err := q.Order("id").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}
