package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"OutfitLab/internal/model"
	"OutfitLab/internal/outfit"
)

// CatalogRepository — доступ к статическому каталогу одежды.
type CatalogRepository interface {
	// Seed наполняет таблицу каталога, пропуская уже существующие записи.
	Seed(ctx context.Context, items []model.CatalogItem) error

	// List возвращает до limit записей каталога (limit <= 0 — все).
	List(ctx context.Context, limit int) ([]model.CatalogItem, error)

	// GetByClothID возвращает запись по её внешнему идентификатору.
	// Если не найдена — (nil, gorm.ErrRecordNotFound).
	GetByClothID(ctx context.Context, clothID string) (*model.CatalogItem, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepository создаёт реализацию репозитория каталога.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Seed(ctx context.Context, items []model.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cloth_id"}},
		DoNothing: true,
	}).Create(&items).Error
}

func (r *catalogRepo) List(ctx context.Context, limit int) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	q := r.db.WithContext(ctx).Order("cloth_id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepo) GetByClothID(ctx context.Context, clothID string) (*model.CatalogItem, error) {
	var it model.CatalogItem
	err := r.db.WithContext(ctx).Where("cloth_id = ?", clothID).First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &it, nil
}

// CatalogSeed переводит встроенный каталог в записи таблицы каталога.
func CatalogSeed() []model.CatalogItem {
	var items []model.CatalogItem
	for _, it := range outfit.DefaultCatalog().All() {
		styles := make([]string, 0, len(it.Styles))
		for _, s := range it.Styles {
			styles = append(styles, string(s))
		}
		items = append(items, model.CatalogItem{
			ClothID:  it.ID,
			Type:     it.Type,
			Color:    it.Color,
			Material: it.Material,
			Brand:    it.Brand,
			URL:      it.ImageURL,
			Styles:   strings.Join(styles, ","),
		})
	}
	return items
}

// BuildCatalog собирает outfit.Catalog из записей таблицы каталога.
func BuildCatalog(items []model.CatalogItem) outfit.Catalog {
	c := outfit.Catalog{}
	for _, it := range items {
		cat := outfit.CategoryForType(it.Type)
		if cat == outfit.CategoryOther {
			continue
		}
		var styles []outfit.Style
		for _, s := range strings.Split(it.Styles, ",") {
			if s = strings.TrimSpace(s); s != "" {
				styles = append(styles, outfit.Style(s))
			}
		}
		c[cat] = append(c[cat], outfit.ClothingItem{
			ID:       it.ClothID,
			Type:     it.Type,
			ImageURL: it.URL,
			Color:    it.Color,
			Material: it.Material,
			Brand:    it.Brand,
			Styles:   styles,
		})
	}
	return c
}
