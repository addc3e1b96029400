package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"OutfitLab/internal/model"
)

// InitDB открывает соединение с Postgres и выполняет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate прогоняет автомиграции для всех серверных моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.CatalogItem{},
		&model.Upload{},
		&model.SavedOutfit{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
