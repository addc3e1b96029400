package model

import "time"

// Upload — загрузка пользователя (снимок вещи плюс метаданные), якорь для
// подбора комбинаций. Outfits хранит сгенерированные комбинации как JSON.
type Upload struct {
	ID       int64  `gorm:"primaryKey"`
	UniqueID string `gorm:"uniqueIndex;type:uuid;not null"`
	UserID   int64  `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Type     string `gorm:"not null"`
	Color    string `gorm:"not null"`
	Gender   string
	Usage    string
	ImageURL string

	Outfits string `gorm:"type:text"` // JSON: []outfit.Combination

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// SavedOutfit — сохранённая пользователем комбинация. Уникальность
// обеспечивается парой (upload_id, client_outfit_id), повторное сохранение
// той же пары — no-op.
type SavedOutfit struct {
	ID             int64  `gorm:"primaryKey"`
	UploadID       string `gorm:"not null;uniqueIndex:idx_saved_upload_combo"`
	ClientOutfitID string `gorm:"not null;uniqueIndex:idx_saved_upload_combo"`
	UserID         int64  `gorm:"not null;index"`

	OutfitData string `gorm:"type:text;not null"` // JSON: outfit.Combination
	UploadData string `gorm:"type:text"`          // JSON: outfit.UserUpload

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
