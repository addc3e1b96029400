package model

// CatalogItem — запись каталога одежды. Каталог статичен: таблица
// наполняется сидом при старте и дальше только читается.
type CatalogItem struct {
	ID       int64  `gorm:"primaryKey" json:"-"`
	ClothID  string `gorm:"uniqueIndex;not null" json:"id"`
	Type     string `gorm:"not null;index" json:"type"`
	Name     string `json:"name,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Season   string `json:"season,omitempty"`
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Brand    string `json:"brand,omitempty"`
	URL      string `json:"image_url,omitempty"`

	// Styles хранится как список меток через запятую, например "Formal,Premium"
	Styles string `gorm:"not null" json:"styles"`
}
