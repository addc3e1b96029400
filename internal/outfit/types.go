package outfit

import "time"

// Category is a coarse wardrobe slot a clothing item occupies.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryFootwear    Category = "footwear"
	CategoryAccessories Category = "accessories"
	// CategoryOther is the catch-all for display types we do not recognize.
	// It never collides with a real catalog category.
	CategoryOther Category = "other"
)

// Style is an aesthetic tag used to filter catalog items.
type Style string

const (
	StyleFormal     Style = "Formal"
	StyleSemiFormal Style = "Semi-formal"
	StyleCasual     Style = "Casual"
	StylePremium    Style = "Premium"
)

// ClothingItem is an immutable catalog entry.
type ClothingItem struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	ImageURL string  `json:"image_url"`
	Color    string  `json:"color,omitempty"`
	Material string  `json:"material,omitempty"`
	Brand    string  `json:"brand,omitempty"`
	Styles   []Style `json:"styles"`
}

// HasStyle reports whether the item is tagged with the given style.
func (c ClothingItem) HasStyle(s Style) bool {
	for _, st := range c.Styles {
		if st == s {
			return true
		}
	}
	return false
}

// UserUpload is a user-submitted clothing item that anchors combination
// generation. ID, Type and Color are required at the generator boundary.
type UserUpload struct {
	ID       string `json:"id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Color    string `json:"color" validate:"required"`
	Gender   string `json:"gender,omitempty"`
	Usage    string `json:"usage,omitempty"`
}

// AsClothingItem renders the upload as the first item of a combination.
func (u UserUpload) AsClothingItem() ClothingItem {
	return ClothingItem{
		ID:       u.ID,
		Type:     u.Type,
		ImageURL: u.ImageURL,
		Color:    u.Color,
	}
}

// Combination is a generated outfit: the upload plus catalog items styled
// together. Never mutated after generation.
type Combination struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Style    Style          `json:"style"`
	Items    []ClothingItem `json:"items"`
	UploadID string         `json:"upload_id"`
}

// SavedCombination wraps a combination the user decided to keep.
// Identity is the (Combo.ID, UploadID) pair.
type SavedCombination struct {
	Combo    Combination `json:"combo"`
	UploadID string      `json:"upload_id"`
	SavedAt  time.Time   `json:"saved_at"`
}

// typeCategories maps a display type label to its wardrobe category.
// The table is seed data, not a closed enumeration: unknown labels fall
// into CategoryOther and exclude nothing during generation.
var typeCategories = map[string]Category{
	"SHIRT":    CategoryTops,
	"Blazer":   CategoryTops,
	"Jacket":   CategoryTops,
	"T-shirt":  CategoryTops,
	"Pants":    CategoryBottoms,
	"Pant":     CategoryBottoms,
	"Jeans":    CategoryBottoms,
	"Shorts":   CategoryBottoms,
	"Shoes":    CategoryFootwear,
	"Sneakers": CategoryFootwear,
	"Boots":    CategoryFootwear,
	"Watch":    CategoryAccessories,
	"Belt":     CategoryAccessories,
	"Tie":      CategoryAccessories,
}

// CategoryForType resolves a display type label to a category.
// Lookup is exact and case-sensitive.
func CategoryForType(t string) Category {
	if c, ok := typeCategories[t]; ok {
		return c
	}
	return CategoryOther
}
