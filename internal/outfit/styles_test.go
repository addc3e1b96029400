package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestStyles(t *testing.T) {
	tests := []struct {
		color string
		want  []Style
	}{
		{"Navy Blue", []Style{StyleFormal, StylePremium}},
		{"Light Blue", []Style{StyleSemiFormal, StyleCasual}},
		{"White", []Style{StyleFormal, StyleCasual}},
		{"Chartreuse", []Style{StyleFormal, StyleSemiFormal, StyleCasual}},
		{"", []Style{StyleFormal, StyleSemiFormal, StyleCasual}},
		// точное совпадение, без нормализации регистра
		{"navy blue", []Style{StyleFormal, StyleSemiFormal, StyleCasual}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SuggestStyles(tc.color), "color %q", tc.color)
	}
}

func TestSuggestStyles_ReturnsCopy(t *testing.T) {
	s := SuggestStyles("Navy Blue")
	s[0] = StyleCasual
	assert.Equal(t, []Style{StyleFormal, StylePremium}, SuggestStyles("Navy Blue"))
}

func TestCategoryForType(t *testing.T) {
	assert.Equal(t, CategoryTops, CategoryForType("Blazer"))
	assert.Equal(t, CategoryBottoms, CategoryForType("Jeans"))
	assert.Equal(t, CategoryFootwear, CategoryForType("Sneakers"))
	assert.Equal(t, CategoryAccessories, CategoryForType("Watch"))
	assert.Equal(t, CategoryOther, CategoryForType("Kimono"))
	assert.Equal(t, CategoryOther, CategoryForType("blazer"))
}

func TestCatalog_ItemsByStyle(t *testing.T) {
	c := DefaultCatalog()

	premiumTops := c.ItemsByStyle(CategoryTops, StylePremium)
	assert.Len(t, premiumTops, 1)
	assert.Equal(t, "top-3", premiumTops[0].ID)

	assert.Empty(t, c.ItemsByStyle(CategoryTops, Style("Sporty")))
}

func TestCatalog_Categories(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t,
		[]Category{CategoryTops, CategoryBottoms, CategoryFootwear, CategoryAccessories},
		c.Categories())
	assert.Len(t, c.All(), 12)
}
