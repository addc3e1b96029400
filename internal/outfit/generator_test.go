package outfit

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	// фиксированный seed, чтобы выбор внутри категории был воспроизводим
	return NewGenerator(DefaultCatalog(), WithRand(rand.New(rand.NewSource(1))))
}

func TestGenerate_CountAndIDs(t *testing.T) {
	g := newTestGenerator(t)

	combos, err := g.Generate(UserUpload{ID: "user-1", Type: "Blazer", Color: "Navy Blue"})
	require.NoError(t, err)
	require.Len(t, combos, CombinationsPerUpload)

	for i, c := range combos {
		assert.Equal(t, fmt.Sprintf("user-1-combo-%d", i+1), c.ID)
		assert.Equal(t, "user-1", c.UploadID)
	}
}

func TestGenerate_StyleCycling(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("known color cycles its two styles", func(t *testing.T) {
		combos, err := g.Generate(UserUpload{ID: "u", Type: "Blazer", Color: "Navy Blue"})
		require.NoError(t, err)
		require.Len(t, combos, 3)
		assert.Equal(t, StyleFormal, combos[0].Style)
		assert.Equal(t, StylePremium, combos[1].Style)
		assert.Equal(t, StyleFormal, combos[2].Style)
		assert.Equal(t, "Formal Combination 1", combos[0].Name)
		assert.Equal(t, "Premium Combination 2", combos[1].Name)
		assert.Equal(t, "Formal Combination 3", combos[2].Name)
	})

	t.Run("unknown color cycles defaults", func(t *testing.T) {
		combos, err := g.Generate(UserUpload{ID: "u", Type: "Blazer", Color: "Chartreuse"})
		require.NoError(t, err)
		require.Len(t, combos, 3)
		assert.Equal(t, StyleFormal, combos[0].Style)
		assert.Equal(t, StyleSemiFormal, combos[1].Style)
		assert.Equal(t, StyleCasual, combos[2].Style)
	})
}

func TestGenerate_ExcludesUploadCategory(t *testing.T) {
	g := newTestGenerator(t)

	combos, err := g.Generate(UserUpload{ID: "u", Type: "Blazer", Color: "Navy Blue"})
	require.NoError(t, err)

	for _, c := range combos {
		// первый элемент — сам аплоад
		require.NotEmpty(t, c.Items)
		assert.Equal(t, "u", c.Items[0].ID)
		for _, it := range c.Items[1:] {
			assert.NotEqual(t, CategoryTops, CategoryForType(it.Type),
				"combination %s must not contain another tops item", c.ID)
		}
	}
}

func TestGenerate_UnknownTypeExcludesNothing(t *testing.T) {
	g := newTestGenerator(t)

	combos, err := g.Generate(UserUpload{ID: "u", Type: "Kimono", Color: "Navy Blue"})
	require.NoError(t, err)

	// "other" не совпадает ни с одной реальной категорией, поэтому все
	// четыре категории каталога участвуют в подборе
	for _, c := range combos {
		seen := map[Category]bool{}
		for _, it := range c.Items[1:] {
			seen[CategoryForType(it.Type)] = true
		}
		assert.True(t, seen[CategoryTops], "tops must not be excluded for unknown upload type")
	}
}

func TestGenerate_EmptyCatalogYieldsUploadOnly(t *testing.T) {
	g := NewGenerator(Catalog{}, WithRand(rand.New(rand.NewSource(1))))

	combos, err := g.Generate(UserUpload{ID: "u", Type: "Blazer", Color: "Navy Blue"})
	require.NoError(t, err)
	require.Len(t, combos, CombinationsPerUpload)
	for _, c := range combos {
		assert.Len(t, c.Items, 1)
		assert.Equal(t, "u", c.Items[0].ID)
	}
}

func TestGenerate_InvalidUpload(t *testing.T) {
	g := newTestGenerator(t)

	cases := []struct {
		name   string
		upload UserUpload
	}{
		{"missing id", UserUpload{Type: "Blazer", Color: "Black"}},
		{"missing type", UserUpload{ID: "u", Color: "Black"}},
		{"missing color", UserUpload{ID: "u", Type: "Blazer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Generate(tc.upload)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	u := UserUpload{ID: "u", Type: "Blazer", Color: "Navy Blue"}

	a, err := NewGenerator(DefaultCatalog(), WithRand(rand.New(rand.NewSource(42)))).Generate(u)
	require.NoError(t, err)
	b, err := NewGenerator(DefaultCatalog(), WithRand(rand.New(rand.NewSource(42)))).Generate(u)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
