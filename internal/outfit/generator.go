package outfit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
)

// CombinationsPerUpload is how many combinations one generation run yields.
const CombinationsPerUpload = 3

var validate = validator.New()

// Generator synthesizes outfit combinations for a user upload from a
// static catalog. It is the client-side fallback used when the remote
// recommendation API has nothing for us; it keeps no state between calls.
type Generator struct {
	catalog Catalog
	rng     *rand.Rand
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithRand injects the randomness source used for tie-breaking among
// equally matching catalog items. Pass a seeded source in tests.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = r }
}

// NewGenerator builds a Generator over the given catalog.
func NewGenerator(catalog Catalog, opts ...GeneratorOption) *Generator {
	g := &Generator{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate produces exactly CombinationsPerUpload combinations for the
// upload. Styles cycle through the sequence suggested for the upload's
// color; each combination pairs the upload with at most one catalog item
// per other category. A style with no matching items in any category
// still yields a combination holding only the upload itself.
func (g *Generator) Generate(upload UserUpload) ([]Combination, error) {
	if err := validate.Struct(upload); err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}

	styles := SuggestStyles(upload.Color)
	uploadCategory := CategoryForType(upload.Type)

	combos := make([]Combination, 0, CombinationsPerUpload)
	for i := 0; i < CombinationsPerUpload; i++ {
		style := styles[i%len(styles)]
		combos = append(combos, g.build(upload, uploadCategory, style, i+1))
	}
	return combos, nil
}

func (g *Generator) build(upload UserUpload, uploadCategory Category, style Style, index int) Combination {
	items := []ClothingItem{upload.AsClothingItem()}

	for _, cat := range g.catalog.Categories() {
		if cat == uploadCategory {
			continue
		}
		matching := g.catalog.ItemsByStyle(cat, style)
		if len(matching) == 0 {
			// category contributes nothing for this style
			continue
		}
		items = append(items, matching[g.rng.Intn(len(matching))])
	}

	return Combination{
		ID:       fmt.Sprintf("%s-combo-%d", upload.ID, index),
		Name:     fmt.Sprintf("%s Combination %d", style, index),
		Style:    style,
		Items:    items,
		UploadID: upload.ID,
	}
}
