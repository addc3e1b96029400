package outfit

// Catalog is a static, read-only set of clothing items grouped by category.
type Catalog map[Category][]ClothingItem

// Categories returns the real catalog categories in a stable order.
func (c Catalog) Categories() []Category {
	order := []Category{CategoryTops, CategoryBottoms, CategoryFootwear, CategoryAccessories}
	out := make([]Category, 0, len(order))
	for _, cat := range order {
		if _, ok := c[cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

// ItemsByStyle returns catalog items of the category tagged with the style.
func (c Catalog) ItemsByStyle(cat Category, s Style) []ClothingItem {
	var out []ClothingItem
	for _, it := range c[cat] {
		if it.HasStyle(s) {
			out = append(out, it)
		}
	}
	return out
}

// All returns every catalog item across categories.
func (c Catalog) All() []ClothingItem {
	var out []ClothingItem
	for _, cat := range c.Categories() {
		out = append(out, c[cat]...)
	}
	return out
}

// DefaultCatalog returns the built-in demo catalog used by the client-side
// generator and to seed the server catalog table.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryTops: {
			{
				ID:       "top-1",
				Type:     "Blazer",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/ce35dbfe74af74ea9c9a25b0c3d5995b_images.jpg",
				Color:    "Navy Blue",
				Material: "Wool Blend",
				Brand:    "Arrow",
				Styles:   []Style{StyleFormal, StyleSemiFormal},
			},
			{
				ID:       "top-2",
				Type:     "Blazer",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/b9f4bd6c8d2130f2dff55251b41d1d62_images.jpg",
				Color:    "Light Grey",
				Material: "Linen Blend",
				Brand:    "Van Heusen",
				Styles:   []Style{StyleSemiFormal, StyleCasual},
			},
			{
				ID:       "top-3",
				Type:     "Blazer",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/ce35dbfe74af74ea9c9a25b0c3d5995b_images.jpg",
				Color:    "Charcoal",
				Material: "Premium Wool",
				Brand:    "Blackberrys",
				Styles:   []Style{StyleFormal, StylePremium},
			},
		},
		CategoryBottoms: {
			{
				ID:       "bottom-1",
				Type:     "Pants",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/9eb119d3dd0976d16ecc5f15f81d9cd7_images.jpg",
				Color:    "Dark Grey",
				Material: "Cotton",
				Brand:    "Louis Philippe",
				Styles:   []Style{StyleFormal, StyleSemiFormal},
			},
			{
				ID:       "bottom-2",
				Type:     "Pant",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/c0e5f6af4050842c42ea60d73e4e6f2b_images.jpg",
				Color:    "Beige",
				Material: "Cotton Blend",
				Brand:    "Allen Solly",
				Styles:   []Style{StyleSemiFormal, StyleCasual},
			},
			{
				ID:       "bottom-3",
				Type:     "Pant",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/9eb119d3dd0976d16ecc5f15f81d9cd7_images.jpg",
				Color:    "Black",
				Material: "Wool Blend",
				Brand:    "Park Avenue",
				Styles:   []Style{StyleFormal, StylePremium},
			},
		},
		CategoryFootwear: {
			{
				ID:       "shoe-1",
				Type:     "Shoes",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/253b5bb72db493adf8566e20aa2d944c_images.jpg",
				Color:    "Black",
				Material: "Leather",
				Brand:    "Hush Puppies",
				Styles:   []Style{StyleFormal, StyleSemiFormal},
			},
			{
				ID:       "shoe-2",
				Type:     "Shoes",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/8ad35a71d39ef0432055771175ca3adc_images.jpg",
				Color:    "Brown",
				Material: "Suede",
				Brand:    "Clarks",
				Styles:   []Style{StyleSemiFormal, StyleCasual},
			},
			{
				ID:       "shoe-3",
				Type:     "Shoes",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/253b5bb72db493adf8566e20aa2d944c_images.jpg",
				Color:    "Black",
				Material: "Premium Leather",
				Brand:    "Ruosh",
				Styles:   []Style{StyleFormal, StylePremium},
			},
		},
		CategoryAccessories: {
			{
				ID:       "acc-1",
				Type:     "Watch",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/25de793ebfeae19ad56eb89d39a482da_images.jpg",
				Color:    "Silver",
				Material: "Stainless Steel",
				Brand:    "Fossil",
				Styles:   []Style{StyleFormal, StyleSemiFormal, StyleCasual},
			},
			{
				ID:       "acc-2",
				Type:     "Watch",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/25de793ebfeae19ad56eb89d39a482da_images.jpg",
				Color:    "Silver",
				Material: "Stainless Steel",
				Brand:    "Fossil",
				Styles:   []Style{StyleSemiFormal, StyleCasual},
			},
			{
				ID:       "acc-3",
				Type:     "Watch",
				ImageURL: "http://assets.myntassets.com/v1/images/style/properties/25de793ebfeae19ad56eb89d39a482da_images.jpg",
				Color:    "Gold",
				Material: "Metal",
				Brand:    "Titan",
				Styles:   []Style{StyleFormal, StylePremium},
			},
		},
	}
}
