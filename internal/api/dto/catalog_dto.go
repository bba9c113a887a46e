package dto

// ==================== Vocabulary ====================

type VocabCreateReq struct {
	Name string `json:"name" binding:"required"`
}

// SubcategoryCreateReq scopes the new name to one category.
type SubcategoryCreateReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type SubcategoryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryResp struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Subcategories []SubcategoryResp `json:"subcategories"`
}

// FiltersResp is the admin /filters payload: every vocabulary list plus
// the global price range in one round trip.
type FiltersResp struct {
	Categories    []string   `json:"categories"`
	Subcategories []string   `json:"subcategories"`
	Brands        []string   `json:"brands"`
	Colors        []string   `json:"colors"`
	Sizes         []string   `json:"sizes"`
	Tags          []string   `json:"tags"`
	PriceRange    PriceRange `json:"priceRange"`
}
