package dto

// ==================== Storefront Query ====================

// ProductListReq carries the raw storefront query string. List-valued
// filters arrive comma-separated; everything here is optional and bogus
// values fall back to defaults instead of failing.
type ProductListReq struct {
	Category      string `form:"category"`
	Subcategory   string `form:"subcategory"`
	Brands        string `form:"brands"`
	Sizes         string `form:"sizes"`
	Colors        string `form:"colors"`
	MinPrice      string `form:"minPrice"`
	MaxPrice      string `form:"maxPrice"`
	InStock       string `form:"inStock"`
	Search        string `form:"search"`
	SortField     string `form:"sortField"`
	SortDirection string `form:"sortDirection"`
	Page          string `form:"page"`
	Limit         string `form:"limit"`
}

// ==================== Storefront Response ====================

// ProductResp is the normalized wire shape of one product. Missing
// relations render as display fallbacks rather than nulls, and list fields
// are always present, possibly empty.
type ProductResp struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	InStock       bool     `json:"inStock"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Brand         string   `json:"brand"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"createdAt"`
}

// PriceRange spans the whole catalog, not the filtered subset.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetBlock lists every selectable filter value in the store.
type FacetBlock struct {
	Categories    []string   `json:"categories"`
	Subcategories []string   `json:"subcategories"`
	Brands        []string   `json:"brands"`
	Colors        []string   `json:"colors"`
	Sizes         []string   `json:"sizes"`
	PriceRange    PriceRange `json:"priceRange"`
}

// ProductsResponse is the storefront listing envelope.
type ProductsResponse struct {
	Products   []ProductResp `json:"products"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
	Filters    FacetBlock    `json:"filters"`
}

// ==================== Admin Authoring ====================

// ProductCreateReq upserts its vocabulary fields by name before the
// product row is written.
type ProductCreateReq struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"min=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	InStock       *bool    `json:"inStock"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Brand         string   `json:"brand"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Tags          []string `json:"tags"`
}

// ProductPatchReq patches only the fields that are present. Providing a
// list field replaces that association set wholesale.
type ProductPatchReq struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Image         *string   `json:"image"`
	Images        *[]string `json:"images"`
	InStock       *bool     `json:"inStock"`
	Category      *string   `json:"category"`
	Subcategory   *string   `json:"subcategory"`
	Brand         *string   `json:"brand"`
	Sizes         *[]string `json:"sizes"`
	Colors        *[]string `json:"colors"`
	Tags          *[]string `json:"tags"`
}
