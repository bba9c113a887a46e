package model

import (
	"gorm.io/datatypes"
)

// Product is the storefront's central relation. Category, subcategory and
// brand links are nullable; the read path substitutes display fallbacks for
// missing category/brand, while a missing subcategory stays absent.
type Product struct {
	BaseModel

	// --- Listing basics ---
	Name        string `gorm:"size:255;index;not null"`
	Description string `gorm:"type:text"`

	// --- Pricing ---
	// OriginalPrice is the pre-discount price; nil means "never discounted"
	// and must stay nil on the wire, not 0.
	Price         float64 `gorm:"not null;index"`
	OriginalPrice *float64

	// --- Media ---
	Image  string `gorm:"size:512"`
	Images datatypes.JSONSlice[string]

	// --- Availability & social proof ---
	// No column default here: gorm skips zero-value fields that carry one
	// on INSERT, which would turn an out-of-stock create into in-stock.
	// The service layer owns the in-stock default for new products.
	InStock     bool    `gorm:"index"`
	Rating      float64 `gorm:"default:0"`
	ReviewCount int     `gorm:"default:0"`

	// --- Relational links ---
	CategoryID    *string      `gorm:"size:36;index"`
	Category      *Category    `gorm:"foreignKey:CategoryID"`
	SubcategoryID *string      `gorm:"size:36;index"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID"`
	BrandID       *string      `gorm:"size:36;index"`
	Brand         *Brand       `gorm:"foreignKey:BrandID"`

	Colors []Color `gorm:"many2many:product_colors"`
	Sizes  []Size  `gorm:"many2many:product_sizes"`
	Tags   []Tag   `gorm:"many2many:product_tags"`
}

func (Product) TableName() string { return "products" }
