package model

// ==================== Vocabulary Entities ====================

// Category owns zero or more subcategories. Names are globally unique.
type Category struct {
	BaseModel
	Name          string        `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

func (Category) TableName() string { return "categories" }

// Subcategory names are unique only within their parent category.
type Subcategory struct {
	BaseModel
	Name       string    `gorm:"size:100;uniqueIndex:idx_subcategory_name_category;not null" json:"name"`
	CategoryID string    `gorm:"size:36;uniqueIndex:idx_subcategory_name_category;index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Subcategory) TableName() string { return "subcategories" }

type Brand struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Brand) TableName() string { return "brands" }

type Color struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Color) TableName() string { return "colors" }

type Size struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Size) TableName() string { return "sizes" }

type Tag struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string { return "tags" }
