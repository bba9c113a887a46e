package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestCompile_EmptyRequestMatchesEverything(t *testing.T) {
	p := FilterRequest{}.Compile()
	assert.True(t, p.Empty())
	assert.Empty(t, p.Conds())
}

func TestCompile_EmptyListsImposeNoConstraint(t *testing.T) {
	p := FilterRequest{
		Brands: []string{},
		Sizes:  []string{},
		Colors: []string{},
	}.Compile()
	assert.True(t, p.Empty(), "empty lists must compile like omitted lists")
}

func TestCompile_BlankListEntriesAreDropped(t *testing.T) {
	p := FilterRequest{Brands: []string{"", "  ", "Nike"}}.Compile()

	conds := p.Conds()
	assert.Len(t, conds, 1)
	assert.Equal(t, BrandIn{Names: []string{"Nike"}}, conds[0])
}

func TestCompile_AllBlankListCompilesToNothing(t *testing.T) {
	p := FilterRequest{Colors: []string{"", "   "}}.Compile()
	assert.True(t, p.Empty())
}

func TestCompile_WhitespaceSearchIsAbsent(t *testing.T) {
	assert.True(t, FilterRequest{Search: "   "}.Compile().Empty())
	assert.True(t, FilterRequest{Search: ""}.Compile().Empty())

	p := FilterRequest{Search: "  hoodie "}.Compile()
	assert.Equal(t, []Cond{SearchText{Term: "hoodie"}}, p.Conds())
}

func TestCompile_AllFieldsEmitOneLeafEach(t *testing.T) {
	p := FilterRequest{
		Category:    "Men",
		Subcategory: "Shirts",
		Brands:      []string{"Nike", "Adidas"},
		Sizes:       []string{"M"},
		Colors:      []string{"Blue"},
		MinPrice:    floatPtr(10),
		MaxPrice:    floatPtr(50),
		InStock:     boolPtr(true),
		Search:      "hood",
	}.Compile()

	assert.Equal(t, []Cond{
		CategoryIs{Name: "Men"},
		SubcategoryIs{Name: "Shirts"},
		BrandIn{Names: []string{"Nike", "Adidas"}},
		SizeAny{Names: []string{"M"}},
		ColorAny{Names: []string{"Blue"}},
		PriceAtLeast{Value: 10},
		PriceAtMost{Value: 50},
		InStockIs{Value: true},
		SearchText{Term: "hood"},
	}, p.Conds())
}

func TestCompile_PriceBoundsAreIndependent(t *testing.T) {
	p := FilterRequest{MinPrice: floatPtr(0)}.Compile()
	assert.Equal(t, []Cond{PriceAtLeast{Value: 0}}, p.Conds(), "explicit zero bound must still constrain")

	p = FilterRequest{MaxPrice: floatPtr(100)}.Compile()
	assert.Equal(t, []Cond{PriceAtMost{Value: 100}}, p.Conds())
}

func TestCompile_InStockFalseStillConstrains(t *testing.T) {
	p := FilterRequest{InStock: boolPtr(false)}.Compile()
	assert.Equal(t, []Cond{InStockIs{Value: false}}, p.Conds())
}
