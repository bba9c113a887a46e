// Package query compiles inbound filter/sort parameters into a typed
// predicate the repository layer translates to SQL. It is deliberately
// store-agnostic: no gorm types leak in here.
package query

// Cond is one leaf condition of a compiled predicate. The predicate as a
// whole is the conjunction of its leaves.
type Cond interface {
	isCond()
}

// CategoryIs matches products whose category has exactly this name.
type CategoryIs struct{ Name string }

// SubcategoryIs matches products whose subcategory has exactly this name.
type SubcategoryIs struct{ Name string }

// BrandIn matches products whose brand name is in the set.
type BrandIn struct{ Names []string }

// SizeAny matches products linked to at least one size in the set.
type SizeAny struct{ Names []string }

// ColorAny matches products linked to at least one color in the set.
type ColorAny struct{ Names []string }

// PriceAtLeast / PriceAtMost are inclusive bounds.
type PriceAtLeast struct{ Value float64 }
type PriceAtMost struct{ Value float64 }

// InStockIs matches the exact stock flag.
type InStockIs struct{ Value bool }

// SearchText matches a case-insensitive substring against name, description,
// brand name, or any linked tag name (OR across the four).
type SearchText struct{ Term string }

func (CategoryIs) isCond()    {}
func (SubcategoryIs) isCond() {}
func (BrandIn) isCond()       {}
func (SizeAny) isCond()       {}
func (ColorAny) isCond()      {}
func (PriceAtLeast) isCond()  {}
func (PriceAtMost) isCond()   {}
func (InStockIs) isCond()     {}
func (SearchText) isCond()    {}

// Predicate is an AND of leaf conditions. The zero value matches everything.
type Predicate struct {
	conds []Cond
}

func (p Predicate) Conds() []Cond { return p.conds }

func (p Predicate) Empty() bool { return len(p.conds) == 0 }

func (p *Predicate) add(c Cond) { p.conds = append(p.conds, c) }
