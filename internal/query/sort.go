package query

// ==================== Sort ====================

// SortField enumerates the orderable columns. SortFieldBrand orders by the
// related brand's name, not the foreign key.
type SortField string

const (
	SortFieldName      SortField = "name"
	SortFieldPrice     SortField = "price"
	SortFieldRating    SortField = "rating"
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldBrand     SortField = "brand"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Sort struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is newest-first, matching the storefront's home grid.
var DefaultSort = Sort{Field: SortFieldCreatedAt, Direction: SortDesc}

// ParseSort maps raw query-string values onto the allowed set. Unknown
// values silently fall back to the default so stale bookmarked URLs keep
// working instead of erroring.
func ParseSort(field, direction string) Sort {
	s := DefaultSort
	switch SortField(field) {
	case SortFieldName, SortFieldPrice, SortFieldRating, SortFieldCreatedAt, SortFieldBrand:
		s.Field = SortField(field)
	}
	switch SortDirection(direction) {
	case SortAsc, SortDesc:
		s.Direction = SortDirection(direction)
	}
	return s
}

// ==================== Pagination ====================

// DefaultLimit matches the storefront's 12-per-page grid.
const DefaultLimit = 12

// NormalizePage treats non-positive pages as the first page.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// NormalizeLimit treats non-positive limits as the default page size, never
// as "return everything".
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
