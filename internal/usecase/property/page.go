package property

import (
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/domain"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
)

// Sort is an optional presentation order applied after filtering.
type Sort string

// Sort constants. SortNone keeps catalog order.
const (
	SortNone      Sort = ""
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// ParseSort validates a sort parameter.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case SortNone, SortPriceAsc, SortPriceDesc:
		return Sort(s), nil
	default:
		return SortNone, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidQuery, s)
	}
}

// Page selects a window of the filtered result. A zero Limit means the service default.
type Page struct {
	Limit  int
	Offset int
	Sort   Sort
}

// Result is one page of matching records plus the total match count.
// Limit and Offset echo the effective window.
type Result struct {
	Items  []domprop.Record
	Total  int
	Limit  int
	Offset int
}
