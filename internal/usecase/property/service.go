package property

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	"github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/internal/metrics"
)

// Service searches the listing catalog.
type Service struct {
	catalog      Catalog
	defaultLimit int
	maxLimit     int
}

// New creates a property search service.
func New(catalog Catalog, defaultLimit, maxLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &Service{catalog: catalog, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Search filters the catalog with q, then sorts and paginates the matches.
// Filtering itself is order-preserving; only the presentation layer reorders.
func (s *Service) Search(ctx context.Context, q domprop.Query, privileged bool, page Page) (Result, error) {
	limit, err := s.limit(page)
	if err != nil {
		return Result{}, err
	}

	records, err := s.catalog.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list catalog: %w", err)
	}

	matched := domprop.Filter(records, q, privileged)
	metrics.PropertySearchResults.WithLabelValues(strconv.FormatBool(privileged)).Observe(float64(len(matched)))
	logger.FromContext(ctx).Debug("property search",
		zap.String("query", q.String()),
		zap.Bool("privileged", privileged),
		zap.Int("catalog", len(records)),
		zap.Int("matched", len(matched)),
	)

	sortRecords(matched, page.Sort)

	total := len(matched)
	start := min(page.Offset, total)
	end := min(start+limit, total)
	return Result{Items: matched[start:end], Total: total, Limit: limit, Offset: page.Offset}, nil
}

func (s *Service) limit(page Page) (int, error) {
	if page.Offset < 0 {
		return 0, fmt.Errorf("%w: offset must be non-negative", domain.ErrInvalidQuery)
	}
	switch {
	case page.Limit < 0:
		return 0, fmt.Errorf("%w: limit must be non-negative", domain.ErrInvalidQuery)
	case page.Limit == 0:
		return s.defaultLimit, nil
	case page.Limit > s.maxLimit:
		return 0, fmt.Errorf("%w: limit exceeds %d", domain.ErrInvalidQuery, s.maxLimit)
	}
	return page.Limit, nil
}

// sortRecords is stable, so equal prices keep catalog order.
func sortRecords(rs []domprop.Record, by Sort) {
	switch by {
	case SortPriceAsc:
		slices.SortStableFunc(rs, func(a, b domprop.Record) int { return cmpInt64(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(rs, func(a, b domprop.Record) int { return cmpInt64(b.Price, a.Price) })
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
