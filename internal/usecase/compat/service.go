package compat

import (
	"context"
	"fmt"

	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	"github.com/kailas-cloud/roommatch/internal/metrics"
)

// Service explains the compatibility of two stored users.
type Service struct {
	profiles ProfileSource
}

// New creates a compatibility service.
func New(profiles ProfileSource) *Service {
	return &Service{profiles: profiles}
}

// Compare returns the score breakdown of users a and b.
func (s *Service) Compare(ctx context.Context, aID, bID string) (domcompat.Breakdown, error) {
	a, err := s.profiles.Get(ctx, aID)
	if err != nil {
		return domcompat.Breakdown{}, fmt.Errorf("get user %s: %w", aID, err)
	}
	b, err := s.profiles.Get(ctx, bID)
	if err != nil {
		return domcompat.Breakdown{}, fmt.Errorf("get user %s: %w", bID, err)
	}

	bd := domcompat.Explain(a, b)
	metrics.CompatibilityScore.WithLabelValues("compare").Observe(float64(bd.Total))
	return bd, nil
}
