package profile

import (
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/domain/vocab"
)

// UserProfile is the scoring input for one user. Callers own it; the engine never mutates it.
type UserProfile struct {
	ID          string     `json:"id"`
	City        string     `json:"city"`
	SubLocality string     `json:"sub_locality,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	Lifestyle   []string   `json:"lifestyle,omitempty"`
	Noise       NoiseLevel `json:"noise_level"`
	Commute     *int       `json:"commute_minutes,omitempty"`
	Goal        RentalGoal `json:"rental_goal,omitempty"`
	Role        Role       `json:"role"`
}

// Minutes returns a commute distance pointer.
func Minutes(m int) *int { return &m }

// New validates p against the closed vocabularies and returns a copy with
// deduplicated interest and lifestyle sets.
func New(p UserProfile) (UserProfile, error) {
	if p.ID == "" {
		return UserProfile{}, fmt.Errorf("%w: id is required", domain.ErrInvalidProfile)
	}
	if p.Commute != nil && *p.Commute < 0 {
		return UserProfile{}, fmt.Errorf("%w: commute must be non-negative, got %d", domain.ErrInvalidProfile, *p.Commute)
	}
	interests, err := vocab.Interests.Validate(p.Interests)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: %w", domain.ErrInvalidProfile, err)
	}
	lifestyle, err := vocab.Lifestyle.Validate(p.Lifestyle)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: %w", domain.ErrInvalidProfile, err)
	}

	out := p
	out.Interests = interests
	out.Lifestyle = lifestyle
	if p.Commute != nil {
		out.Commute = Minutes(*p.Commute)
	}
	return out, nil
}

// IsTenant reports whether the profile can appear as a feed candidate.
func (p UserProfile) IsTenant() bool { return p.Role == RoleTenant }

// HasCommute reports whether a commute distance is set.
func (p UserProfile) HasCommute() bool { return p.Commute != nil }
