package compat

import (
	"context"

	"github.com/kailas-cloud/roommatch/internal/domain/profile"
)

// ProfileSource loads single profiles.
type ProfileSource interface {
	Get(ctx context.Context, id string) (profile.UserProfile, error)
}
