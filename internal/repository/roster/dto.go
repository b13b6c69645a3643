package roster

import (
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	"github.com/kailas-cloud/roommatch/internal/domain/vocab"
)

// userRow is one row of the users table.
type userRow struct {
	ID             string         `db:"id"`
	City           string         `db:"city"`
	SubLocality    sql.NullString `db:"sub_locality"`
	Interests      pq.StringArray `db:"interests"`
	Lifestyle      pq.StringArray `db:"lifestyle"`
	NoiseLevel     sql.NullString `db:"noise_level"`
	CommuteMinutes sql.NullInt32  `db:"commute_minutes"`
	RentalGoal     sql.NullString `db:"rental_goal"`
	Role           string         `db:"role"`
}

// toProfile converts a row, degrading malformed values instead of failing:
// unknown enums take their documented defaults and unregistered vocabulary is dropped.
func toProfile(r userRow, log *zap.Logger) profile.UserProfile {
	p := profile.UserProfile{
		ID:          r.ID,
		City:        r.City,
		SubLocality: r.SubLocality.String,
		Noise:       profile.ParseNoiseLevel(r.NoiseLevel.String),
		Goal:        profile.ParseRentalGoal(r.RentalGoal.String),
		Role:        profile.ParseRole(r.Role),
	}
	if r.CommuteMinutes.Valid && r.CommuteMinutes.Int32 >= 0 {
		p.Commute = profile.Minutes(int(r.CommuteMinutes.Int32))
	}
	p.Interests = known(vocab.Interests, r.Interests, r.ID, log)
	p.Lifestyle = known(vocab.Lifestyle, r.Lifestyle, r.ID, log)
	return p
}

func known(reg vocab.Registry, values []string, userID string, log *zap.Logger) []string {
	ok, unknown := reg.Partition(values)
	if len(unknown) > 0 {
		log.Warn("dropping unregistered vocabulary",
			zap.String("user_id", userID),
			zap.String("registry", reg.Name()),
			zap.Strings("values", unknown),
		)
	}
	return ok
}
