package profile

import "strings"

// NoiseLevel is the tolerated household noise.
type NoiseLevel string

// Noise level constants.
const (
	NoiseLow    NoiseLevel = "Low"
	NoiseMedium NoiseLevel = "Medium"
	NoiseHigh   NoiseLevel = "High"
)

// Ordinal maps the level to 1/2/3. Unrecognized values count as Medium.
func (n NoiseLevel) Ordinal() int {
	switch n {
	case NoiseLow:
		return 1
	case NoiseHigh:
		return 3
	default:
		return 2
	}
}

// IsValid checks if the level is one of the supported values.
func (n NoiseLevel) IsValid() bool {
	return n == NoiseLow || n == NoiseMedium || n == NoiseHigh
}

// ParseNoiseLevel accepts any casing; unknown input degrades to Medium.
func ParseNoiseLevel(s string) NoiseLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return NoiseLow
	case "high":
		return NoiseHigh
	default:
		return NoiseMedium
	}
}

// RentalGoal is what a tenant is looking for.
type RentalGoal string

// Rental goal constants. The zero value is Unset.
const (
	GoalUnset                  RentalGoal = ""
	GoalSeekApartmentWithMates RentalGoal = "SeekApartmentWithRoommates"
	GoalSeekRoomWithMates      RentalGoal = "SeekRoomWithRoommates"
	GoalBoth                   RentalGoal = "Both"
)

// IsValid checks if the goal is one of the supported values (Unset included).
func (g RentalGoal) IsValid() bool {
	switch g {
	case GoalUnset, GoalSeekApartmentWithMates, GoalSeekRoomWithMates, GoalBoth:
		return true
	}
	return false
}

// ParseRentalGoal accepts canonical and snake_case spellings in any casing.
// Unknown input degrades to Unset.
func ParseRentalGoal(s string) RentalGoal {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	switch key {
	case "seekapartmentwithroommates":
		return GoalSeekApartmentWithMates
	case "seekroomwithroommates":
		return GoalSeekRoomWithMates
	case "both":
		return GoalBoth
	default:
		return GoalUnset
	}
}

// Role is the account role.
type Role string

// Role constants. Unknown roles are kept as RoleUnknown and never become candidates.
const (
	RoleUnknown Role = ""
	RoleTenant  Role = "Tenant"
	RoleOwner   Role = "Owner"
	RoleAdmin   Role = "Admin"
)

// ParseRole accepts any casing; unknown input yields RoleUnknown.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tenant":
		return RoleTenant
	case "owner":
		return RoleOwner
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}
