// Package compat computes the symmetric roommate compatibility score.
//
// score = min(100, noise + lifestyle + interest + commute + Base)
//
// Every sub-rule is symmetric (absolute differences and set intersections),
// so Score(a, b) == Score(b, a) for every pair.
package compat

import "github.com/kailas-cloud/roommatch/internal/domain/profile"

// Score bounds and sub-score caps.
const (
	Base = 10
	Max  = 100

	NoiseCap     = 30
	LifestyleCap = 25
	InterestCap  = 20
	CommuteCap   = 15

	// CommuteNeutral is awarded when either side has no commute distance.
	CommuteNeutral = 7

	lifestylePerTag     = 5
	lifestyleMaxShared  = 5
	interestPerItem     = 2
	interestMaxShared   = 10
	noiseOneStep        = 15
	commuteMinutesPerPt = 2
)

// Breakdown is the audited composition of a score.
type Breakdown struct {
	Noise           int      `json:"noise"`
	Lifestyle       int      `json:"lifestyle"`
	Interest        int      `json:"interest"`
	Commute         int      `json:"commute"`
	SharedInterests []string `json:"shared_interests"`
	SharedLifestyle []string `json:"shared_lifestyle"`
	Total           int      `json:"total"`
}

// Score returns the compatibility of a and b in [Base, Max].
func Score(a, b profile.UserProfile) int {
	return Explain(a, b).Total
}

// Explain returns the sub-scores and the shared sets behind Score.
func Explain(a, b profile.UserProfile) Breakdown {
	sharedLifestyle := intersect(a.Lifestyle, b.Lifestyle)
	sharedInterests := intersect(a.Interests, b.Interests)

	bd := Breakdown{
		Noise:           noiseScore(a.Noise, b.Noise),
		Lifestyle:       lifestyleScore(a.Lifestyle, b.Lifestyle, len(sharedLifestyle)),
		Interest:        interestScore(a.Interests, b.Interests, len(sharedInterests)),
		Commute:         commuteScore(a.Commute, b.Commute),
		SharedInterests: sharedInterests,
		SharedLifestyle: sharedLifestyle,
	}
	bd.Total = total(bd.Noise, bd.Lifestyle, bd.Interest, bd.Commute)
	return bd
}

func total(noise, lifestyle, interest, commute int) int {
	t := noise + lifestyle + interest + commute + Base
	if t > Max {
		return Max
	}
	return t
}

func noiseScore(a, b profile.NoiseLevel) int {
	switch abs(a.Ordinal() - b.Ordinal()) {
	case 0:
		return NoiseCap
	case 1:
		return noiseOneStep
	default:
		return 0
	}
}

func lifestyleScore(a, b []string, shared int) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return min(shared, lifestyleMaxShared) * lifestylePerTag
}

func interestScore(a, b []string, shared int) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return min(shared, interestMaxShared) * interestPerItem
}

func commuteScore(a, b *int) int {
	if a == nil || b == nil {
		return CommuteNeutral
	}
	return max(0, CommuteCap-abs(*a-*b)/commuteMinutesPerPt)
}

// intersect returns the distinct entries of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return []string{}
	}
	inB := make(map[string]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	out := make([]string, 0, min(len(a), len(b)))
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Intersects reports whether a and b share at least one entry.
func Intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	inB := make(map[string]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := inB[v]; ok {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
