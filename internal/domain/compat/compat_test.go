package compat

import (
	"math/rand/v2"
	"testing"

	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	"github.com/kailas-cloud/roommatch/internal/domain/vocab"
)

func tenant(id string) profile.UserProfile {
	return profile.UserProfile{ID: id, City: "Madrid", Role: profile.RoleTenant, Noise: profile.NoiseMedium}
}

func TestNoiseScore(t *testing.T) {
	tests := []struct {
		a, b profile.NoiseLevel
		want int
	}{
		{profile.NoiseLow, profile.NoiseLow, 30},
		{profile.NoiseLow, profile.NoiseMedium, 15},
		{profile.NoiseHigh, profile.NoiseMedium, 15},
		{profile.NoiseLow, profile.NoiseHigh, 0},
		{"garbage", profile.NoiseMedium, 30},
		{"garbage", profile.NoiseHigh, 15},
	}
	for _, tt := range tests {
		if got := noiseScore(tt.a, tt.b); got != tt.want {
			t.Errorf("noiseScore(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLifestyleScore_CapAndEmpty(t *testing.T) {
	all := vocab.Lifestyle.Entries()
	if got := lifestyleScore(nil, all, 0); got != 0 {
		t.Errorf("empty side: got %d, want 0", got)
	}
	if got := lifestyleScore(all, all, len(all)); got != LifestyleCap {
		t.Errorf("all shared: got %d, want %d", got, LifestyleCap)
	}
}

func TestInterestScore_CapAndEmpty(t *testing.T) {
	all := vocab.Interests.Entries()
	if got := interestScore(all, []string{}, 0); got != 0 {
		t.Errorf("empty side: got %d, want 0", got)
	}
	if got := interestScore(all, all, len(all)); got != InterestCap {
		t.Errorf("all shared: got %d, want %d", got, InterestCap)
	}
	if got := interestScore(all, all, 4); got != 8 {
		t.Errorf("4 shared: got %d, want 8", got)
	}
}

func TestCommuteScore(t *testing.T) {
	tests := []struct {
		name string
		a, b *int
		want int
	}{
		{"both unset", nil, nil, CommuteNeutral},
		{"one unset", profile.Minutes(10), nil, CommuteNeutral},
		{"equal", profile.Minutes(20), profile.Minutes(20), 15},
		{"diff 1 floors to 0", profile.Minutes(20), profile.Minutes(21), 15},
		{"diff 3", profile.Minutes(20), profile.Minutes(23), 14},
		{"diff 30", profile.Minutes(0), profile.Minutes(30), 0},
		{"diff 90", profile.Minutes(100), profile.Minutes(10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commuteScore(tt.a, tt.b); got != tt.want {
				t.Errorf("commuteScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_ScenarioC(t *testing.T) {
	a := tenant("a")
	a.Noise = profile.NoiseLow
	a.Lifestyle = []string{"Quiet", "Creative", "DayPerson", "Tidy"}
	a.Interests = []string{"Music", "Art", "Cooking", "Travel", "Yoga"}
	a.Commute = profile.Minutes(20)

	b := tenant("b")
	b.Noise = profile.NoiseHigh
	b.Lifestyle = []string{"Quiet", "Creative", "DayPerson", "NightOwl"}
	b.Interests = []string{"Music", "Art", "Cooking", "Travel", "Gaming"}
	b.Commute = profile.Minutes(20)

	bd := Explain(a, b)
	if bd.Noise != 0 {
		t.Errorf("Noise = %d, want 0", bd.Noise)
	}
	if bd.Lifestyle != 15 {
		t.Errorf("Lifestyle = %d, want 15", bd.Lifestyle)
	}
	if bd.Interest != 8 {
		t.Errorf("Interest = %d, want 8", bd.Interest)
	}
	if bd.Commute != 15 {
		t.Errorf("Commute = %d, want 15", bd.Commute)
	}
	if bd.Total != 48 {
		t.Errorf("Total = %d, want 48", bd.Total)
	}
	if len(bd.SharedLifestyle) != 3 || len(bd.SharedInterests) != 4 {
		t.Errorf("shared = %v / %v", bd.SharedLifestyle, bd.SharedInterests)
	}
	if Score(a, b) != 48 {
		t.Errorf("Score = %d, want 48", Score(a, b))
	}
}

func TestScore_IdentityCeiling(t *testing.T) {
	a := tenant("a")
	a.Lifestyle = vocab.Lifestyle.Entries()[:5]
	a.Interests = vocab.Interests.Entries()[:10]

	b := a
	b.ID = "b"

	// Unset commute only earns the neutral 7 points.
	if got := Score(a, b); got != Max-CommuteCap+CommuteNeutral {
		t.Errorf("both commute unset: Score = %d, want %d", got, Max-CommuteCap+CommuteNeutral)
	}

	a.Commute = profile.Minutes(25)
	b.Commute = profile.Minutes(25)
	if got := Score(a, b); got != Max {
		t.Errorf("equal commute: Score = %d, want %d", got, Max)
	}
}

func TestScore_ZeroFloor(t *testing.T) {
	a := tenant("a")
	a.Noise = profile.NoiseLow
	a.Lifestyle = []string{"Quiet"}
	a.Interests = []string{"Reading"}
	a.Commute = profile.Minutes(5)

	b := tenant("b")
	b.Noise = profile.NoiseHigh
	b.Lifestyle = []string{"Social"}
	b.Interests = []string{"Gaming"}
	b.Commute = profile.Minutes(35)

	if got := Score(a, b); got != Base {
		t.Errorf("Score = %d, want %d", got, Base)
	}
}

func TestExplain_PartsSumToTotal(t *testing.T) {
	a := tenant("a")
	a.Lifestyle = []string{"Quiet", "Tidy"}
	b := tenant("b")
	b.Lifestyle = []string{"Tidy"}
	b.Commute = profile.Minutes(3)

	bd := Explain(a, b)
	sum := bd.Noise + bd.Lifestyle + bd.Interest + bd.Commute + Base
	if sum > Max {
		sum = Max
	}
	if sum != bd.Total {
		t.Errorf("parts sum %d != total %d", sum, bd.Total)
	}
	if bd.SharedInterests == nil {
		t.Error("SharedInterests should be empty, not nil")
	}
}

func TestScore_SymmetryAndRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	noises := []profile.NoiseLevel{profile.NoiseLow, profile.NoiseMedium, profile.NoiseHigh, "unknown"}

	randomSubset := func(all []string) []string {
		var out []string
		for _, v := range all {
			if rng.IntN(3) == 0 {
				out = append(out, v)
			}
		}
		return out
	}
	randomProfile := func(id string) profile.UserProfile {
		p := tenant(id)
		p.Noise = noises[rng.IntN(len(noises))]
		p.Lifestyle = randomSubset(vocab.Lifestyle.Entries())
		p.Interests = randomSubset(vocab.Interests.Entries())
		if rng.IntN(4) != 0 {
			p.Commute = profile.Minutes(rng.IntN(120))
		}
		return p
	}

	for i := 0; i < 500; i++ {
		a, b := randomProfile("a"), randomProfile("b")
		ab, ba := Score(a, b), Score(b, a)
		if ab != ba {
			t.Fatalf("asymmetric: Score(a,b)=%d Score(b,a)=%d\na=%+v\nb=%+v", ab, ba, a, b)
		}
		if ab < Base || ab > Max {
			t.Fatalf("out of range: %d", ab)
		}
	}
}

func TestIntersects(t *testing.T) {
	if Intersects(nil, []string{"a"}) {
		t.Error("nil side should not intersect")
	}
	if !Intersects([]string{"a", "b"}, []string{"c", "b"}) {
		t.Error("expected intersection")
	}
	if Intersects([]string{"a"}, []string{"b"}) {
		t.Error("unexpected intersection")
	}
}
