package services

import (
	"math"
	"testing"

	"wine-insights/models"
	"wine-insights/utils"
)

func notedReviews() []*models.Review {
	return []*models.Review{
		{Country: "Italy", TastingNotes: []string{"cherr", "tann"}},
		{Country: "Italy", TastingNotes: []string{"cherr"}},
		{Country: "France", TastingNotes: []string{"oak"}},
		{Country: "France", TastingNotes: []string{"cherr", "oak"}},
		{Country: "Spain", TastingNotes: nil}, // no notes, excluded from the base
	}
}

func findStat(stats []*models.DescriptorStat, country, descriptor string) *models.DescriptorStat {
	for _, s := range stats {
		if s.Country == country && s.Descriptor == descriptor {
			return s
		}
	}
	return nil
}

func TestAnalyzeExcludesNotelessReviews(t *testing.T) {
	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(notedReviews())

	if a.BaseReviews != 4 {
		t.Errorf("BaseReviews: got %d, want 4", a.BaseReviews)
	}
	for _, c := range a.Countries() {
		if c == "Spain" {
			t.Error("noteless country must not appear in the analysis")
		}
	}
}

func TestAnalyzeExplodePreservesParents(t *testing.T) {
	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(notedReviews())

	if len(a.Exploded) != 6 {
		t.Fatalf("exploded rows: got %d, want 6", len(a.Exploded))
	}
	for _, e := range a.Exploded {
		if e.Review == nil {
			t.Fatal("exploded row lost its parent review")
		}
		found := false
		for _, d := range e.Review.TastingNotes {
			if d == e.Descriptor {
				found = true
			}
		}
		if !found {
			t.Errorf("exploded descriptor %q not in parent notes %v", e.Descriptor, e.Review.TastingNotes)
		}
	}
}

func TestAnalyzeFrequencies(t *testing.T) {
	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(notedReviews())

	// Base of 4: cherr in 3 reviews (75%), oak in 2 (50%), tann in 1 (25%).
	tests := []struct {
		country, descriptor string
		count               int
		pct, global, dist   float64
	}{
		{"Italy", "cherr", 2, 100, 75, 25},
		{"Italy", "tann", 1, 50, 25, 25},
		{"France", "oak", 2, 100, 50, 50},
		{"France", "cherr", 1, 50, 75, -25},
	}
	for _, tt := range tests {
		s := findStat(a.Stats, tt.country, tt.descriptor)
		if s == nil {
			t.Errorf("missing stat for (%s, %s)", tt.country, tt.descriptor)
			continue
		}
		if s.Count != tt.count || s.Percentage != tt.pct || s.GlobalPct != tt.global || s.Distinctiveness != tt.dist {
			t.Errorf("(%s, %s): got count=%d pct=%.1f global=%.1f dist=%.1f, want %d / %.1f / %.1f / %.1f",
				tt.country, tt.descriptor, s.Count, s.Percentage, s.GlobalPct, s.Distinctiveness,
				tt.count, tt.pct, tt.global, tt.dist)
		}
	}
}

// For every descriptor, distinctiveness weighted by each country's share of
// the base must cancel out: local deviations from the global rate are a
// zero-sum redistribution.
func TestDistinctivenessWeightedSumIsZero(t *testing.T) {
	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(notedReviews())

	globals := make(map[string]float64)
	for _, s := range a.Stats {
		globals[s.Descriptor] = s.GlobalPct
	}

	total := float64(a.BaseReviews)
	for descriptor, global := range globals {
		var sum float64
		for _, country := range a.Countries() {
			weight := float64(a.CountryReviews(country)) / total
			if s := findStat(a.Stats, country, descriptor); s != nil {
				sum += weight * s.Distinctiveness
			} else {
				// Absent pair: local share is zero.
				sum += weight * (0 - global)
			}
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("descriptor %q: weighted distinctiveness sums to %.6f, want 0", descriptor, sum)
		}
	}
}

func TestTopRankingsAreIndependent(t *testing.T) {
	var reviews []*models.Review
	for i := 0; i < 10; i++ {
		notes := []string{"cherr"}
		if i == 0 {
			notes = append(notes, "truffle")
		}
		reviews = append(reviews, &models.Review{Country: "Italy", TastingNotes: notes})
	}
	for i := 0; i < 10; i++ {
		reviews = append(reviews, &models.Review{Country: "France", TastingNotes: []string{"cherr"}})
	}

	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(reviews)

	byCount := a.TopByCount("Italy", 1)
	if byCount[0].Descriptor != "cherr" {
		t.Errorf("TopByCount: got %q, want cherr", byCount[0].Descriptor)
	}

	// cherr is universal (distinctiveness 0); truffle only shows in Italy.
	byDist := a.TopByDistinctiveness("Italy", 1)
	if byDist[0].Descriptor != "truffle" {
		t.Errorf("TopByDistinctiveness: got %q, want truffle", byDist[0].Descriptor)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewDistinctivenessAnalyzer(utils.NewTestLogger()).Analyze(nil)
	if a.BaseReviews != 0 || len(a.Stats) != 0 {
		t.Errorf("empty input: got base=%d stats=%d, want 0 / 0", a.BaseReviews, len(a.Stats))
	}
	if top := a.TopByCount("Italy", 5); len(top) != 0 {
		t.Errorf("TopByCount on empty analysis: got %d rows", len(top))
	}
}
