package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"wine-insights/models"
	"wine-insights/services"
	"wine-insights/utils"
)

func chartFixture() []*models.Review {
	var reviews []*models.Review
	for i := 0; i < 20; i++ {
		country := "Italy"
		notes := []string{"cherr", "tann"}
		if i%2 == 0 {
			country = "France"
			notes = []string{"oak"}
		}
		reviews = append(reviews, &models.Review{
			Country:      country,
			Variety:      fmt.Sprintf("Variety %d", i%3),
			Rating:       85 + i%10,
			Price:        10 + float64(i),
			TastingNotes: notes,
		})
	}
	return reviews
}

func TestRenderAllWritesEveryChart(t *testing.T) {
	dir := t.TempDir()
	logger := utils.NewTestLogger()

	r, err := NewRenderer(dir, logger)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	reviews := chartFixture()
	byCountry := services.GroupByCountry(reviews)
	byVariety := services.GroupByVariety(reviews)
	analysis := services.NewDistinctivenessAnalyzer(logger).Analyze(reviews)

	r.RenderAll(reviews, byCountry, byVariety, analysis, []string{"Italy", "France"})

	want := []string{
		"ratings_hist.png",
		"prices_hist.png",
		"top_countries.png",
		"top_varieties.png",
		"distinctiveness_italy.png",
		"distinctiveness_france.png",
	}
	for _, name := range want {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("chart %s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", name)
		}
	}
}

// Empty inputs must skip every chart with a warning, not fail the run.
func TestRenderAllSkipsEmptySeries(t *testing.T) {
	dir := t.TempDir()
	logger := utils.NewTestLogger()

	r, err := NewRenderer(dir, logger)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	analysis := services.NewDistinctivenessAnalyzer(logger).Analyze(nil)
	r.RenderAll(nil, nil, nil, analysis, []string{"Italy"})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no charts for empty inputs, found %d files", len(entries))
	}
}

func TestSlug(t *testing.T) {
	if got := slug(" South Africa "); got != "south_africa" {
		t.Errorf("slug: got %q, want south_africa", got)
	}
}
