package services

import (
	"fmt"
	"math"
	"strings"

	"wine-insights/models"
	"wine-insights/utils"
)

// topNDescriptors is how many descriptors each per-country ranking shows.
const topNDescriptors = 5

// ReportService renders the full console report.
type ReportService struct {
	logger *utils.Logger
}

// NewReportService creates a ReportService with the given logger.
func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Report bundles everything the console output shows.
type Report struct {
	Profile      *models.ColumnProfile
	Head         []*models.RawReview
	CleanSummary *models.CleanSummary
	ByCountry    []*models.CategoryStats
	ByVariety    []*models.CategoryStats
	ValueWines   []*models.ValueWine
	Descriptors  *DescriptorAnalysis
	FocusList    []string
}

// Print writes the report to stdout.
func (s *ReportService) Print(r *Report) {
	sep := strings.Repeat("═", 72)
	thin := strings.Repeat("─", 72)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🍷 WINE REVIEW INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	s.printDataset(r, thin)
	s.printCategoryTable("Countries by Mean Rating", r.ByCountry, thin)
	s.printCategoryTable("Varieties by Mean Rating", r.ByVariety, thin)
	s.printValueWines(r.ValueWines, thin)
	s.printDescriptors(r, thin)
	s.printVolumeBars(r.ByCountry, thin)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func (s *ReportService) printDataset(r *Report, thin string) {
	fmt.Printf("\033[1;33m  Dataset\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Shape        : \033[1m%d rows × %d columns\033[0m\n",
		r.Profile.Rows, len(r.Profile.Columns))
	fmt.Printf("  Columns      : %s\n", strings.Join(r.Profile.Columns, ", "))
	fmt.Printf("  Dtypes       : rating int, price float64, all other columns string\n")

	fmt.Printf("\n  Null counts\n")
	for _, col := range r.Profile.Columns {
		if n := r.Profile.NullCounts[col]; n > 0 {
			fmt.Printf("    %-16s %d\n", col, n)
		}
	}

	if len(r.Head) > 0 {
		fmt.Printf("\n  First %d rows\n", len(r.Head))
		for i, row := range r.Head {
			fmt.Printf("    %d. %-44s %3s pts  %s\n",
				i+1, truncate(row.Title, 44), row.Rating, row.Country)
		}
	}

	cs := r.CleanSummary
	fmt.Printf("\n  Cleaning     : %d → %d reviews (bad rating %d, unknown %d, rare categories %d)\n",
		cs.Input, cs.Output, cs.DroppedBadRating, cs.DroppedSentinel, cs.DroppedRareGroups)
	fmt.Printf("  Surviving    : %d countries, %d varieties (each ≥ 100 reviews)\n\n",
		cs.Countries, cs.Varieties)
}

func (s *ReportService) printCategoryTable(title string, stats []*models.CategoryStats, thin string) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  %-24s %7s %7s %4s %4s %9s %8s %9s\n",
		"", "count", "rating", "min", "max", "price", "min", "max")
	for _, cs := range stats {
		fmt.Printf("  %-24s %7d %7.2f %4d %4d %9s %8s %9s\n",
			truncate(cs.Key, 24), cs.Count, cs.RatingMean, cs.RatingMin, cs.RatingMax,
			money(cs.PriceMean), money(cs.PriceMin), money(cs.PriceMax))
	}
	fmt.Println()
}

func (s *ReportService) printValueWines(wines []*models.ValueWine, thin string) {
	fmt.Printf("\033[1;33m  Top Value Wines (rating ≥ 90, price ≤ $30)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(wines) == 0 {
		fmt.Printf("  No reviews pass the value filter\n\n")
		return
	}
	shown := wines
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, w := range shown {
		fmt.Printf("  \033[1m%2d.\033[0m %-42s %3d pts  $%-6.2f \033[1;32m%.2f pts/$\033[0m\n",
			i+1, truncate(w.Review.Title, 42), w.Review.Rating, w.Review.Price, w.QualityPerPrice)
	}
	fmt.Printf("  (%d qualifying reviews in total)\n\n", len(wines))
}

func (s *ReportService) printDescriptors(r *Report, thin string) {
	fmt.Printf("\033[1;33m  Tasting-Note Distinctiveness\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.Descriptors == nil || r.Descriptors.BaseReviews == 0 {
		fmt.Printf("  No tasting notes matched\n\n")
		return
	}

	for _, country := range r.FocusList {
		byCount := r.Descriptors.TopByCount(country, topNDescriptors)
		if len(byCount) == 0 {
			continue
		}
		fmt.Printf("\n  \033[1m%s\033[0m\n", country)
		fmt.Printf("    Most common:\n")
		for _, d := range byCount {
			fmt.Printf("      %-14s %6d uses  %5.1f%% of reviews\n",
				d.Descriptor, d.Count, d.Percentage)
		}
		fmt.Printf("    Most distinctive:\n")
		for _, d := range r.Descriptors.TopByDistinctiveness(country, topNDescriptors) {
			fmt.Printf("      %-14s %+5.1f pts vs global %.1f%%\n",
				d.Descriptor, d.Distinctiveness, d.GlobalPct)
		}
	}
	fmt.Println()
}

func (s *ReportService) printVolumeBars(stats []*models.CategoryStats, thin string) {
	fmt.Printf("\033[1;33m  Review Volume by Country\033[0m\n")
	fmt.Printf("  %s\n", thin)
	ranked := TopByVolume(stats, 10)
	if len(ranked) == 0 {
		fmt.Printf("  No data\n")
		return
	}
	max := ranked[0].Count
	for _, cs := range ranked {
		width := cs.Count * 40 / max
		if width == 0 {
			width = 1
		}
		bar := strings.Repeat("█", width)
		fmt.Printf("  %-24s %s (%d)\n", truncate(cs.Key, 24), bar, cs.Count)
	}
}

func money(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("$%.2f", v)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
