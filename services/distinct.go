package services

import (
	"sort"

	"wine-insights/models"
	"wine-insights/utils"
)

// DistinctivenessAnalyzer measures how much more (or less) often each
// tasting descriptor appears in one country's reviews than across the
// whole dataset.
type DistinctivenessAnalyzer struct {
	logger *utils.Logger
}

// NewDistinctivenessAnalyzer creates an analyzer with the given logger.
func NewDistinctivenessAnalyzer(logger *utils.Logger) *DistinctivenessAnalyzer {
	return &DistinctivenessAnalyzer{logger: logger}
}

// DescriptorAnalysis holds the exploded rows and the per-(country,
// descriptor) frequency table, with per-country views for ranking.
type DescriptorAnalysis struct {
	Exploded    []models.ExplodedNote
	Stats       []*models.DescriptorStat
	BaseReviews int

	countryOrder  []string
	countryTotals map[string]int
	byCountry     map[string][]*models.DescriptorStat
}

// Analyze keeps only reviews with at least one tasting note, explodes each
// into one row per descriptor, and computes local versus global descriptor
// frequencies. Percentages share one base (reviews carrying notes), which
// makes the country-share-weighted distinctiveness sum out to zero.
func (a *DistinctivenessAnalyzer) Analyze(reviews []*models.Review) *DescriptorAnalysis {
	analysis := &DescriptorAnalysis{
		countryTotals: make(map[string]int),
		byCountry:     make(map[string][]*models.DescriptorStat),
	}

	countryTotals := analysis.countryTotals
	globalCounts := make(map[string]int)
	pairCounts := make(map[string]map[string]int)
	pairOrder := make(map[string][]string)

	for _, r := range reviews {
		if len(r.TastingNotes) == 0 {
			continue
		}
		analysis.BaseReviews++
		if countryTotals[r.Country] == 0 {
			analysis.countryOrder = append(analysis.countryOrder, r.Country)
			pairCounts[r.Country] = make(map[string]int)
		}
		countryTotals[r.Country]++

		for _, d := range r.TastingNotes {
			analysis.Exploded = append(analysis.Exploded, models.ExplodedNote{
				Review:     r,
				Descriptor: d,
			})
			globalCounts[d]++
			if pairCounts[r.Country][d] == 0 {
				pairOrder[r.Country] = append(pairOrder[r.Country], d)
			}
			pairCounts[r.Country][d]++
		}
	}

	if analysis.BaseReviews == 0 {
		a.logger.Warn("[distinct] No reviews carry tasting notes; nothing to analyze")
		return analysis
	}

	total := float64(analysis.BaseReviews)
	for _, country := range analysis.countryOrder {
		local := float64(countryTotals[country])
		for _, d := range pairOrder[country] {
			count := pairCounts[country][d]
			stat := &models.DescriptorStat{
				Country:    country,
				Descriptor: d,
				Count:      count,
				Percentage: float64(count) / local * 100,
				GlobalPct:  float64(globalCounts[d]) / total * 100,
			}
			stat.Distinctiveness = stat.Percentage - stat.GlobalPct
			analysis.Stats = append(analysis.Stats, stat)
			analysis.byCountry[country] = append(analysis.byCountry[country], stat)
		}
	}

	a.logger.Info("[distinct] %d reviews with notes → %d exploded rows, %d descriptors, %d countries",
		analysis.BaseReviews, len(analysis.Exploded), len(globalCounts), len(analysis.countryOrder))
	return analysis
}

// Countries lists the analyzed countries in first-appearance order.
func (d *DescriptorAnalysis) Countries() []string {
	return d.countryOrder
}

// CountryReviews reports how many note-carrying reviews the country has.
func (d *DescriptorAnalysis) CountryReviews(country string) int {
	return d.countryTotals[country]
}

// TopByCount returns up to n descriptor rows for the country, ranked by raw
// occurrence count descending.
func (d *DescriptorAnalysis) TopByCount(country string, n int) []*models.DescriptorStat {
	return d.top(country, n, func(a, b *models.DescriptorStat) bool {
		return a.Count > b.Count
	})
}

// TopByDistinctiveness returns up to n descriptor rows for the country,
// ranked by distinctiveness descending. This is a different ordering than
// TopByCount: a common descriptor can rank high on count yet below zero on
// distinctiveness.
func (d *DescriptorAnalysis) TopByDistinctiveness(country string, n int) []*models.DescriptorStat {
	return d.top(country, n, func(a, b *models.DescriptorStat) bool {
		return a.Distinctiveness > b.Distinctiveness
	})
}

func (d *DescriptorAnalysis) top(country string, n int, less func(a, b *models.DescriptorStat) bool) []*models.DescriptorStat {
	rows := d.byCountry[country]
	ranked := make([]*models.DescriptorStat, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
