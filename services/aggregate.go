package services

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"wine-insights/models"
)

// GroupByCountry aggregates rating and price statistics per country,
// ordered by mean rating descending.
func GroupByCountry(reviews []*models.Review) []*models.CategoryStats {
	return groupBy(reviews, func(r *models.Review) string { return r.Country })
}

// GroupByVariety aggregates rating and price statistics per grape variety,
// ordered by mean rating descending.
func GroupByVariety(reviews []*models.Review) []*models.CategoryStats {
	return groupBy(reviews, func(r *models.Review) string { return r.Variety })
}

func groupBy(reviews []*models.Review, key func(*models.Review) string) []*models.CategoryStats {
	groups := make(map[string][]*models.Review)
	var order []string
	for _, r := range reviews {
		k := key(r)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	stats := make([]*models.CategoryStats, 0, len(order))
	for _, k := range order {
		rows := groups[k]

		ratings := make([]float64, len(rows))
		var prices []float64
		for i, r := range rows {
			ratings[i] = float64(r.Rating)
			if !math.IsNaN(r.Price) {
				prices = append(prices, r.Price)
			}
		}

		cs := &models.CategoryStats{
			Key:        k,
			Count:      len(rows),
			RatingMean: round2(stat.Mean(ratings, nil)),
			RatingMin:  int(floats.Min(ratings)),
			RatingMax:  int(floats.Max(ratings)),
		}
		if len(prices) > 0 {
			cs.PricedCount = len(prices)
			cs.PriceMean = round2(stat.Mean(prices, nil))
			cs.PriceMin = round2(floats.Min(prices))
			cs.PriceMax = round2(floats.Max(prices))
		} else {
			cs.PriceMean = math.NaN()
			cs.PriceMin = math.NaN()
			cs.PriceMax = math.NaN()
		}
		stats = append(stats, cs)
	}

	// Stable sort keeps first-appearance order for equal means.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].RatingMean > stats[j].RatingMean
	})
	return stats
}

// TopByVolume returns up to n categories ranked by review count descending,
// ties keeping their aggregate-table order.
func TopByVolume(stats []*models.CategoryStats, n int) []*models.CategoryStats {
	ranked := make([]*models.CategoryStats, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
