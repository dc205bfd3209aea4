package services

import (
	"math"
	"sort"

	"wine-insights/models"
	"wine-insights/utils"
)

const (
	// A value wine scores at least this many points...
	valueRatingFloor = 90
	// ...while costing at most this much.
	valuePriceCeiling = 30
)

// ValueFinder selects highly rated, modestly priced reviews.
type ValueFinder struct {
	logger *utils.Logger
}

// NewValueFinder creates a ValueFinder with the given logger.
func NewValueFinder(logger *utils.Logger) *ValueFinder {
	return &ValueFinder{logger: logger}
}

// Find returns every review with rating >= 90 and price <= 30, ranked by
// quality per dollar descending. NaN prices never pass the ceiling test.
// A literal zero price would yield +Inf here; the source data has none and
// the case is deliberately left unguarded.
func (v *ValueFinder) Find(reviews []*models.Review) []*models.ValueWine {
	var wines []*models.ValueWine
	for _, r := range reviews {
		if r.Rating < valueRatingFloor {
			continue
		}
		if math.IsNaN(r.Price) || r.Price > valuePriceCeiling {
			continue
		}
		wines = append(wines, &models.ValueWine{
			Review:          r,
			QualityPerPrice: float64(r.Rating) / r.Price,
		})
	}

	// Stable: equal ratios keep input order.
	sort.SliceStable(wines, func(i, j int) bool {
		return wines[i].QualityPerPrice > wines[j].QualityPerPrice
	})

	v.logger.Info("[value] %d of %d reviews qualify as value wines (rating ≥ %d, price ≤ %d)",
		len(wines), len(reviews), valueRatingFloor, valuePriceCeiling)
	return wines
}
