package services

import (
	"math"
	"strconv"
	"strings"

	"wine-insights/models"
	"wine-insights/utils"
)

const (
	// Sentinel replaces every missing string cell.
	Sentinel = "Unknown"

	// minCategoryReviews is the floor below which a country or variety is
	// dropped from the dataset entirely.
	minCategoryReviews = 100

	ratingFloor   = 80
	ratingCeiling = 100
)

// Cleaner transforms RawReviews into clean, typed Reviews.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean coerces and filters raw rows. Missing string cells become the
// sentinel, prices coerce to NaN on parse failure, rows with a sentinel
// country or variety are dropped, and only then are rows whose country or
// variety has fewer than minCategoryReviews occurrences dropped too.
// The count filter must run on the post-sentinel table so the
// sentinel never competes as a category.
func (c *Cleaner) Clean(raw []*models.RawReview) ([]*models.Review, *models.CleanSummary) {
	summary := &models.CleanSummary{Input: len(raw)}

	parsed := make([]*models.Review, 0, len(raw))
	for _, r := range raw {
		rating, ok := c.parseRating(r.Rating)
		if !ok {
			summary.DroppedBadRating++
			c.logger.Warn("[cleaner] Dropping row with unusable rating %q: %s", r.Rating, r.Title)
			continue
		}

		review := &models.Review{
			Country:       fillSentinel(r.Country),
			Description:   fillSentinel(r.Description),
			Designation:   fillSentinel(r.Designation),
			Rating:        rating,
			Price:         c.parsePrice(r.Price),
			Province:      fillSentinel(r.Province),
			Region:        fillSentinel(r.Region),
			Subregion:     fillSentinel(r.Subregion),
			Taster:        fillSentinel(r.Taster),
			TasterTwitter: fillSentinel(r.TasterTwitter),
			Title:         fillSentinel(r.Title),
			Variety:       fillSentinel(r.Variety),
			Winery:        fillSentinel(r.Winery),
		}

		if review.Country == Sentinel || review.Variety == Sentinel {
			summary.DroppedSentinel++
			continue
		}

		parsed = append(parsed, review)
	}

	countryCounts := make(map[string]int)
	varietyCounts := make(map[string]int)
	for _, r := range parsed {
		countryCounts[r.Country]++
		varietyCounts[r.Variety]++
	}

	result := make([]*models.Review, 0, len(parsed))
	for _, r := range parsed {
		if countryCounts[r.Country] < minCategoryReviews || varietyCounts[r.Variety] < minCategoryReviews {
			summary.DroppedRareGroups++
			continue
		}
		result = append(result, r)
	}

	seenCountries := make(map[string]struct{})
	seenVarieties := make(map[string]struct{})
	for _, r := range result {
		seenCountries[r.Country] = struct{}{}
		seenVarieties[r.Variety] = struct{}{}
	}
	summary.Output = len(result)
	summary.Countries = len(seenCountries)
	summary.Varieties = len(seenVarieties)

	c.logger.Info("[cleaner] Cleaned %d → %d reviews (bad rating %d, unknown country/variety %d, rare categories %d)",
		summary.Input, summary.Output, summary.DroppedBadRating, summary.DroppedSentinel, summary.DroppedRareGroups)
	return result, summary
}

// parseRating parses the points cell as an integer in the review scale.
func (c *Cleaner) parseRating(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if n < ratingFloor || n > ratingCeiling {
		return 0, false
	}
	return n, true
}

// parsePrice coerces the price cell to a float, NaN when missing,
// non-numeric, or negative. Cleaned prices are always ≥ 0 or NaN.
func (c *Cleaner) parsePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return math.NaN()
	}
	return v
}

func fillSentinel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sentinel
	}
	return s
}
