package models

// RawReview holds one unprocessed row as read from the CSV, every field
// still a string. This is the shape before any cleaning or coercion.
type RawReview struct {
	Country       string
	Description   string
	Designation   string
	Rating        string
	Price         string
	Province      string
	Region        string
	Subregion     string
	Taster        string
	TasterTwitter string
	Title         string
	Variety       string
	Winery        string
}

// Review is the cleaned, typed record the analysis stages operate on.
// Price is NaN when the source cell was missing or non-numeric.
type Review struct {
	Country       string
	Description   string
	Designation   string
	Rating        int
	Price         float64
	Province      string
	Region        string
	Subregion     string
	Taster        string
	TasterTwitter string
	Title         string
	Variety       string
	Winery        string

	// Derived text features, attached after cleaning.
	DescriptorWords []string
	TastingNotes    []string
}

// ColumnProfile summarises the raw table as loaded: dimensions, column
// order, and per-column empty-cell counts.
type ColumnProfile struct {
	Rows       int
	Columns    []string
	NullCounts map[string]int
}

// CategoryStats is one aggregate row: summary statistics for every review
// sharing a country or variety.
type CategoryStats struct {
	Key         string
	Count       int
	RatingMean  float64
	RatingMin   int
	RatingMax   int
	PriceMean   float64
	PriceMin    float64
	PriceMax    float64
	PricedCount int
}

// ValueWine is a review passing the rating/price value filter, ranked by
// quality per dollar.
type ValueWine struct {
	Review          *Review
	QualityPerPrice float64
}

// ExplodedNote is one (review, descriptor) row produced by expanding a
// review's tasting notes. Keeping the parent pointer preserves traceability
// back to the source record.
type ExplodedNote struct {
	Review     *Review
	Descriptor string
}

// DescriptorStat is one (country, descriptor) frequency row. Distinctiveness
// is the percentage-point gap between the descriptor's share of this
// country's reviews and its share of all reviews.
type DescriptorStat struct {
	Country         string
	Descriptor      string
	Count           int
	Percentage      float64
	GlobalPct       float64
	Distinctiveness float64
}

// CleanSummary records what the cleaner did, for the console report.
type CleanSummary struct {
	Input             int
	Output            int
	DroppedBadRating  int
	DroppedSentinel   int
	DroppedRareGroups int
	Countries         int
	Varieties         int
}
