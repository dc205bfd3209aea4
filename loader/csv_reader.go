package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"wine-insights/models"
)

// columnRenames maps source CSV headers to the field names used everywhere
// downstream. Columns not listed keep their header name.
var columnRenames = map[string]string{
	"points":                "rating",
	"region_1":              "region",
	"region_2":              "subregion",
	"taster_twitter_handle": "taster_twitter",
}

// indexHeaders are header values that mark a stray exported index column,
// which is dropped rather than loaded.
var indexHeaders = map[string]bool{
	"":           true,
	"index":      true,
	"Unnamed: 0": true,
}

// ReadReviews loads the full review CSV into memory. The header row defines
// the columns; a stray leading index column is skipped. The returned profile
// carries the table shape and per-column empty-cell counts.
func ReadReviews(path string) ([]*models.RawReview, *models.ColumnProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	return readReviews(bufio.NewReader(f))
}

func readReviews(r io.Reader) ([]*models.RawReview, *models.ColumnProfile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("loader: read header: %w", err)
	}

	skipIndex := len(header) > 0 && indexHeaders[header[0]]
	if skipIndex {
		header = header[1:]
	}

	columns := make([]string, len(header))
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		if renamed, ok := columnRenames[name]; ok {
			name = renamed
		}
		columns[i] = name
		colIdx[name] = i
	}

	profile := &models.ColumnProfile{
		Columns:    columns,
		NullCounts: make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		profile.NullCounts[c] = 0
	}

	field := func(record []string, name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var reviews []*models.RawReview
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("loader: read row %d: %w", len(reviews)+2, err)
		}
		if skipIndex {
			if len(record) == 0 {
				continue
			}
			record = record[1:]
		}

		for i, c := range columns {
			if i >= len(record) || record[i] == "" {
				profile.NullCounts[c]++
			}
		}

		reviews = append(reviews, &models.RawReview{
			Country:       field(record, "country"),
			Description:   field(record, "description"),
			Designation:   field(record, "designation"),
			Rating:        field(record, "rating"),
			Price:         field(record, "price"),
			Province:      field(record, "province"),
			Region:        field(record, "region"),
			Subregion:     field(record, "subregion"),
			Taster:        field(record, "taster_name"),
			TasterTwitter: field(record, "taster_twitter"),
			Title:         field(record, "title"),
			Variety:       field(record, "variety"),
			Winery:        field(record, "winery"),
		})
	}

	profile.Rows = len(reviews)
	return reviews, profile, nil
}
