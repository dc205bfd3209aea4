package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"wine-insights/models"
	"wine-insights/services"
	"wine-insights/utils"
)

const histogramBins = 20

var barFill = color.RGBA{R: 114, G: 47, B: 55, A: 255} // wine red

// Renderer draws the static charts into a directory of PNG files.
type Renderer struct {
	logger *utils.Logger
	outDir string
}

// NewRenderer creates the output directory and returns a Renderer.
func NewRenderer(outDir string, logger *utils.Logger) (*Renderer, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("charts: create output dir: %w", err)
	}
	return &Renderer{logger: logger, outDir: outDir}, nil
}

// RenderAll draws every chart. Individual failures are logged and skipped
// rather than aborting the run; charts are presentation, not results.
func (r *Renderer) RenderAll(
	reviews []*models.Review,
	byCountry, byVariety []*models.CategoryStats,
	analysis *services.DescriptorAnalysis,
	focus []string,
) {
	r.try("ratings_hist.png", func(path string) error {
		return r.ratingHistogram(reviews, path)
	})
	r.try("prices_hist.png", func(path string) error {
		return r.priceHistogram(reviews, path)
	})
	r.try("top_countries.png", func(path string) error {
		return r.volumeBars(byCountry, "Top 10 Countries by Review Volume", path)
	})
	r.try("top_varieties.png", func(path string) error {
		return r.volumeBars(byVariety, "Top 10 Varieties by Review Volume", path)
	})
	for _, country := range focus {
		name := fmt.Sprintf("distinctiveness_%s.png", slug(country))
		c := country
		r.try(name, func(path string) error {
			return r.distinctivenessBars(analysis, c, path)
		})
	}
}

func (r *Renderer) try(name string, draw func(path string) error) {
	path := filepath.Join(r.outDir, name)
	if err := draw(path); err != nil {
		r.logger.Warn("[charts] Skipping %s: %v", name, err)
		return
	}
	r.logger.Info("[charts] Wrote %s", path)
}

func (r *Renderer) ratingHistogram(reviews []*models.Review, path string) error {
	vals := make(plotter.Values, 0, len(reviews))
	for _, rev := range reviews {
		vals = append(vals, float64(rev.Rating))
	}
	if len(vals) == 0 {
		return fmt.Errorf("no ratings to plot")
	}

	p := plot.New()
	p.Title.Text = "Rating Distribution"
	p.X.Label.Text = "rating (points)"
	p.Y.Label.Text = "reviews"

	hist, err := plotter.NewHist(vals, histogramBins)
	if err != nil {
		return fmt.Errorf("rating histogram: %w", err)
	}
	hist.FillColor = barFill
	p.Add(hist)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// priceHistogram bins log10(price); wine prices are heavy-tailed and a
// linear axis hides everything under the tail.
func (r *Renderer) priceHistogram(reviews []*models.Review, path string) error {
	var vals plotter.Values
	for _, rev := range reviews {
		if math.IsNaN(rev.Price) || rev.Price <= 0 {
			continue
		}
		vals = append(vals, math.Log10(rev.Price))
	}
	if len(vals) == 0 {
		return fmt.Errorf("no prices to plot")
	}

	p := plot.New()
	p.Title.Text = "Price Distribution (log scale)"
	p.X.Label.Text = "log10(price USD)"
	p.Y.Label.Text = "reviews"

	hist, err := plotter.NewHist(vals, histogramBins)
	if err != nil {
		return fmt.Errorf("price histogram: %w", err)
	}
	hist.FillColor = barFill
	p.Add(hist)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func (r *Renderer) volumeBars(stats []*models.CategoryStats, title, path string) error {
	ranked := services.TopByVolume(stats, 10)
	if len(ranked) == 0 {
		return fmt.Errorf("no categories to plot")
	}

	counts := make(plotter.Values, len(ranked))
	labels := make([]string, len(ranked))
	for i, cs := range ranked {
		counts[i] = float64(cs.Count)
		labels[i] = cs.Key
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "reviews"

	bars, err := plotter.NewBarChart(counts, vg.Points(24))
	if err != nil {
		return fmt.Errorf("volume bars: %w", err)
	}
	bars.Color = barFill
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func (r *Renderer) distinctivenessBars(analysis *services.DescriptorAnalysis, country, path string) error {
	top := analysis.TopByDistinctiveness(country, 5)
	if len(top) == 0 {
		return fmt.Errorf("no descriptors for %s", country)
	}

	deltas := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, d := range top {
		deltas[i] = d.Distinctiveness
		labels[i] = d.Descriptor
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Most Distinctive Descriptors — %s", country)
	p.Y.Label.Text = "percentage points vs global"

	bars, err := plotter.NewBarChart(deltas, vg.Points(24))
	if err != nil {
		return fmt.Errorf("distinctiveness bars: %w", err)
	}
	bars.Color = barFill
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
