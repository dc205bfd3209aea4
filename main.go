package main

import (
	"os"

	"wine-insights/charts"
	"wine-insights/config"
	"wine-insights/loader"
	"wine-insights/services"
	"wine-insights/utils"
)

// focusCountries are the countries getting dedicated distinctiveness charts.
var focusCountries = []string{"US", "France", "Italy", "Spain", "Portugal"}

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Wine Review Analysis starting ===")
	logger.Info("Config — input: %s | charts: %s", cfg.CSVInputPath, cfg.ChartsOutputDir)

	raw, profile, err := loader.ReadReviews(cfg.CSVInputPath)
	if err != nil {
		logger.Error("Failed to load reviews: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d rows × %d columns from %s", profile.Rows, len(profile.Columns), cfg.CSVInputPath)

	head := raw
	if len(head) > cfg.HeadRows {
		head = head[:cfg.HeadRows]
	}

	cleaner := services.NewCleaner(logger)
	reviews, cleanSummary := cleaner.Clean(raw)
	if len(reviews) == 0 {
		logger.Error("All reviews were dropped during cleaning. Exiting.")
		os.Exit(1)
	}

	services.AttachDescriptors(reviews)
	logger.Info("Derived descriptor words and tasting notes for %d reviews", len(reviews))

	byCountry := services.GroupByCountry(reviews)
	byVariety := services.GroupByVariety(reviews)

	valueFinder := services.NewValueFinder(logger)
	valueWines := valueFinder.Find(reviews)

	analyzer := services.NewDistinctivenessAnalyzer(logger)
	analysis := analyzer.Analyze(reviews)

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(&services.Report{
		Profile:      profile,
		Head:         head,
		CleanSummary: cleanSummary,
		ByCountry:    byCountry,
		ByVariety:    byVariety,
		ValueWines:   valueWines,
		Descriptors:  analysis,
		FocusList:    focusCountries,
	})

	renderer, err := charts.NewRenderer(cfg.ChartsOutputDir, logger)
	if err != nil {
		logger.Error("Failed to prepare chart output: %v", err)
		os.Exit(1)
	}
	renderer.RenderAll(reviews, byCountry, byVariety, analysis, focusCountries)

	logger.Info("Done. Charts → %s", cfg.ChartsOutputDir)
}
