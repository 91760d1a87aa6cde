package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"zabka-atlas/internal/export"
	"zabka-atlas/internal/osm"
	"zabka-atlas/internal/shops"
	"zabka-atlas/platform/config"
	"zabka-atlas/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env).WithPlace(cfg.PlaceName)
	log.Info("starting shop export")

	ctx := context.Background()
	client := osm.NewClient(cfg, log)

	// Resolving the boundary confirms the place exists before any POI
	// query is spent on it.
	if _, err := client.Boundary(ctx, cfg.PlaceName); err != nil {
		log.FetchError("boundary", err)
		os.Exit(1)
	}

	records, err := shops.NewService(client, log.WithStage("normalize")).Locate(ctx, cfg.PlaceName)
	if err != nil {
		log.FetchError("shops", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		log.Info("nothing to export")
		return
	}

	logSummary(log, records)

	if err := export.WriteXLSX(records, cfg.SpreadsheetPath); err != nil {
		log.Error("export failed, collected records remain valid", "error", err)
		os.Exit(1)
	}

	log.Info("spreadsheet written", "path", cfg.SpreadsheetPath, "shops", len(records))
}

func logSummary(log *logger.Logger, records []shops.Record) {
	minLon, maxLon := records[0].Lon, records[0].Lon
	minLat, maxLat := records[0].Lat, records[0].Lat
	for _, rec := range records[1:] {
		minLon = math.Min(minLon, rec.Lon)
		maxLon = math.Max(maxLon, rec.Lon)
		minLat = math.Min(minLat, rec.Lat)
		maxLat = math.Max(maxLat, rec.Lat)
	}

	log.Info("shops collected",
		"total", len(records),
		"longitudeRange", fmt.Sprintf("%.6f to %.6f", minLon, maxLon),
		"latitudeRange", fmt.Sprintf("%.6f to %.6f", minLat, maxLat),
	)
}
