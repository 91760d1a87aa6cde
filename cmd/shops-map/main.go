package main

import (
	"context"
	"os"

	"zabka-atlas/internal/osm"
	"zabka-atlas/internal/render"
	"zabka-atlas/internal/shops"
	"zabka-atlas/platform/config"
	"zabka-atlas/platform/logger"
)

const mapTitle = "Sklepy Żabka we Wrocławiu"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env).WithPlace(cfg.PlaceName)
	log.Info("starting shop map render")

	ctx := context.Background()
	client := osm.NewClient(cfg, log)

	boundary, err := client.Boundary(ctx, cfg.PlaceName)
	if err != nil {
		log.FetchError("boundary", err)
		os.Exit(1)
	}

	edges, err := client.RoadEdges(ctx, cfg.PlaceName)
	if err != nil {
		log.FetchError("roads", err)
		os.Exit(1)
	}
	major := render.FilterMajor(edges)
	log.Info("road network fetched", "edges", len(edges), "major", len(major))

	rivers, err := client.Rivers(ctx, cfg.PlaceName)
	if err != nil {
		log.FetchError("rivers", err)
		os.Exit(1)
	}
	log.Info("rivers fetched", "count", len(rivers))

	records, err := shops.NewService(client, log.WithStage("normalize")).Locate(ctx, cfg.PlaceName)
	if err != nil {
		log.FetchError("shops", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		log.Info("nothing to draw")
		return
	}

	m := &render.Map{
		Boundary: boundary,
		Roads:    major,
		Rivers:   rivers,
		Shops:    records,
		Title:    mapTitle,
	}
	if err := m.WritePNG(cfg.MapImagePath); err != nil {
		log.Error("map render failed", "error", err)
		os.Exit(1)
	}

	log.Info("map written", "path", cfg.MapImagePath, "shops", len(records))
}
