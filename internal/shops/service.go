// Package shops turns raw OpenStreetMap features into flat Żabka shop
// records: one coordinate pair, a display name and a composed address per
// surviving feature.
package shops

import (
	"context"
	"fmt"
	"strings"

	"zabka-atlas/internal/osm"
	"zabka-atlas/platform/logger"
)

// DefaultName is the canonical chain name, used when a feature has no name
// tag of its own.
const DefaultName = "Żabka"

// nameVariants are the known spellings of the chain name, lower-cased for
// the substring test. OSM data mixes the diacritic and plain forms.
var nameVariants = []string{"żabka", "zabka"}

// Record is one normalized shop: coordinates in decimal degrees, display
// name and a composed street address. Lon and Lat are always finite and
// Address is never empty.
type Record struct {
	Lon     float64
	Lat     float64
	Name    string
	Address string
}

// Source is the feature query surface of the geo data source.
type Source interface {
	Features(ctx context.Context, place string, filter osm.TagFilter) ([]osm.Feature, error)
}

// Service runs the shop normalization pipeline against a feature source.
type Service struct {
	src Source
	log *logger.Logger
}

// NewService creates the shop pipeline service.
func NewService(src Source, log *logger.Logger) *Service {
	return &Service{src: src, log: log}
}

// Locate fetches and normalizes every Żabka shop of the named place. The
// query escalates through three strategies, each tried only when the prior
// one kept nothing:
//
//  1. convenience-shop tag plus exact name, matches kept by substring test;
//  2. name-only query over the spelling variants, all results kept;
//  3. every shop-tagged feature, matches kept by substring test.
//
// A zero-result outcome after all three tiers is not an error: Locate logs
// the likely causes and returns an empty set.
func (s *Service) Locate(ctx context.Context, place string) ([]Record, error) {
	features, err := s.src.Features(ctx, place, osm.TagFilter{
		osm.Exact("shop", "convenience"),
		osm.Exact("name", DefaultName),
	})
	if err != nil {
		return nil, fmt.Errorf("convenience shop query: %w", err)
	}
	kept := keepNamed(features)
	s.log.Info("convenience shop query done", "fetched", len(features), "kept", len(kept))

	if len(kept) == 0 {
		s.log.Info("no matches, retrying with name-only filter")
		kept, err = s.src.Features(ctx, place, osm.TagFilter{
			osm.AnyOf("name", "Żabka", "żabka"),
		})
		if err != nil {
			return nil, fmt.Errorf("name-only query: %w", err)
		}
		s.log.Info("name-only query done", "kept", len(kept))
	}

	if len(kept) == 0 {
		s.log.Info("still no matches, retrying across all shops")
		features, err = s.src.Features(ctx, place, osm.TagFilter{
			osm.Present("shop"),
		})
		if err != nil {
			return nil, fmt.Errorf("all-shops query: %w", err)
		}
		kept = keepNamed(features)
		s.log.Info("all-shops query done", "fetched", len(features), "kept", len(kept))
	}

	if len(kept) == 0 {
		s.log.Info("no Żabka shops found",
			"place", place,
			"hint", "OSM coverage may be sparse for this area, or the shops are tagged under different conventions")
		return nil, nil
	}

	records := make([]Record, 0, len(kept))
	for _, f := range kept {
		rec, ok := s.buildRecord(f)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	s.log.Info("shops normalized", "records", len(records), "skipped", len(kept)-len(records))

	return records, nil
}

// matchesName reports whether the feature's name tag contains any known
// spelling of the chain name, case-insensitively.
func matchesName(f osm.Feature) bool {
	name := strings.ToLower(f.Tag("name"))
	for _, variant := range nameVariants {
		if strings.Contains(name, variant) {
			return true
		}
	}
	return false
}

func keepNamed(features []osm.Feature) []osm.Feature {
	kept := make([]osm.Feature, 0, len(features))
	for _, f := range features {
		if matchesName(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
