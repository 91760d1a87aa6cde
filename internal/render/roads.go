package render

import (
	"strings"

	"zabka-atlas/internal/osm"
)

// majorHighways is the classification allow-list for the road layer.
var majorHighways = map[string]bool{
	"motorway":  true,
	"trunk":     true,
	"primary":   true,
	"secondary": true,
	"tertiary":  true,
}

// MajorRoad reports whether the edge's highway classification intersects the
// allow-list. The tag carries either a single classification or a
// ";"-separated list; both forms are handled uniformly.
func MajorRoad(f osm.Feature) bool {
	for _, part := range strings.Split(f.Tag("highway"), ";") {
		if majorHighways[strings.TrimSpace(part)] {
			return true
		}
	}
	return false
}

// FilterMajor keeps only the edges MajorRoad accepts.
func FilterMajor(features []osm.Feature) []osm.Feature {
	kept := make([]osm.Feature, 0, len(features))
	for _, f := range features {
		if MajorRoad(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
