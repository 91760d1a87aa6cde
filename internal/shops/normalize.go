package shops

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// normalizePoint reduces any geometry to a single representative coordinate.
// Points pass through untouched; every other shape is reduced to its
// centroid. A centroid of a self-intersecting polygon may land outside the
// shape; no correction is attempted.
func normalizePoint(g orb.Geometry) (orb.Point, error) {
	switch geom := g.(type) {
	case nil:
		return orb.Point{}, errors.New("feature has no geometry")
	case orb.Point:
		return geom, nil
	default:
		centroid, _ := planar.CentroidArea(geom)
		if !finite(centroid) {
			return orb.Point{}, fmt.Errorf("degenerate %s has no centroid", geom.GeoJSONType())
		}
		return centroid, nil
	}
}

func finite(p orb.Point) bool {
	for _, v := range []float64{p.Lon(), p.Lat()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
