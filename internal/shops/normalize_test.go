package shops

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestNormalizePoint_PointPassesThroughExactly(t *testing.T) {
	original := orb.Point{17.038538, 51.107883}

	got, err := normalizePoint(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != original {
		t.Fatalf("expected point %v returned verbatim, got %v", original, got)
	}
}

func TestNormalizePoint_PolygonReducesToCentroid(t *testing.T) {
	square := orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}

	got, err := normalizePoint(square)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (orb.Point{1, 1}) {
		t.Fatalf("expected centroid (1, 1), got %v", got)
	}
}

func TestNormalizePoint_MultiPolygonReducesToCentroid(t *testing.T) {
	twoSquares := orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		{{{3, 0}, {4, 0}, {4, 1}, {3, 1}, {3, 0}}},
	}

	got, err := normalizePoint(twoSquares)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (orb.Point{2, 0.5}) {
		t.Fatalf("expected centroid (2, 0.5), got %v", got)
	}
}

func TestNormalizePoint_LineStringReducesToCentroid(t *testing.T) {
	segment := orb.LineString{{0, 0}, {2, 0}}

	got, err := normalizePoint(segment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (orb.Point{1, 0}) {
		t.Fatalf("expected centroid (1, 0), got %v", got)
	}
}

func TestNormalizePoint_MissingGeometryIsAnError(t *testing.T) {
	if _, err := normalizePoint(nil); err == nil {
		t.Fatal("expected an error for a feature without geometry")
	}
}
