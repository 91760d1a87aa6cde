package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"zabka-atlas/internal/osm"
	"zabka-atlas/internal/shops"

	"github.com/paulmach/orb"
)

func testBoundary() orb.Geometry {
	return orb.Polygon{{{16.8, 51.0}, {17.2, 51.0}, {17.2, 51.2}, {16.8, 51.2}, {16.8, 51.0}}}
}

func TestWritePNG_ProducesFixedSizeImage(t *testing.T) {
	m := &Map{
		Boundary: testBoundary(),
		Roads:    []osm.Feature{{Geometry: orb.LineString{{16.9, 51.05}, {17.1, 51.15}}, Tags: map[string]string{"highway": "primary"}}},
		Rivers:   []osm.Feature{{Geometry: orb.LineString{{16.85, 51.1}, {17.15, 51.1}}, Tags: map[string]string{"waterway": "river"}}},
		Shops:    []shops.Record{{Lon: 17.03, Lat: 51.11, Name: "Żabka", Address: "Rynek 5"}},
		Title:    "Sklepy Żabka we Wrocławiu",
	}
	path := filepath.Join(t.TempDir(), "map.png")

	if err := m.WritePNG(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open image: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode image: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != canvasSize || bounds.Dy() != canvasSize {
		t.Fatalf("expected %dx%d canvas, got %dx%d", canvasSize, canvasSize, bounds.Dx(), bounds.Dy())
	}
}

func TestWritePNG_EmptyShopLayerStillRenders(t *testing.T) {
	m := &Map{Boundary: testBoundary(), Title: "Sklepy Żabka we Wrocławiu"}
	path := filepath.Join(t.TempDir(), "map.png")

	if err := m.WritePNG(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRender_MissingBoundaryIsAnError(t *testing.T) {
	m := &Map{Title: "Sklepy Żabka we Wrocławiu"}

	if err := m.WritePNG(filepath.Join(t.TempDir(), "map.png")); err == nil {
		t.Fatal("expected an error without a boundary")
	}
}

func TestProjector_NorthUpAndInsideCanvas(t *testing.T) {
	proj := newProjector(testBoundary().Bound())

	x1, y1 := proj.point(orb.Point{17.0, 51.05})
	x2, y2 := proj.point(orb.Point{17.0, 51.15})

	if y2 >= y1 {
		t.Fatalf("expected higher latitude to map to a smaller y, got %v then %v", y1, y2)
	}
	for _, v := range []float64{x1, y1, x2, y2} {
		if v < 0 || v > canvasSize {
			t.Fatalf("expected projected coordinate inside the canvas, got %v", v)
		}
	}
}
