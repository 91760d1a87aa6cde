// Package render draws the shop map: boundary, major roads, rivers and shop
// markers stacked on a black high-resolution canvas.
package render

import (
	"errors"
	"fmt"
	"math"

	"zabka-atlas/internal/osm"
	"zabka-atlas/internal/shops"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	canvasSize   = 3600
	canvasMargin = 160
	markerRadius = 10

	titleFontSize  = 96
	legendFontSize = 64
)

// Map holds the four visual layers of the shop map, boundary at the bottom,
// shop markers on top.
type Map struct {
	Boundary orb.Geometry
	Roads    []osm.Feature
	Rivers   []osm.Feature
	Shops    []shops.Record
	Title    string
}

// WritePNG renders the map and saves it to path.
func (m *Map) WritePNG(path string) error {
	dc, err := m.render()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save map image: %w", err)
	}
	return nil
}

func (m *Map) render() (*gg.Context, error) {
	if m.Boundary == nil {
		return nil, errors.New("map needs a boundary geometry")
	}

	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	proj := newProjector(m.Boundary.Bound())

	// Layer order is fixed: fill, roads, rivers, markers.
	m.drawBoundary(dc, proj)

	dc.SetRGB(0.55, 0.55, 0.55)
	dc.SetLineWidth(2.5)
	drawLineLayer(dc, proj, m.Roads)

	dc.SetRGB(0.1, 0.3, 1)
	dc.SetLineWidth(4)
	drawLineLayer(dc, proj, m.Rivers)

	dc.SetRGBA(0.2, 1, 0.2, 0.9)
	for _, shop := range m.Shops {
		x, y := proj.point(orb.Point{shop.Lon, shop.Lat})
		dc.DrawCircle(x, y, markerRadius)
		dc.Fill()
	}

	if err := m.drawChrome(dc); err != nil {
		return nil, err
	}

	return dc, nil
}

func (m *Map) drawBoundary(dc *gg.Context, proj projector) {
	dc.SetRGB(0.09, 0.09, 0.09)
	for _, ring := range outerRings(m.Boundary) {
		dc.NewSubPath()
		for i, pt := range ring {
			x, y := proj.point(pt)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
	dc.Fill()
}

// drawChrome adds the title and the legend. No axes, no frame.
func (m *Map) drawChrome(dc *gg.Context) error {
	titleFace, err := fontFace(titleFontSize)
	if err != nil {
		return fmt.Errorf("load title font: %w", err)
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(m.Title, canvasSize/2, canvasMargin/2, 0.5, 0.5)

	legendFace, err := fontFace(legendFontSize)
	if err != nil {
		return fmt.Errorf("load legend font: %w", err)
	}
	x := float64(canvasMargin)
	y := float64(canvasSize - canvasMargin)
	dc.SetRGBA(0.2, 1, 0.2, 0.9)
	dc.DrawCircle(x, y, markerRadius*1.5)
	dc.Fill()
	dc.SetFontFace(legendFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(shops.DefaultName, x+markerRadius*4, y, 0, 0.35)

	return nil
}

func drawLineLayer(dc *gg.Context, proj projector, features []osm.Feature) {
	for _, f := range features {
		for _, line := range featureLines(f) {
			for i, pt := range line {
				x, y := proj.point(pt)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.Stroke()
		}
	}
}

// featureLines flattens a feature into strokeable polylines. Closed ways
// arrive as polygons; their rings are stroked as outlines.
func featureLines(f osm.Feature) []orb.LineString {
	switch geom := f.Geometry.(type) {
	case orb.LineString:
		return []orb.LineString{geom}
	case orb.Polygon:
		lines := make([]orb.LineString, 0, len(geom))
		for _, ring := range geom {
			lines = append(lines, orb.LineString(ring))
		}
		return lines
	default:
		return nil
	}
}

func outerRings(g orb.Geometry) []orb.Ring {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return nil
		}
		return []orb.Ring{geom[0]}
	case orb.MultiPolygon:
		rings := make([]orb.Ring, 0, len(geom))
		for _, poly := range geom {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	default:
		return nil
	}
}

// projector fits the boundary bound onto the canvas: equirectangular with a
// cos(mid-latitude) x correction, centered, north up.
type projector struct {
	minLon, minLat   float64
	xScale, scale    float64
	offsetX, offsetY float64
}

func newProjector(bound orb.Bound) projector {
	midLat := (bound.Min.Lat() + bound.Max.Lat()) / 2
	xScale := math.Cos(midLat * math.Pi / 180)

	dx := (bound.Max.Lon() - bound.Min.Lon()) * xScale
	dy := bound.Max.Lat() - bound.Min.Lat()
	usable := float64(canvasSize - 2*canvasMargin)
	scale := usable / math.Max(dx, dy)

	return projector{
		minLon:  bound.Min.Lon(),
		minLat:  bound.Min.Lat(),
		xScale:  xScale,
		scale:   scale,
		offsetX: canvasMargin + (usable-dx*scale)/2,
		offsetY: canvasMargin + (usable-dy*scale)/2,
	}
}

func (p projector) point(pt orb.Point) (float64, float64) {
	x := p.offsetX + (pt.Lon()-p.minLon)*p.xScale*p.scale
	y := canvasSize - p.offsetY - (pt.Lat()-p.minLat)*p.scale
	return x, y
}

func fontFace(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
