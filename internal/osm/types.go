package osm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
)

// Feature is one geographic record from the data source: an identifier, a
// geometry and the raw tag mapping. Immutable after fetch.
type Feature struct {
	ID       int64
	Geometry orb.Geometry
	Tags     map[string]string
}

// Tag returns the value of the named tag, or "" when absent.
func (f Feature) Tag(key string) string { return f.Tags[key] }

// TagPredicate selects features by one tag. Exactly one of Value, Values or
// Any is set.
type TagPredicate struct {
	Key    string
	Value  string
	Values []string
	Any    bool
}

// TagFilter is the conjunction of its predicates.
type TagFilter []TagPredicate

// Exact matches features whose tag equals the value.
func Exact(key, value string) TagPredicate { return TagPredicate{Key: key, Value: value} }

// AnyOf matches features whose tag equals one of the values.
func AnyOf(key string, values ...string) TagPredicate {
	return TagPredicate{Key: key, Values: values}
}

// Present matches features that carry the tag with any value.
func Present(key string) TagPredicate { return TagPredicate{Key: key, Any: true} }

// ql renders the predicate as an Overpass QL tag clause.
func (p TagPredicate) ql() string {
	switch {
	case p.Any:
		return fmt.Sprintf("[%q]", p.Key)
	case len(p.Values) > 0:
		escaped := make([]string, len(p.Values))
		for i, v := range p.Values {
			escaped[i] = regexp.QuoteMeta(v)
		}
		return fmt.Sprintf("[%q~\"^(%s)$\"]", p.Key, strings.Join(escaped, "|"))
	default:
		return fmt.Sprintf("[%q=%q]", p.Key, p.Value)
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassElement mirrors the relevant parts of an interpreter payload
// element. Nodes carry lat/lon directly; ways and relation members carry a
// coordinate sequence when the query asks for geometry output.
type overpassElement struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat"`
	Lon      float64           `json:"lon"`
	Tags     map[string]string `json:"tags"`
	Geometry []overpassCoord   `json:"geometry"`
	Members  []overpassMember  `json:"members"`
}

type overpassCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassMember struct {
	Type     string          `json:"type"`
	Role     string          `json:"role"`
	Geometry []overpassCoord `json:"geometry"`
}

// nominatimResult mirrors the relevant parts of the OSM search payload.
type nominatimResult struct {
	DisplayName string          `json:"display_name"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	GeoJSON     json.RawMessage `json:"geojson"`
}

func (el overpassElement) feature() (Feature, bool) {
	geom, ok := el.geometry()
	if !ok {
		return Feature{}, false
	}
	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	return Feature{ID: el.ID, Geometry: geom, Tags: tags}, true
}

// geometry converts the wire element into the orb variant set: node to Point,
// closed way to Polygon, open way to LineString, relation to a MultiPolygon
// assembled from its outer member rings. Inner rings are skipped; they are
// irrelevant at centroid resolution.
func (el overpassElement) geometry() (orb.Geometry, bool) {
	switch el.Type {
	case "node":
		return orb.Point{el.Lon, el.Lat}, true
	case "way":
		line := toLine(el.Geometry)
		if len(line) < 2 {
			return nil, false
		}
		if ring := asRing(line); ring != nil {
			return orb.Polygon{ring}, true
		}
		return line, true
	case "relation":
		var mp orb.MultiPolygon
		for _, m := range el.Members {
			if m.Type != "way" || (m.Role != "outer" && m.Role != "") {
				continue
			}
			if ring := asRing(toLine(m.Geometry)); ring != nil {
				mp = append(mp, orb.Polygon{ring})
			}
		}
		if len(mp) == 0 {
			return nil, false
		}
		return mp, true
	}
	return nil, false
}

func toLine(coords []overpassCoord) orb.LineString {
	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		line = append(line, orb.Point{c.Lon, c.Lat})
	}
	return line
}

// asRing returns the closed ring form of a coordinate sequence, or nil for
// open ways.
func asRing(line orb.LineString) orb.Ring {
	if len(line) >= 4 && line[0] == line[len(line)-1] {
		return orb.Ring(line)
	}
	return nil
}
