package render

import (
	"testing"

	"zabka-atlas/internal/osm"
)

func edge(highway string) osm.Feature {
	return osm.Feature{Tags: map[string]string{"highway": highway}}
}

func TestMajorRoad_SingleClassification(t *testing.T) {
	if !MajorRoad(edge("primary")) {
		t.Fatal("expected a primary road to be kept")
	}
	if MajorRoad(edge("residential")) {
		t.Fatal("expected a residential road to be dropped")
	}
}

func TestMajorRoad_ListKeptWhenAnyEntryIsMajor(t *testing.T) {
	if !MajorRoad(edge("residential;primary")) {
		t.Fatal("expected a mixed list containing primary to be kept")
	}
	if !MajorRoad(edge("residential; secondary")) {
		t.Fatal("expected list entries to be trimmed before matching")
	}
}

func TestMajorRoad_MinorOnlyListDropped(t *testing.T) {
	if MajorRoad(edge("residential;living_street")) {
		t.Fatal("expected a minor-only list to be dropped")
	}
}

func TestMajorRoad_MissingTagDropped(t *testing.T) {
	if MajorRoad(osm.Feature{Tags: map[string]string{}}) {
		t.Fatal("expected an edge without classification to be dropped")
	}
}

func TestFilterMajor_KeepsOrder(t *testing.T) {
	kept := FilterMajor([]osm.Feature{edge("motorway"), edge("footway"), edge("tertiary")})
	if len(kept) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(kept))
	}
	if kept[0].Tag("highway") != "motorway" || kept[1].Tag("highway") != "tertiary" {
		t.Fatal("expected input order preserved")
	}
}
