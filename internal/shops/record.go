package shops

import "zabka-atlas/internal/osm"

// addressPlaceholder stands in when a shop carries no street address.
const addressPlaceholder = "Adres niedostępny"

// buildRecord flattens one feature into a Record. A feature whose geometry
// cannot be reduced to a coordinate is skipped with a log line; one bad
// feature never aborts the batch.
func (s *Service) buildRecord(f osm.Feature) (Record, bool) {
	point, err := normalizePoint(f.Geometry)
	if err != nil {
		s.log.FeatureSkipped(f.ID, err.Error())
		return Record{}, false
	}

	name := f.Tag("name")
	if name == "" {
		name = DefaultName
	}

	return Record{
		Lon:     point.Lon(),
		Lat:     point.Lat(),
		Name:    name,
		Address: composeAddress(f.Tag("addr:street"), f.Tag("addr:housenumber")),
	}, true
}

// composeAddress builds the Polish-format street address: street and house
// number when both are known, the street alone otherwise, and a fixed
// placeholder when neither is.
func composeAddress(street, houseNumber string) string {
	switch {
	case street != "" && houseNumber != "":
		return street + " " + houseNumber
	case street != "":
		return street
	default:
		return addressPlaceholder
	}
}
