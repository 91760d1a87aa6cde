package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Boundary resolves the administrative boundary geometry of the named place
// through Nominatim.
func (c *Client) Boundary(ctx context.Context, place string) (orb.Geometry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("q", place)
	params.Add("format", "json")
	params.Add("polygon_geojson", "1")
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s?%s", c.nominatimURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("nominatim request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var rawResults []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&rawResults); err != nil {
		c.log.Error("failed to decode nominatim payload", "error", err)
		return nil, err
	}

	if len(rawResults) == 0 {
		return nil, fmt.Errorf("place %q did not resolve to a boundary", place)
	}

	raw := rawResults[0]
	if len(raw.GeoJSON) == 0 {
		return nil, fmt.Errorf("boundary for %q has no geometry", place)
	}

	geom, err := geojson.UnmarshalGeometry(raw.GeoJSON)
	if err != nil {
		return nil, fmt.Errorf("decode boundary geometry: %w", err)
	}

	c.log.Info("boundary resolved", "place", place, "displayName", raw.DisplayName)

	return geom.Geometry(), nil
}
