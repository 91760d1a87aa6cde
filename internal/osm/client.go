// Package osm provides the OpenStreetMap collaborators: the Overpass
// interpreter for feature queries and Nominatim for boundary geocoding.
package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"zabka-atlas/platform/config"
	"zabka-atlas/platform/logger"

	"golang.org/x/time/rate"
)

// driveExclusions drops the way classes that are not part of the drivable
// road network.
const driveExclusions = `["highway"!~"^(footway|cycleway|path|pedestrian|steps|track|corridor|bridleway|service|proposed|construction)$"]["area"!="yes"]`

// ClientConfig provides the settings the client needs.
type ClientConfig interface {
	config.OverpassConfig
	config.NominatimConfig
}

// Client queries the public OpenStreetMap services. All calls are sequential
// and paced by a shared limiter, per the usage policies of both endpoints.
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	overpassURL  string
	nominatimURL string
	userAgent    string
	log          *logger.Logger
}

// NewClient creates an OSM client from configuration.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	limit := rate.Inf
	if spacing := cfg.GetRequestSpacing(); spacing > 0 {
		limit = rate.Every(spacing)
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.GetHTTPTimeout()},
		limiter:      rate.NewLimiter(limit, 1),
		overpassURL:  cfg.GetOverpassURL(),
		nominatimURL: cfg.GetNominatimURL(),
		userAgent:    cfg.GetUserAgent(),
		log:          log,
	}
}

// Features fetches the nodes, ways and relations matching the tag filter
// inside the administrative boundary of the named place.
func (c *Client) Features(ctx context.Context, place string, filter TagFilter) ([]Feature, error) {
	elements, err := c.runOverpass(ctx, buildAreaQuery(place, "nwr", filter, ""))
	if err != nil {
		return nil, err
	}
	return c.collectFeatures(elements), nil
}

// RoadEdges fetches the drivable road network as individual way features
// carrying their highway classification.
func (c *Client) RoadEdges(ctx context.Context, place string) ([]Feature, error) {
	elements, err := c.runOverpass(ctx, buildAreaQuery(place, "way", TagFilter{Present("highway")}, driveExclusions))
	if err != nil {
		return nil, err
	}
	return c.collectFeatures(elements), nil
}

// Rivers fetches the river waterways of the named place.
func (c *Client) Rivers(ctx context.Context, place string) ([]Feature, error) {
	elements, err := c.runOverpass(ctx, buildAreaQuery(place, "way", TagFilter{Exact("waterway", "river")}, ""))
	if err != nil {
		return nil, err
	}
	return c.collectFeatures(elements), nil
}

func (c *Client) collectFeatures(elements []overpassElement) []Feature {
	features := make([]Feature, 0, len(elements))
	for _, el := range elements {
		f, ok := el.feature()
		if !ok {
			c.log.Debug("element without usable geometry", "type", el.Type, "id", el.ID)
			continue
		}
		features = append(features, f)
	}
	return features
}

func (c *Client) runOverpass(ctx context.Context, query string) ([]overpassElement, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.overpassURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("overpass request failed", "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusTooManyRequests, http.StatusGatewayTimeout:
		c.log.Error("overpass overloaded", "status", resp.StatusCode)
		return nil, fmt.Errorf("overpass overloaded: status %d", resp.StatusCode)
	default:
		c.log.Error("overpass upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("overpass decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return payload.Elements, nil
}

// areaName extracts the city portion of a "City, Country" place name;
// Overpass areas are named without the country suffix.
func areaName(place string) string {
	name, _, _ := strings.Cut(place, ",")
	return strings.TrimSpace(name)
}

func buildAreaQuery(place, kind string, filter TagFilter, extra string) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:90];\n")
	fmt.Fprintf(&b, "area[\"boundary\"=\"administrative\"][\"name\"=%q]->.searchArea;\n", areaName(place))
	b.WriteString(kind)
	for _, p := range filter {
		b.WriteString(p.ql())
	}
	b.WriteString(extra)
	b.WriteString("(area.searchArea);\nout geom;")
	return b.String()
}
