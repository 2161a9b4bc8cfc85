package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GeoLocation is the subset of the ip-geolocation response the platform
// keeps (login auditing on the admin panel).
type GeoLocation struct {
	IP      string `json:"ip"`
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

// GeoIPClient talks to the ip-geolocation service.
type GeoIPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeoIPClient creates a client for the ip-geolocation service.
func NewGeoIPClient(baseURL string) *GeoIPClient {
	return &GeoIPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Geolocation is best-effort login enrichment; fail fast.
			Timeout: 5 * time.Second,
		},
	}
}

// Lookup resolves the location of an IP address.
func (c *GeoIPClient) Lookup(ctx context.Context, ip string) (*GeoLocation, error) {
	endpoint := fmt.Sprintf("%s/ip-geolocation?ip=%s", c.baseURL, url.QueryEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling geolocation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	var loc GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, fmt.Errorf("decoding geolocation response: %w", err)
	}
	return &loc, nil
}
