package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Resolver turns a coordinate pair into a human-readable address.
type Resolver interface {
	ReverseGeocode(ctx context.Context, latitude, longitude string) (string, error)
}

type nominatimResolver struct {
	baseURL string
	client  *http.Client
}

// NewNominatimResolver creates a resolver against a Nominatim-compatible
// reverse-geocoding endpoint.
func NewNominatimResolver(baseURL string, timeout time.Duration) Resolver {
	return &nominatimResolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// ReverseGeocode resolves a coordinate pair. Callers are expected to
// fall back to the raw pair when this returns an error.
func (r *nominatimResolver) ReverseGeocode(ctx context.Context, latitude, longitude string) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		r.baseURL, url.QueryEscape(latitude), url.QueryEscape(longitude))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	if body.Error != "" {
		return "", fmt.Errorf("reverse geocode error: %s", body.Error)
	}
	if body.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode returned no address")
	}

	return body.DisplayName, nil
}
