package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseGeocodeResolvesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "12.97", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.59", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "MG Road, Bengaluru, Karnataka, India"}`))
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL, 2*time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), "12.97", "77.59")

	require.NoError(t, err)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka, India", address)
}

func TestReverseGeocodeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL, 2*time.Second)
	_, err := resolver.ReverseGeocode(context.Background(), "0", "0")
	assert.Error(t, err)
}

func TestReverseGeocodeBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL, 2*time.Second)
	_, err := resolver.ReverseGeocode(context.Background(), "12.97", "77.59")
	assert.Error(t, err)
}

func TestReverseGeocodeUnreachable(t *testing.T) {
	resolver := NewNominatimResolver("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := resolver.ReverseGeocode(context.Background(), "12.97", "77.59")
	assert.Error(t, err)
}
