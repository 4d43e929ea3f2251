package geocoder

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medilink/config"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *GoogleGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGoogleGeocoder(config.GeocoderConfig{
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	}, nil, logrus.New())
}

func TestGeocode_OK(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "서울시 중구 세종대로 110", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":37.5665,"lng":126.9780}}}]}`)
	})

	pt, err := g.Geocode(context.Background(), "서울시 중구 세종대로 110")
	require.NoError(t, err)
	assert.Equal(t, 37.5665, pt.Lat)
	assert.Equal(t, 126.9780, pt.Lng)
	assert.True(t, pt.IsSet())
}

func TestGeocode_ZeroResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	pt, err := g.Geocode(context.Background(), "없는 주소 123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, pt.IsSet())
}

func TestGeocode_ProviderError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OVER_QUERY_LIMIT","results":[]}`)
	})

	_, err := g.Geocode(context.Background(), "서울시 중구 세종대로 110")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeocode_HTTPError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := g.Geocode(context.Background(), "서울시 중구 세종대로 110")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeocode_Unreachable(t *testing.T) {
	var calls atomic.Int32
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	g.baseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := g.Geocode(context.Background(), "서울시 중구 세종대로 110")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, calls.Load())
}

func TestGeocode_EmptyAddress(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called for an empty address")
	})

	_, err := g.Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGeocode_MissingKeyDisablesLookups(t *testing.T) {
	g := NewGoogleGeocoder(config.GeocoderConfig{
		BaseURL: "http://example.invalid",
		Timeout: time.Second,
	}, nil, logrus.New())

	_, err := g.Geocode(context.Background(), "서울시 중구 세종대로 110")
	assert.ErrorIs(t, err, ErrUnavailable)
}
