// Package geocoder resolves free-text postal addresses into coordinates
// through the Google Maps Geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"medilink/config"
	"medilink/pkg/geo"
)

var (
	// ErrNotFound means the provider could not resolve the address. Permanent
	// for a given address string; retrying without editing it will not help.
	ErrNotFound = errors.New("address not found")
	// ErrUnavailable means the provider could not be reached or rejected the
	// request. Transient; callers degrade to sentinel coordinates.
	ErrUnavailable = errors.New("geocoder unavailable")
)

const cacheKeyPrefix = "geocode:"

// notFoundMarker caches permanent failures so edit-flow retries of the same
// bad address do not spend provider quota.
const notFoundMarker = "not_found"

// Geocoder converts a postal address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Point, error)
}

type GoogleGeocoder struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logrus.Logger
}

// NewGoogleGeocoder builds the provider client. cache may be nil, in which
// case every call goes to the provider. An empty API key yields a client
// whose every lookup fails with ErrUnavailable; the service stays up.
func NewGoogleGeocoder(cfg config.GeocoderConfig, cache *redis.Client, log *logrus.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: cfg.Timeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		log:      log,
	}
}

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (geo.Point, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return geo.Point{}, ErrNotFound
	}
	if g.apiKey == "" {
		return geo.Point{}, ErrUnavailable
	}

	if pt, err, hit := g.cacheGet(ctx, address); hit {
		return pt, err
	}

	pt, err := g.lookup(ctx, address)
	if err == nil || errors.Is(err, ErrNotFound) {
		g.cacheSet(ctx, address, pt, err)
	}
	return pt, err
}

func (g *GoogleGeocoder) lookup(ctx context.Context, address string) (geo.Point, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warnf("Geocoder request failed: %+v", err)
		return geo.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warnf("Geocoder returned HTTP %d", resp.StatusCode)
		return geo.Point{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geo.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch body.Status {
	case "OK":
		if len(body.Results) == 0 {
			return geo.Point{}, ErrNotFound
		}
		loc := body.Results[0].Geometry.Location
		return geo.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
	case "ZERO_RESULTS":
		return geo.Point{}, ErrNotFound
	default:
		g.log.Warnf("Geocoder returned status %s", body.Status)
		return geo.Point{}, fmt.Errorf("%w: provider status %s", ErrUnavailable, body.Status)
	}
}

func (g *GoogleGeocoder) cacheKey(address string) string {
	return cacheKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (g *GoogleGeocoder) cacheGet(ctx context.Context, address string) (geo.Point, error, bool) {
	if g.cache == nil {
		return geo.Point{}, nil, false
	}

	val, err := g.cache.Get(ctx, g.cacheKey(address)).Result()
	if err != nil {
		return geo.Point{}, nil, false
	}
	if val == notFoundMarker {
		return geo.Point{}, ErrNotFound, true
	}

	var pt geo.Point
	if err := json.Unmarshal([]byte(val), &pt); err != nil {
		return geo.Point{}, nil, false
	}
	return pt, nil, true
}

func (g *GoogleGeocoder) cacheSet(ctx context.Context, address string, pt geo.Point, lookupErr error) {
	if g.cache == nil {
		return
	}

	val := notFoundMarker
	if lookupErr == nil {
		raw, err := json.Marshal(pt)
		if err != nil {
			return
		}
		val = string(raw)
	}

	if err := g.cache.Set(ctx, g.cacheKey(address), val, g.cacheTTL).Err(); err != nil {
		g.log.Warnf("Failed to cache geocode result: %+v", err)
	}
}
