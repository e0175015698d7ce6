package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable is returned when no positioning source is configured
var ErrUnavailable = errors.New("location services are not available")

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator is the host's positioning capability
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator always reports the same position
type StaticLocator struct {
	Coordinates Coordinates
}

func (s StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return s.Coordinates, nil
}

// Disabled is a Locator for hosts without positioning
type Disabled struct{}

func (Disabled) Locate(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrUnavailable
}

// DefaultGeoIPURL answers with the caller's approximate position as JSON
const DefaultGeoIPURL = "http://ip-api.com/json/?fields=status,message,lat,lon"

// HTTPLocator asks an IP geolocation service where this machine is
type HTTPLocator struct {
	URL    string
	Client *http.Client
}

// NewHTTPLocator creates a locator for url, falling back to DefaultGeoIPURL
func NewHTTPLocator(url string) *HTTPLocator {
	if url == "" {
		url = DefaultGeoIPURL
	}
	return &HTTPLocator{URL: url, Client: http.DefaultClient}
}

// geoIPResponse covers the field names used by the common geolocation APIs
type geoIPResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *HTTPLocator) Locate(ctx context.Context) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Coordinates{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Coordinates{}, fmt.Errorf("geolocation service returned %s: %s", resp.Status, body)
	}

	var data geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Coordinates{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if data.Status != "" && data.Status != "success" {
		if data.Message == "" {
			data.Message = data.Status
		}
		return Coordinates{}, errors.New(data.Message)
	}

	switch {
	case data.Lat != nil && data.Lon != nil:
		return Coordinates{Latitude: *data.Lat, Longitude: *data.Lon}, nil
	case data.Latitude != nil && data.Longitude != nil:
		return Coordinates{Latitude: *data.Latitude, Longitude: *data.Longitude}, nil
	default:
		return Coordinates{}, errors.New("geolocation response has no coordinates")
	}
}
