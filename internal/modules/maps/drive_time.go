// Package maps estimates driving time to the airport with the Google
// Distance Matrix API.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"when-to-leave/internal/models"
)

// DriveTimeServiceInterface is what the departure pipeline depends on.
// Implementations never fail; they fall back to models.DefaultDriveMinutes.
type DriveTimeServiceInterface interface {
	ResolveDriveTime(ctx context.Context, address, airportName, airportCode string) models.DriveEstimate
}

// DriveTimeService calls the Distance Matrix endpoint.
type DriveTimeService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDriveTimeService creates a new service instance. An empty apiKey makes
// every lookup return the default.
func NewDriveTimeService(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *DriveTimeService {
	return &DriveTimeService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type durationValue struct {
	Value int `json:"value"` // seconds
}

// distanceMatrixResponse is the subset of the Distance Matrix response we read.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status            string         `json:"status"`
			Duration          *durationValue `json:"duration"`
			DurationInTraffic *durationValue `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
}

// ResolveDriveTime returns the driving time from address to the airport.
func (s *DriveTimeService) ResolveDriveTime(ctx context.Context, address, airportName, airportCode string) models.DriveEstimate {
	if s.apiKey == "" {
		s.logger.WarnContext(ctx, "no Google Maps key, using default drive time", "minutes", models.DefaultDriveMinutes)
		return defaultEstimate()
	}

	seconds, err := s.fetchDriveSeconds(ctx, address, fmt.Sprintf("%s (%s)", airportName, airportCode))
	if err != nil {
		s.logger.WarnContext(ctx, "drive time lookup failed, using default",
			"airport", airportCode,
			"minutes", models.DefaultDriveMinutes,
			"error", err)
		return defaultEstimate()
	}

	return models.DriveEstimate{Minutes: secondsToMinutes(seconds)}
}

func (s *DriveTimeService) fetchDriveSeconds(ctx context.Context, origin, destination string) (int, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("key", s.apiKey)
	params.Set("mode", "driving")
	params.Set("units", "imperial")
	params.Set("departure_time", "now")
	params.Set("traffic_model", "best_guess")

	endpoint := s.baseURL + "/distancematrix/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call distance matrix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance matrix http status %d", resp.StatusCode)
	}

	var matrix distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return 0, fmt.Errorf("decode distance matrix: %w", err)
	}

	if matrix.Status != "OK" {
		return 0, fmt.Errorf("distance matrix status %q", matrix.Status)
	}
	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix returned no elements")
	}

	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %q", element.Status)
	}

	// Traffic-aware duration is only present when departure_time is honoured.
	switch {
	case element.DurationInTraffic != nil && element.DurationInTraffic.Value >= 0:
		return element.DurationInTraffic.Value, nil
	case element.Duration != nil && element.Duration.Value >= 0:
		return element.Duration.Value, nil
	default:
		return 0, fmt.Errorf("distance matrix element has no duration")
	}
}

// secondsToMinutes rounds half away from zero: 90s is 2 minutes.
func secondsToMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

func defaultEstimate() models.DriveEstimate {
	return models.DriveEstimate{Minutes: models.DefaultDriveMinutes, Default: true}
}
