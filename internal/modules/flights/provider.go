// Package flights resolves a flight number to its arrival time and airport.
package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"when-to-leave/internal/models"
)

// Provider is a single flight-status data source.
type Provider interface {
	Name() string
	// Configured reports whether the provider has a credential to work with.
	Configured() bool
	Lookup(ctx context.Context, flightNumber string) (*models.FlightArrival, error)
}

// ResolverInterface is what the departure pipeline depends on.
type ResolverInterface interface {
	ResolveFlight(ctx context.Context, flightNumber string) (*models.FlightArrival, error)
}

// Resolver tries the primary provider and falls back to the secondary one.
type Resolver struct {
	primary   Provider
	secondary Provider
	logger    *slog.Logger
}

// NewResolver creates a Resolver. primary may be nil.
func NewResolver(primary, secondary Provider, logger *slog.Logger) *Resolver {
	return &Resolver{primary: primary, secondary: secondary, logger: logger}
}

// ResolveFlight returns the arrival of flightNumber. Only the secondary
// provider's errors reach the caller.
func (r *Resolver) ResolveFlight(ctx context.Context, flightNumber string) (*models.FlightArrival, error) {
	if r.primary != nil && r.primary.Configured() {
		arrival, err := r.primary.Lookup(ctx, flightNumber)
		switch {
		case err == nil:
			return arrival, nil
		case canFallBack(err):
			r.logger.WarnContext(ctx, "primary flight provider failed, falling back",
				"provider", r.primary.Name(),
				"fallback", r.secondary.Name(),
				"flight", flightNumber,
				"error", err)
		default:
			return nil, fmt.Errorf("resolver.ResolveFlight: %w", err)
		}
	}

	return r.secondary.Lookup(ctx, flightNumber)
}

// canFallBack limits fallback to failures the secondary provider can fix.
func canFallBack(err error) bool {
	return errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrServiceUnavailable) ||
		errors.Is(err, models.ErrMalformedResponse)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON performs req and decodes a JSON body into out. Transport errors are
// classified; a non-decodable body is ErrMalformedResponse.
func getJSON(client *http.Client, req *http.Request, out any) (int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return 0, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, models.NewServiceError(models.ErrMalformedResponse, "Could not get flight info", err)
	}
	return resp.StatusCode, nil
}

func transportError(err error) error {
	// A cancelled request is the caller going away, not a provider failure.
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return models.NewServiceError(models.ErrServiceUnavailable, "Flight API timeout", err)
	}
	return models.NewServiceError(models.ErrServiceUnavailable, "Could not get flight info", err)
}

// parseArrival accepts RFC 3339 timestamps, including the Z suffix, and
// returns the instant in UTC at whole-second precision.
func parseArrival(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, models.NewServiceError(models.ErrMalformedResponse, "Could not get flight info", err)
	}
	return t.UTC().Truncate(time.Second), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
