package flights

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"when-to-leave/internal/models"
)

// FlightAwareProvider looks flights up by ident on the FlightAware AeroAPI.
type FlightAwareProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFlightAwareProvider creates the primary provider. An empty apiKey
// leaves it unconfigured.
func NewFlightAwareProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *FlightAwareProvider {
	return &FlightAwareProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(timeout),
		logger:     logger,
	}
}

func (p *FlightAwareProvider) Name() string { return "FlightAware" }

func (p *FlightAwareProvider) Configured() bool { return p.apiKey != "" }

// aeroAPIResponse holds the fields of GET /flights/{ident} we use.
type aeroAPIResponse struct {
	Flights []struct {
		Ident        string `json:"ident"`
		EstimatedIn  string `json:"estimated_in"`
		ScheduledIn  string `json:"scheduled_in"`
		EstimatedOut string `json:"estimated_out"`
		ScheduledOut string `json:"scheduled_out"`
		Destination  *struct {
			Code             string `json:"code"`
			CodeIATA         string `json:"code_iata"`
			IATA             string `json:"iata"`
			Name             string `json:"name"`
			AirportName      string `json:"airport_name"`
			FriendlyLocation string `json:"friendly_location"`
		} `json:"destination"`
	} `json:"flights"`
}

// Lookup resolves flightNumber against AeroAPI.
func (p *FlightAwareProvider) Lookup(ctx context.Context, flightNumber string) (*models.FlightArrival, error) {
	if !p.Configured() {
		return nil, models.NewServiceError(models.ErrConfiguration, "FlightAware API key not configured", nil)
	}

	endpoint := fmt.Sprintf("%s/flights/%s", p.baseURL, url.PathEscape(flightNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("flightaware.Lookup build request: %w", err)
	}
	req.Header.Set("x-apikey", p.apiKey)
	req.Header.Set("Accept", "application/json")

	var body aeroAPIResponse
	status, err := getJSON(p.httpClient, req, &body)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, models.NewServiceError(models.ErrNotFound, "Flight not found", nil)
	case status != http.StatusOK:
		return nil, models.NewServiceError(models.ErrServiceUnavailable,
			"Flight data service temporarily unavailable", fmt.Errorf("flightaware status %d", status))
	}

	if len(body.Flights) == 0 {
		return nil, models.NewServiceError(models.ErrNotFound, "Flight not found", nil)
	}
	flight := body.Flights[0]

	// Arrival estimates first; departure times stand in when the gate-in time is unknown.
	rawTime := firstNonEmpty(flight.EstimatedIn, flight.ScheduledIn, flight.EstimatedOut, flight.ScheduledOut)
	if rawTime == "" {
		return nil, models.NewServiceError(models.ErrNotFound, "No arrival time", nil)
	}
	arrivalTime, err := parseArrival(rawTime)
	if err != nil {
		return nil, err
	}

	arrival := &models.FlightArrival{ArrivalTime: arrivalTime, AirportCode: "UNK"}
	if dest := flight.Destination; dest != nil {
		arrival.AirportCode = airportCode(dest.CodeIATA, dest.IATA, dest.Code)
		arrival.AirportName = airportName(arrival.AirportCode, dest.FriendlyLocation, dest.AirportName, dest.Name)
	} else {
		arrival.AirportName = airportName(arrival.AirportCode)
	}

	p.logger.InfoContext(ctx, "flight resolved",
		"provider", p.Name(),
		"flight", flightNumber,
		"airport", arrival.AirportCode,
		"arrival", arrival.ArrivalTime.Format(time.RFC3339))
	return arrival, nil
}
