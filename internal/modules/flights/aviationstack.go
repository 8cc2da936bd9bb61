package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"when-to-leave/internal/models"
)

// AviationStackProvider queries the AviationStack /flights endpoint by IATA flight code.
type AviationStackProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAviationStackProvider creates the secondary provider.
func NewAviationStackProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *AviationStackProvider {
	return &AviationStackProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(timeout),
		logger:     logger,
	}
}

func (p *AviationStackProvider) Name() string { return "AviationStack" }

func (p *AviationStackProvider) Configured() bool { return p.apiKey != "" }

type aviationStackResponse struct {
	Error *struct {
		Code json.RawMessage `json:"code"` // numeric on apilayer errors, a string on others
		Info string          `json:"info"`
	} `json:"error"`
	Data []struct {
		Arrival *struct {
			Airport   string `json:"airport"`
			IATA      string `json:"iata"`
			Scheduled string `json:"scheduled"`
			Estimated string `json:"estimated"`
		} `json:"arrival"`
	} `json:"data"`
}

// Lookup resolves flightNumber against AviationStack.
func (p *AviationStackProvider) Lookup(ctx context.Context, flightNumber string) (*models.FlightArrival, error) {
	if !p.Configured() {
		return nil, models.NewServiceError(models.ErrConfiguration, "Need flight API key", nil)
	}

	params := url.Values{}
	params.Set("access_key", p.apiKey)
	params.Set("flight_iata", flightNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/flights?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("aviationstack.Lookup build request: %w", err)
	}

	var body aviationStackResponse
	status, err := getJSON(p.httpClient, req, &body)
	if err != nil {
		p.logger.WarnContext(ctx, "flight API error", "provider", p.Name(), "flight", flightNumber, "error", err)
		return nil, err
	}
	if status != http.StatusOK {
		p.logger.WarnContext(ctx, "flight API bad status", "provider", p.Name(), "status", status)
		return nil, models.NewServiceError(models.ErrServiceUnavailable,
			"Flight data service temporarily unavailable. Please try again later.",
			fmt.Errorf("aviationstack status %d", status))
	}

	if body.Error != nil {
		info := body.Error.Info
		if info == "" {
			info = "API error"
		}
		p.logger.WarnContext(ctx, "flight API reported error", "provider", p.Name(), "code", string(body.Error.Code), "info", info)
		return nil, models.NewServiceError(models.ErrServiceUnavailable, "Flight API error: "+info, nil)
	}

	if len(body.Data) == 0 {
		return nil, models.NewServiceError(models.ErrNotFound, fmt.Sprintf("Flight %s not found", flightNumber), nil)
	}
	first := body.Data[0]
	if first.Arrival == nil || firstNonEmpty(first.Arrival.Scheduled, first.Arrival.Estimated) == "" {
		return nil, models.NewServiceError(models.ErrNotFound, fmt.Sprintf("No arrival info for flight %s", flightNumber), nil)
	}

	arrivalTime, err := parseArrival(firstNonEmpty(first.Arrival.Scheduled, first.Arrival.Estimated))
	if err != nil {
		p.logger.WarnContext(ctx, "flight API returned unparsable time", "provider", p.Name(), "error", err)
		return nil, models.NewServiceError(models.ErrServiceUnavailable, "Could not get flight info", err)
	}

	code := airportCode(first.Arrival.IATA)
	arrival := &models.FlightArrival{
		ArrivalTime: arrivalTime,
		AirportCode: code,
		AirportName: airportName(code, first.Arrival.Airport),
	}

	p.logger.InfoContext(ctx, "flight resolved",
		"provider", p.Name(),
		"flight", flightNumber,
		"airport", arrival.AirportName,
		"arrival", arrival.ArrivalTime.Format(time.RFC3339))
	return arrival, nil
}
