// Package departure turns a flight and a home address into a time to leave.
package departure

import (
	"context"
	"fmt"
	"log/slog"

	"when-to-leave/internal/models"
	"when-to-leave/internal/modules/flights"
	"when-to-leave/internal/modules/maps"
)

// ServiceInterface defines the contract for the departure service.
type ServiceInterface interface {
	Estimate(ctx context.Context, q models.FlightQuery) (*models.LeaveRecommendation, error)
	WhenToLeave(ctx context.Context, q models.FlightQuery) (*models.LeaveTimeResponse, error)
}

// Service sequences flight lookup, drive time, exit estimate and leave time.
type Service struct {
	flights flights.ResolverInterface
	drive   maps.DriveTimeServiceInterface
	logger  *slog.Logger
}

// NewService creates a new departure service.
func NewService(resolver flights.ResolverInterface, drive maps.DriveTimeServiceInterface, logger *slog.Logger) *Service {
	return &Service{flights: resolver, drive: drive, logger: logger}
}

// Estimate computes the raw instants for q. Only flight resolution can fail.
func (s *Service) Estimate(ctx context.Context, q models.FlightQuery) (*models.LeaveRecommendation, error) {
	// 1. Flight first: the drive needs the destination airport.
	arrival, err := s.flights.ResolveFlight(ctx, q.FlightNumber)
	if err != nil {
		return nil, fmt.Errorf("service.Estimate: %w", err)
	}

	// 2. Drive time never fails.
	drive := s.drive.ResolveDriveTime(ctx, q.HomeAddress, arrival.AirportName, arrival.AirportCode)

	// 3. Exit and leave times are pure arithmetic.
	exit := EstimateExitTime(arrival.ArrivalTime, q.AirportBusyness, q.HolidayLevel, q.HasCheckedBags)
	leave := ComputeLeaveTime(exit, drive.Minutes)

	s.logger.InfoContext(ctx, "leave time estimated",
		"flight", q.FlightNumber,
		"airport", arrival.AirportCode,
		"drive_minutes", drive.Minutes,
		"drive_default", drive.Default,
		"leave", leave)

	return &models.LeaveRecommendation{
		LeaveTime:    leave,
		ArrivalTime:  arrival.ArrivalTime,
		ExitTime:     exit,
		DriveMinutes: drive.Minutes,
		Arrival:      *arrival,
	}, nil
}

// WhenToLeave runs Estimate and localizes every instant to the user's address.
func (s *Service) WhenToLeave(ctx context.Context, q models.FlightQuery) (*models.LeaveTimeResponse, error) {
	rec, err := s.Estimate(ctx, q)
	if err != nil {
		return nil, err
	}

	return &models.LeaveTimeResponse{
		LeaveTime: FormatLocal(rec.LeaveTime, q.HomeAddress),
		Details: models.LeaveTimeDetails{
			ArrivalTime: fmt.Sprintf("%s at %s (%s)",
				FormatLocal(rec.ArrivalTime, q.HomeAddress), rec.Arrival.AirportName, rec.Arrival.AirportCode),
			AirportExitTime: FormatLocal(rec.ExitTime, q.HomeAddress),
			DriveMinutes:    rec.DriveMinutes,
		},
	}, nil
}
