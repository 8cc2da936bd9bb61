package departure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"when-to-leave/internal/models"
)

func newTestLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type fakeResolver struct {
	arrival *models.FlightArrival
	err     error
	gotID   string
}

func (f *fakeResolver) ResolveFlight(_ context.Context, flightNumber string) (*models.FlightArrival, error) {
	f.gotID = flightNumber
	return f.arrival, f.err
}

type fakeDrive struct {
	minutes    int
	called     bool
	gotAirport string
}

func (f *fakeDrive) ResolveDriveTime(_ context.Context, _, airportName, airportCode string) models.DriveEstimate {
	f.called = true
	f.gotAirport = airportName + " (" + airportCode + ")"
	return models.DriveEstimate{Minutes: f.minutes}
}

func jfkArrival() *models.FlightArrival {
	return &models.FlightArrival{
		ArrivalTime: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		AirportName: "John F. Kennedy International Airport",
		AirportCode: "JFK",
	}
}

func TestServiceEstimate(t *testing.T) {
	resolver := &fakeResolver{arrival: jfkArrival()}
	drive := &fakeDrive{minutes: 25}
	svc := NewService(resolver, drive, newTestLogger())

	rec, err := svc.Estimate(context.Background(), models.FlightQuery{
		FlightNumber:    "AA123",
		HomeAddress:     "350 5th Ave, New York, NY 10118",
		AirportBusyness: models.BusyMedium,
		HolidayLevel:    models.HolidayNone,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if resolver.gotID != "AA123" {
		t.Errorf("resolver got %q", resolver.gotID)
	}
	if drive.gotAirport != "John F. Kennedy International Airport (JFK)" {
		t.Errorf("drive destination = %q", drive.gotAirport)
	}
	if want := time.Date(2024, 3, 15, 9, 15, 0, 0, time.UTC); !rec.ExitTime.Equal(want) {
		t.Errorf("ExitTime = %v; want %v", rec.ExitTime, want)
	}
	if want := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC); !rec.LeaveTime.Equal(want) {
		t.Errorf("LeaveTime = %v; want %v", rec.LeaveTime, want)
	}
	if rec.DriveMinutes != 25 {
		t.Errorf("DriveMinutes = %d; want 25", rec.DriveMinutes)
	}
}

func TestServiceWhenToLeaveFormats(t *testing.T) {
	svc := NewService(&fakeResolver{arrival: jfkArrival()}, &fakeDrive{minutes: 25}, newTestLogger())

	resp, err := svc.WhenToLeave(context.Background(), models.FlightQuery{
		FlightNumber:    "AA123",
		HomeAddress:     "350 5th Ave, New York, NY 10118",
		AirportBusyness: models.BusyMedium,
		HolidayLevel:    models.HolidayNone,
	})
	if err != nil {
		t.Fatalf("WhenToLeave: %v", err)
	}

	want := models.LeaveTimeResponse{
		LeaveTime: "4:30 AM EDT",
		Details: models.LeaveTimeDetails{
			ArrivalTime:     "4:00 AM EDT at John F. Kennedy International Airport (JFK)",
			AirportExitTime: "5:15 AM EDT",
			DriveMinutes:    25,
		},
	}
	if *resp != want {
		t.Errorf("response = %+v; want %+v", *resp, want)
	}
}

func TestServiceFlightFailureStopsPipeline(t *testing.T) {
	notFound := models.NewServiceError(models.ErrNotFound, "Flight AA123 not found", nil)
	drive := &fakeDrive{minutes: 25}
	svc := NewService(&fakeResolver{err: notFound}, drive, newTestLogger())

	_, err := svc.WhenToLeave(context.Background(), models.FlightQuery{FlightNumber: "AA123", HomeAddress: "somewhere"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
	if drive.called {
		t.Error("drive time must not be resolved when the flight lookup fails")
	}
}
