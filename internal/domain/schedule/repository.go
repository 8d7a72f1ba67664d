package schedule

import (
	"context"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type Repository interface {
	// -------- Artist / Service --------
	GetArtist(
		ctx context.Context,
		artistID string,
	) (*models.Profile, error)

	GetService(
		ctx context.Context,
		artistID string,
		serviceID string,
	) (*models.ArtistService, error)

	// -------- Availability inputs --------
	ListWeeklyAvailability(
		ctx context.Context,
		artistID string,
	) ([]models.WeeklyAvailability, error)

	ListDateOverrides(
		ctx context.Context,
		artistID string,
		fromDate string,
		toDate string,
	) ([]models.DateOverride, error)

	// ListAppointmentsForDate excludes cancelled rows.
	ListAppointmentsForDate(
		ctx context.Context,
		artistID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsInRange(
		ctx context.Context,
		artistID string,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoTimeConflict fails with a business error when the range
	// overlaps a non-cancelled appointment. excludeID ignores one row,
	// used when rescheduling an appointment over itself.
	AssertNoTimeConflict(
		ctx context.Context,
		artistID string,
		date string,
		startHM string,
		endHM string,
		excludeID string,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForArtist(
		ctx context.Context,
		appointmentID string,
		artistID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
