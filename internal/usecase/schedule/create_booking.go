package schedule

import (
	"context"
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ArtistID  string
	ServiceID string

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string

	// RequestedBy is the authenticated artist for agenda-created
	// bookings; empty for the public form.
	RequestedBy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier

	loc               *time.Location
	minAdvanceMinutes int
}

func NewCreateBooking(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	notifier Notifier,
	loc *time.Location,
	minAdvanceMinutes int,
) *CreateBooking {
	if minAdvanceMinutes <= 0 {
		minAdvanceMinutes = 120
	}
	return &CreateBooking{
		repo:              repo,
		audit:             dispatcher,
		notifier:          notifier,
		loc:               loc,
		minAdvanceMinutes: minAdvanceMinutes,
	}
}

// Execute creates a pending booking request. The open-hours and
// conflict checks here are advisory UX; the persistence-level conflict
// assert is what actually prevents a double booking.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtist(ctx, in.ArtistID)
	if err != nil || !artist.IsActive {
		return nil, httperr.ErrBusiness("artist_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := time.Now().In(uc.loc)
	if start.Before(now.Add(time.Duration(uc.minAdvanceMinutes) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.ArtistID, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	startMin, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	endMin := startMin + service.DurationMinutes
	if endMin > 24*60 {
		return nil, httperr.ErrBusiness("outside_open_hours")
	}
	endHM := domain.FormatClock(endMin)

	snap, err := fetchDaySnapshot(ctx, uc.repo, in.ArtistID, in.Date)
	if err != nil {
		return nil, err
	}

	open := domain.ResolveOpenIntervals(snap.weekly, snap.overrides, start)
	if !fitsOpenIntervals(open, startMin, endMin) {
		return nil, httperr.ErrBusiness("outside_open_hours")
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.ArtistID,
		in.Date,
		in.Time,
		endHM,
		"",
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ArtistID:    in.ArtistID,
		ServiceID:   service.ID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Date:        in.Date,
		StartTime:   in.Time,
		EndTime:     endHM,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	var actor *string
	if in.RequestedBy != "" {
		actor = &in.RequestedBy
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   actor,
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.BookingRequested(ap, service)

	return ap, nil
}

func fitsOpenIntervals(open domain.IntervalSet, startMin, endMin int) bool {
	for _, iv := range open {
		if iv.Start <= startMin && endMin <= iv.End {
			return true
		}
	}
	return false
}
