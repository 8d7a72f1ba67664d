package schedule

import (
	"context"
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// RescheduleAppointment moves a non-cancelled appointment to a new
// date/start, keeping its duration. This backs the agenda drag-and-drop,
// which rewrites the times directly without re-checking open hours —
// artists intentionally may drop a session outside the public grid.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{repo: repo, audit: dispatcher, loc: loc}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	artistID string,
	date string, // YYYY-MM-DD
	startHM string,
) (*models.Appointment, error) {

	if _, err := time.ParseInLocation(domain.DateLayout, date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artistID)
	if err != nil {
		return nil, err
	}

	oldStart, err1 := domain.ParseClock(ap.StartTime)
	oldEnd, err2 := domain.ParseClock(ap.EndTime)
	newStart, err3 := domain.ParseClock(startHM)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	newEnd := newStart + (oldEnd - oldStart)
	if newEnd > 24*60 {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	endHM := domain.FormatClock(newEnd)

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		artistID,
		date,
		startHM,
		endHM,
		ap.ID,
	); err != nil {
		return nil, err
	}

	if err := domain.Reschedule(ap, date, startHM, endHM); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
