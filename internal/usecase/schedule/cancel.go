package schedule

import (
	"context"
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type CancelAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	loc      *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	notifier Notifier,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: dispatcher, notifier: notifier, loc: loc}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	artistID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artistID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, time.Now().In(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.BookingCancelled(ap)

	return ap, nil
}
