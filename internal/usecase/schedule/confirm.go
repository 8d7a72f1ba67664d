package schedule

import (
	"context"
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	loc      *time.Location
}

func NewConfirmAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	notifier Notifier,
	loc *time.Location,
) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo, audit: dispatcher, notifier: notifier, loc: loc}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	artistID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artistID)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(ap, time.Now().In(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.BookingConfirmed(ap)

	return ap, nil
}
