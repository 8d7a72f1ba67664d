package schedule

import (
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Reschedule rewrites date and times directly, the way the agenda
// drag-and-drop does. Conflict checking stays with the caller.
func Reschedule(ap *models.Appointment, date, startHM, endHM string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = date
	ap.StartTime = startHM
	ap.EndTime = endHM
	return nil
}
