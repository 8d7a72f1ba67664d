package schedule

import "github.com/blackline-studio/tattoo-scheduler/internal/models"

// Notifier sends the transactional emails for the booking lifecycle.
// Implementations deliver asynchronously and never fail the caller;
// the gomail implementation lives in internal/mailer.
type Notifier interface {
	BookingRequested(ap *models.Appointment, service *models.ArtistService)
	BookingConfirmed(ap *models.Appointment)
	BookingCancelled(ap *models.Appointment)
}

// NopNotifier is used in tests and when SMTP is not configured.
type NopNotifier struct{}

func (NopNotifier) BookingRequested(*models.Appointment, *models.ArtistService) {}
func (NopNotifier) BookingConfirmed(*models.Appointment)                        {}
func (NopNotifier) BookingCancelled(*models.Appointment)                        {}
