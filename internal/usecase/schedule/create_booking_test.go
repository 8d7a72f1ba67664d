package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

func mondayBookingSetup() (*stubRepo, *CreateBooking, string) {
	repo := newStubRepo()
	repo.weekly = []models.WeeklyAvailability{
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
	}

	uc := NewCreateBooking(repo, testDispatcher(), NopNotifier{}, time.UTC, 120)
	date := nextWeekday(time.Monday).Format(domain.DateLayout)
	return repo, uc, date
}

func TestCreateBooking(t *testing.T) {
	repo, uc, date := mondayBookingSetup()

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		ArtistID:    repo.artist.ID,
		ServiceID:   repo.serviceID(),
		ClientName:  "Lucía Pérez",
		ClientEmail: "lucia@example.com",
		Date:        date,
		Time:        "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "11:00", ap.EndTime)
	assert.NotEmpty(t, ap.ID)
}

func TestCreateBookingConflict(t *testing.T) {
	repo, uc, date := mondayBookingSetup()
	repo.appointments = []models.Appointment{
		{ID: "taken", ArtistID: repo.artist.ID, Date: date, StartTime: "10:00", EndTime: "11:00", Status: "pending"},
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Lucía Pérez",
		Date:       date,
		Time:       "10:30",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateBookingBackToBackIsAllowed(t *testing.T) {
	repo, uc, date := mondayBookingSetup()
	repo.appointments = []models.Appointment{
		{ID: "taken", ArtistID: repo.artist.ID, Date: date, StartTime: "09:00", EndTime: "10:00", Status: "confirmed"},
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Lucía Pérez",
		Date:       date,
		Time:       "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	repo, uc, date := mondayBookingSetup()
	repo.appointments = []models.Appointment{
		{ID: "gone", ArtistID: repo.artist.ID, Date: date, StartTime: "10:00", EndTime: "11:00", Status: "cancelled"},
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Lucía Pérez",
		Date:       date,
		Time:       "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingRejections(t *testing.T) {
	repo, uc, date := mondayBookingSetup()

	tests := []struct {
		name     string
		in       CreateBookingInput
		wantCode string
	}{
		{
			name: "outside open hours",
			in: CreateBookingInput{
				ArtistID: repo.artist.ID, ServiceID: repo.serviceID(),
				ClientName: "x", Date: date, Time: "14:00",
			},
			wantCode: "outside_open_hours",
		},
		{
			name: "slot would run past closing",
			in: CreateBookingInput{
				ArtistID: repo.artist.ID, ServiceID: repo.serviceID(),
				ClientName: "x", Date: date, Time: "12:30",
			},
			wantCode: "outside_open_hours",
		},
		{
			name: "unknown artist",
			in: CreateBookingInput{
				ArtistID: "nobody", ServiceID: repo.serviceID(),
				ClientName: "x", Date: date, Time: "10:00",
			},
			wantCode: "artist_not_found",
		},
		{
			name: "unknown service",
			in: CreateBookingInput{
				ArtistID: repo.artist.ID, ServiceID: "nothing",
				ClientName: "x", Date: date, Time: "10:00",
			},
			wantCode: "service_not_found",
		},
		{
			name: "malformed time",
			in: CreateBookingInput{
				ArtistID: repo.artist.ID, ServiceID: repo.serviceID(),
				ClientName: "x", Date: date, Time: "quarter past nine",
			},
			wantCode: "invalid_date_or_time",
		},
		{
			name: "in the past",
			in: CreateBookingInput{
				ArtistID: repo.artist.ID, ServiceID: repo.serviceID(),
				ClientName: "x", Date: "2020-01-06", Time: "10:00",
			},
			wantCode: "too_soon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestConfirmCancelFlow(t *testing.T) {
	repo, create, date := mondayBookingSetup()

	ap, err := create.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Lucía Pérez",
		Date:       date,
		Time:       "09:00",
	})
	assert.NoError(t, err)

	confirm := NewConfirmAppointment(repo, testDispatcher(), NopNotifier{}, time.UTC)
	ap, err = confirm.Execute(context.Background(), ap.ID, repo.artist.ID)
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	// Confirming twice is an invalid transition.
	_, err = confirm.Execute(context.Background(), ap.ID, repo.artist.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	cancel := NewCancelAppointment(repo, testDispatcher(), NopNotifier{}, time.UTC)
	ap, err = cancel.Execute(context.Background(), ap.ID, repo.artist.ID)
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)

	_, err = cancel.Execute(context.Background(), ap.ID, repo.artist.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReschedule(t *testing.T) {
	repo, create, date := mondayBookingSetup()

	ap, err := create.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Lucía Pérez",
		Date:       date,
		Time:       "09:00",
	})
	assert.NoError(t, err)

	resched := NewRescheduleAppointment(repo, testDispatcher(), time.UTC)

	// Moving over its own old slot must not conflict with itself.
	moved, err := resched.Execute(context.Background(), ap.ID, repo.artist.ID, date, "09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", moved.StartTime)
	assert.Equal(t, "10:30", moved.EndTime)

	// A second appointment in the way blocks the move.
	other, err := create.Execute(context.Background(), CreateBookingInput{
		ArtistID:   repo.artist.ID,
		ServiceID:  repo.serviceID(),
		ClientName: "Marco Díaz",
		Date:       date,
		Time:       "11:00",
	})
	assert.NoError(t, err)

	_, err = resched.Execute(context.Background(), other.ID, repo.artist.ID, date, "10:00")
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}
