package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

func TestGetAvailableSlots(t *testing.T) {
	repo := newStubRepo()
	monday := nextWeekday(1) // time.Monday
	repo.weekly = []models.WeeklyAvailability{
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "15:00", EndTime: "19:00"},
	}
	repo.appointments = []models.Appointment{
		{
			ID:        "booked",
			ArtistID:  repo.artist.ID,
			Date:      monday.Format(domain.DateLayout),
			StartTime: "09:00",
			EndTime:   "10:00",
			Status:    "confirmed",
		},
	}

	uc := NewGetAvailableSlots(repo, 30)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID:  repo.artist.ID,
		ServiceID: repo.serviceID(),
		Date:      monday,
	})

	assert.NoError(t, err)
	assert.NotContains(t, slots, domain.Slot{StartTime: "09:00", EndTime: "10:00"})
	assert.NotContains(t, slots, domain.Slot{StartTime: "09:30", EndTime: "10:30"})
	assert.Contains(t, slots, domain.Slot{StartTime: "10:00", EndTime: "11:00"})
	assert.Contains(t, slots, domain.Slot{StartTime: "18:00", EndTime: "19:00"})
}

func TestGetAvailableSlotsUnknownService(t *testing.T) {
	repo := newStubRepo()
	uc := NewGetAvailableSlots(repo, 0)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID:  repo.artist.ID,
		ServiceID: "missing",
		Date:      nextWeekday(1),
	})
	assert.Error(t, err)
}

func TestGetAvailableSlotsClosedDayIsEmptyNotError(t *testing.T) {
	repo := newStubRepo() // no weekly rows at all
	uc := NewGetAvailableSlots(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID:  repo.artist.ID,
		ServiceID: repo.serviceID(),
		Date:      nextWeekday(0),
	})
	assert.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots, "closed day must serialize as [], not null")
}

func TestGetAvailableSlotsRetriesOnce(t *testing.T) {
	repo := newStubRepo()
	repo.weekly = []models.WeeklyAvailability{
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
	}
	repo.failures = 1 // first snapshot attempt fails, the retry succeeds

	uc := NewGetAvailableSlots(repo, 30)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID:  repo.artist.ID,
		ServiceID: repo.serviceID(),
		Date:      nextWeekday(1),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, slots)
}

func TestGetAvailableSlotsFailsClosed(t *testing.T) {
	repo := newStubRepo()
	repo.weekly = []models.WeeklyAvailability{
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
	}
	repo.failures = 10 // both attempts fail

	uc := NewGetAvailableSlots(repo, 30)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ArtistID:  repo.artist.ID,
		ServiceID: repo.serviceID(),
		Date:      nextWeekday(1),
	})

	// Unknown availability must be an error, never an empty list.
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Nil(t, slots)
}

func TestGetDailySlotCounts(t *testing.T) {
	repo := newStubRepo()
	repo.weekly = []models.WeeklyAvailability{
		{ArtistID: repo.artist.ID, Weekday: 1, StartTime: "09:00", EndTime: "11:00"},
	}

	monday := nextWeekday(1)
	tuesday := monday.AddDate(0, 0, 1)

	uc := NewGetDailySlotCounts(repo, 30)
	counts, err := uc.Execute(context.Background(), repo.artist.ID, repo.serviceID(), monday, tuesday)

	assert.NoError(t, err)
	assert.Len(t, counts, 2)
	// 09:00-11:00 with 60-minute slots on a 30-minute grid: 3 starts.
	assert.Equal(t, domain.DailySlotCount{Date: monday.Format(domain.DateLayout), SlotCount: 3}, counts[0])
	assert.Equal(t, domain.DailySlotCount{Date: tuesday.Format(domain.DateLayout), SlotCount: 0}, counts[1])
}

func TestGetDailySlotCountsInvalidRange(t *testing.T) {
	repo := newStubRepo()
	uc := NewGetDailySlotCounts(repo, 30)

	monday := nextWeekday(1)
	_, err := uc.Execute(context.Background(), repo.artist.ID, repo.serviceID(), monday, monday.AddDate(0, 0, -3))
	assert.Error(t, err)
}
