package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type stubCache struct {
	store map[string][]string
	hits  int
	sets  int
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string][]string{}}
}

func (c *stubCache) GetDisabledDates(ctx context.Context, artistID string) ([]string, bool) {
	dates, ok := c.store[artistID]
	if ok {
		c.hits++
	}
	return dates, ok
}

func (c *stubCache) SetDisabledDates(ctx context.Context, artistID string, dates []string) {
	c.sets++
	c.store[artistID] = dates
}

func (c *stubCache) InvalidateArtist(ctx context.Context, artistID string) {
	delete(c.store, artistID)
}

func TestGetDisabledDates(t *testing.T) {
	repo := newStubRepo()
	// Open every day except Sunday.
	for wd := 1; wd <= 6; wd++ {
		repo.weekly = append(repo.weekly, models.WeeklyAvailability{
			ArtistID: repo.artist.ID, Weekday: wd, StartTime: "10:00", EndTime: "18:00",
		})
	}
	blockedDate := nextWeekday(time.Wednesday).Format(domain.DateLayout)
	repo.overrides = []models.DateOverride{
		{ArtistID: repo.artist.ID, Date: blockedDate, IsBlocked: true},
	}

	uc := NewGetDisabledDates(repo, nil, nil)
	dates, err := uc.Execute(context.Background(), repo.artist.ID)

	assert.NoError(t, err)
	assert.Contains(t, dates, blockedDate)
	for _, d := range dates {
		day, perr := time.Parse(domain.DateLayout, d)
		assert.NoError(t, perr)
		if d != blockedDate {
			assert.Equal(t, time.Sunday, day.Weekday(), d)
		}
	}
}

func TestGetDisabledDatesUsesCache(t *testing.T) {
	repo := newStubRepo()
	cache := newStubCache()

	uc := NewGetDisabledDates(repo, cache, nil)

	first, err := uc.Execute(context.Background(), repo.artist.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache even if the store is down.
	repo.failures = 10
	second, err := uc.Execute(context.Background(), repo.artist.ID)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)
}

func TestGetDisabledDatesFailsClosed(t *testing.T) {
	repo := newStubRepo()
	repo.failures = 10

	uc := NewGetDisabledDates(repo, nil, nil)
	_, err := uc.Execute(context.Background(), repo.artist.ID)
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
}

func TestGetDisabledDatesRefreshOverwritesCache(t *testing.T) {
	repo := newStubRepo()
	cache := newStubCache()
	cache.store[repo.artist.ID] = []string{"stale"}

	uc := NewGetDisabledDates(repo, cache, nil)
	assert.NoError(t, uc.Refresh(context.Background(), repo.artist.ID))
	assert.NotContains(t, cache.store[repo.artist.ID], "stale")
}
