package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
)

// DisabledDatesCache holds the precomputed 90-day horizon per artist.
// The redis implementation lives in internal/cache; a nil cache just
// recomputes every time.
type DisabledDatesCache interface {
	GetDisabledDates(ctx context.Context, artistID string) ([]string, bool)
	SetDisabledDates(ctx context.Context, artistID string, dates []string)
	InvalidateArtist(ctx context.Context, artistID string)
}

// GetDisabledDates produces the dates the picker greys out before any
// service duration is known (coarse check, see domain.BuildDisabledDates).
type GetDisabledDates struct {
	repo  domain.Repository
	cache DisabledDatesCache
	now   func() time.Time
}

func NewGetDisabledDates(repo domain.Repository, cache DisabledDatesCache, now func() time.Time) *GetDisabledDates {
	if now == nil {
		now = time.Now
	}
	return &GetDisabledDates{repo: repo, cache: cache, now: now}
}

func (uc *GetDisabledDates) Execute(ctx context.Context, artistID string) ([]string, error) {
	if uc.cache != nil {
		if dates, ok := uc.cache.GetDisabledDates(ctx, artistID); ok {
			return dates, nil
		}
	}

	dates, err := uc.compute(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetDisabledDates(ctx, artistID, dates)
	}
	return dates, nil
}

// Refresh recomputes and overwrites the cached horizon. The nightly
// job calls this so the rolling window moves forward.
func (uc *GetDisabledDates) Refresh(ctx context.Context, artistID string) error {
	dates, err := uc.compute(ctx, artistID)
	if err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.SetDisabledDates(ctx, artistID, dates)
	}
	return nil
}

func (uc *GetDisabledDates) compute(ctx context.Context, artistID string) ([]string, error) {
	from := uc.now()
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDate := from.AddDate(0, 0, domain.DisabledHorizonDays-1)

	snap, err := uc.fetchOnce(ctx, artistID, from.Format(domain.DateLayout), toDate.Format(domain.DateLayout))
	if err != nil && ctx.Err() == nil {
		snap, err = uc.fetchOnce(ctx, artistID, from.Format(domain.DateLayout), toDate.Format(domain.DateLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}

	dates := domain.BuildDisabledDates(snap.weekly, snap.overrides, from, domain.DisabledHorizonDays)
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func (uc *GetDisabledDates) fetchOnce(ctx context.Context, artistID, fromDate, toDate string) (rangeSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	var (
		snap rangeSnapshot
		wg   sync.WaitGroup
		errs [2]error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap.weekly, errs[0] = uc.repo.ListWeeklyAvailability(ctx, artistID)
	}()
	go func() {
		defer wg.Done()
		snap.overrides, errs[1] = uc.repo.ListDateOverrides(ctx, artistID, fromDate, toDate)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return rangeSnapshot{}, err
		}
	}
	return snap, nil
}
