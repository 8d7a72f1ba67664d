package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// ErrAvailabilityUnknown means the snapshot reads failed. Callers must
// surface this as "temporarily unavailable", never as an empty slot
// list — an empty list reads as "fully booked" to the client.
var ErrAvailabilityUnknown = errors.New("availability_unknown")

const snapshotTimeout = 3 * time.Second

// daySnapshot is the read set the pipeline computes from: weekly rules,
// the date's overrides and the date's non-cancelled appointments.
type daySnapshot struct {
	weekly       []models.WeeklyAvailability
	overrides    []models.DateOverride
	appointments []models.Appointment
}

// fetchDaySnapshot issues the three reads in parallel with a bounded
// timeout and retries the whole snapshot once on failure.
func fetchDaySnapshot(
	ctx context.Context,
	repo domain.Repository,
	artistID string,
	date string,
) (daySnapshot, error) {

	snap, err := fetchDayOnce(ctx, repo, artistID, date)
	if err != nil && ctx.Err() == nil {
		snap, err = fetchDayOnce(ctx, repo, artistID, date)
	}
	if err != nil {
		return daySnapshot{}, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}
	return snap, nil
}

func fetchDayOnce(
	ctx context.Context,
	repo domain.Repository,
	artistID string,
	date string,
) (daySnapshot, error) {

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	var (
		snap daySnapshot
		wg   sync.WaitGroup
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.weekly, errs[0] = repo.ListWeeklyAvailability(ctx, artistID)
	}()
	go func() {
		defer wg.Done()
		snap.overrides, errs[1] = repo.ListDateOverrides(ctx, artistID, date, date)
	}()
	go func() {
		defer wg.Done()
		snap.appointments, errs[2] = repo.ListAppointmentsForDate(ctx, artistID, date)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return daySnapshot{}, err
		}
	}
	return snap, nil
}

// rangeSnapshot covers a date span for the calendar heat map.
type rangeSnapshot struct {
	weekly       []models.WeeklyAvailability
	overrides    []models.DateOverride
	appointments []models.Appointment
}

func fetchRangeSnapshot(
	ctx context.Context,
	repo domain.Repository,
	artistID string,
	fromDate string,
	toDate string,
) (rangeSnapshot, error) {

	snap, err := fetchRangeOnce(ctx, repo, artistID, fromDate, toDate)
	if err != nil && ctx.Err() == nil {
		snap, err = fetchRangeOnce(ctx, repo, artistID, fromDate, toDate)
	}
	if err != nil {
		return rangeSnapshot{}, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}
	return snap, nil
}

func fetchRangeOnce(
	ctx context.Context,
	repo domain.Repository,
	artistID string,
	fromDate string,
	toDate string,
) (rangeSnapshot, error) {

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	var (
		snap rangeSnapshot
		wg   sync.WaitGroup
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.weekly, errs[0] = repo.ListWeeklyAvailability(ctx, artistID)
	}()
	go func() {
		defer wg.Done()
		snap.overrides, errs[1] = repo.ListDateOverrides(ctx, artistID, fromDate, toDate)
	}()
	go func() {
		defer wg.Done()
		snap.appointments, errs[2] = repo.ListAppointmentsInRange(ctx, artistID, fromDate, toDate)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return rangeSnapshot{}, err
		}
	}
	return snap, nil
}
