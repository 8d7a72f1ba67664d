package schedule

import (
	"context"
	"time"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// GetDailySlotCounts applies the slot pipeline to every day in a range
// and returns only the counts, for the calendar heat map.
type GetDailySlotCounts struct {
	repo        domain.Repository
	stepMinutes int
}

func NewGetDailySlotCounts(repo domain.Repository, stepMinutes int) *GetDailySlotCounts {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultStepMinutes
	}
	return &GetDailySlotCounts{repo: repo, stepMinutes: stepMinutes}
}

func (uc *GetDailySlotCounts) Execute(
	ctx context.Context,
	artistID string,
	serviceID string,
	startDate time.Time,
	endDate time.Time,
) ([]domain.DailySlotCount, error) {

	if endDate.Before(startDate) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	service, err := uc.repo.GetService(ctx, artistID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	snap, err := fetchRangeSnapshot(
		ctx,
		uc.repo,
		artistID,
		startDate.Format(domain.DateLayout),
		endDate.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	appointmentsByDate := make(map[string][]models.Appointment)
	for _, ap := range snap.appointments {
		appointmentsByDate[ap.Date] = append(appointmentsByDate[ap.Date], ap)
	}

	var counts []domain.DailySlotCount
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(domain.DateLayout)

		open := domain.ResolveOpenIntervals(snap.weekly, snap.overrides, day)
		candidates := domain.EnumerateSlots(open, service.DurationMinutes, uc.stepMinutes)
		free := domain.FilterConflicts(candidates, appointmentsByDate[dateStr])

		counts = append(counts, domain.DailySlotCount{
			Date:      dateStr,
			SlotCount: len(free),
		})
	}
	return counts, nil
}
