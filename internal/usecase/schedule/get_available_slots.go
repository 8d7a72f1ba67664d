package schedule

import (
	"context"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
)

// GetAvailableSlots runs the full pipeline for one artist and date:
// resolve open intervals, enumerate candidates of the service's
// duration, drop conflicts.
type GetAvailableSlots struct {
	repo        domain.Repository
	stepMinutes int
}

func NewGetAvailableSlots(repo domain.Repository, stepMinutes int) *GetAvailableSlots {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultStepMinutes
	}
	return &GetAvailableSlots{repo: repo, stepMinutes: stepMinutes}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	service, err := uc.repo.GetService(ctx, in.ArtistID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	snap, err := fetchDaySnapshot(
		ctx,
		uc.repo,
		in.ArtistID,
		in.Date.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	open := domain.ResolveOpenIntervals(snap.weekly, snap.overrides, in.Date)
	candidates := domain.EnumerateSlots(open, service.DurationMinutes, uc.stepMinutes)

	slots := domain.FilterConflicts(candidates, snap.appointments)
	if slots == nil {
		slots = []domain.Slot{}
	}
	return slots, nil
}
