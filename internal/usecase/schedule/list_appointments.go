package schedule

import (
	"context"
	"time"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// ListAppointments feeds the artist agenda: one day or one month at a
// time, cancelled rows included so the history stays visible.
type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{repo: repo, loc: loc}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	artistID string,
	date string,
) ([]models.Appointment, error) {

	if _, err := time.ParseInLocation(domain.DateLayout, date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListAppointmentsInRange(ctx, artistID, date, date)
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	artistID string,
	year int,
	month time.Month,
) ([]models.Appointment, error) {

	first := time.Date(year, month, 1, 0, 0, 0, 0, uc.loc)
	last := first.AddDate(0, 1, -1)

	return uc.repo.ListAppointmentsInRange(
		ctx,
		artistID,
		first.Format(domain.DateLayout),
		last.Format(domain.DateLayout),
	)
}
