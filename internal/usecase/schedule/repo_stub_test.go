package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

var errStubDown = errors.New("stub repository down")

// stubRepo is an in-memory domain.Repository. failures makes the next
// N reads fail, to exercise the retry and fail-closed paths.
type stubRepo struct {
	mu sync.Mutex

	artist       models.Profile
	services     map[string]models.ArtistService
	weekly       []models.WeeklyAvailability
	overrides    []models.DateOverride
	appointments []models.Appointment

	failures int
}

func newStubRepo() *stubRepo {
	artistID := uuid.NewString()
	serviceID := uuid.NewString()
	return &stubRepo{
		artist: models.Profile{ID: artistID, DisplayName: "Nadia", IsActive: true},
		services: map[string]models.ArtistService{
			serviceID: {
				ID:              serviceID,
				ArtistID:        artistID,
				Name:            "Linework session",
				DurationMinutes: 60,
				IsActive:        true,
			},
		},
	}
}

func (r *stubRepo) serviceID() string {
	for id := range r.services {
		return id
	}
	return ""
}

func (r *stubRepo) readErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return errStubDown
	}
	return nil
}

func (r *stubRepo) GetArtist(ctx context.Context, artistID string) (*models.Profile, error) {
	if artistID != r.artist.ID {
		return nil, errors.New("not found")
	}
	a := r.artist
	return &a, nil
}

func (r *stubRepo) GetService(ctx context.Context, artistID, serviceID string) (*models.ArtistService, error) {
	svc, ok := r.services[serviceID]
	if !ok || svc.ArtistID != artistID {
		return nil, errors.New("not found")
	}
	return &svc, nil
}

func (r *stubRepo) ListWeeklyAvailability(ctx context.Context, artistID string) ([]models.WeeklyAvailability, error) {
	if err := r.readErr(); err != nil {
		return nil, err
	}
	return append([]models.WeeklyAvailability(nil), r.weekly...), nil
}

func (r *stubRepo) ListDateOverrides(ctx context.Context, artistID, fromDate, toDate string) ([]models.DateOverride, error) {
	if err := r.readErr(); err != nil {
		return nil, err
	}
	var out []models.DateOverride
	for _, ov := range r.overrides {
		if ov.Date >= fromDate && ov.Date <= toDate {
			out = append(out, ov)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsForDate(ctx context.Context, artistID, date string) ([]models.Appointment, error) {
	if err := r.readErr(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsInRange(ctx context.Context, artistID, fromDate, toDate string) ([]models.Appointment, error) {
	if err := r.readErr(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= fromDate && ap.Date <= toDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *stubRepo) AssertNoTimeConflict(ctx context.Context, artistID, date, startHM, endHM, excludeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.ID == excludeID || ap.Date != date || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartTime < endHM && ap.EndTime > startHM {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *stubRepo) GetAppointmentForArtist(ctx context.Context, appointmentID, artistID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].ArtistID == artistID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errors.New("not found")
}

var _ domain.Repository = (*stubRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

// nextWeekday returns the first date at least a week out that falls on
// the given weekday, far enough ahead to clear any min-advance rule.
func nextWeekday(wd time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
