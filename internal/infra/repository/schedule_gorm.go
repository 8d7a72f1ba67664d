package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Artist / Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetArtist(
	ctx context.Context,
	artistID string,
) (*models.Profile, error) {

	var artist models.Profile
	if err := r.db.WithContext(ctx).First(&artist, "id = ?", artistID).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	artistID string,
	serviceID string,
) (*models.ArtistService, error) {

	var service models.ArtistService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND artist_id = ?", serviceID, artistID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWeeklyAvailability(
	ctx context.Context,
	artistID string,
) ([]models.WeeklyAvailability, error) {

	var rows []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) ListDateOverrides(
	ctx context.Context,
	artistID string,
	fromDate string,
	toDate string,
) ([]models.DateOverride, error) {

	var rows []models.DateOverride
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND date >= ? AND date <= ?", artistID, fromDate, toDate).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	artistID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "artist_id", "date", "start_time", "end_time", "status").
		Where(
			"artist_id = ? AND date = ? AND status <> ?",
			artistID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	artistID string,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"artist_id = ? AND date >= ? AND date <= ?",
			artistID, fromDate, toDate,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// AssertNoTimeConflict is the authoritative double-booking guard: the
// same lexical overlap check the slot filter uses, run with a row lock
// at submission time. The HH:MM format keeps string comparison correct.
func (r *ScheduleGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	artistID string,
	date string,
	startHM string,
	endHM string,
	excludeID string,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"artist_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
			artistID,
			date,
			string(domain.StatusCancelled),
			endHM,
			startHM,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointmentForArtist(
	ctx context.Context,
	appointmentID string,
	artistID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND artist_id = ?", appointmentID, artistID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
