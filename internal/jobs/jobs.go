package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

// Reminder is the slice of the mailer the reminder job needs.
type Reminder interface {
	BookingReminder(ap *models.Appointment)
}

// Runner owns the scheduled jobs: the nightly disabled-dates refresh
// (the 90-day horizon is a rolling window, so yesterday's cache entry
// is one day short by morning) and the day-before appointment
// reminders.
type Runner struct {
	cron          *cron.Cron
	db            *gorm.DB
	disabledDates *usecase.GetDisabledDates
	reminder      Reminder
	loc           *time.Location
	log           *zap.Logger
}

func NewRunner(
	db *gorm.DB,
	disabledDates *usecase.GetDisabledDates,
	reminder Reminder,
	loc *time.Location,
	log *zap.Logger,
) *Runner {
	return &Runner{
		cron:          cron.New(cron.WithLocation(loc)),
		db:            db,
		disabledDates: disabledDates,
		reminder:      reminder,
		loc:           loc,
		log:           log,
	}
}

func (r *Runner) Start() {
	r.cron.AddFunc("0 3 * * *", r.refreshDisabledDates)

	if r.reminder != nil {
		r.cron.AddFunc("0 9 * * *", r.sendReminders)
	}

	r.cron.Start()
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) refreshDisabledDates() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var artistIDs []string
	if err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("role = ?", models.RoleArtist).
		Pluck("user_id", &artistIDs).Error; err != nil {
		r.log.Error("listing artists for cache refresh failed", zap.Error(err))
		return
	}

	refreshed := 0
	for _, id := range artistIDs {
		if err := r.disabledDates.Refresh(ctx, id); err != nil {
			r.log.Warn("disabled-dates refresh failed",
				zap.String("artist_id", id),
				zap.Error(err),
			)
			continue
		}
		refreshed++
	}

	r.log.Info("disabled-dates cache refreshed",
		zap.Int("artists", refreshed),
		zap.Int("total", len(artistIDs)),
	)
}

func (r *Runner) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tomorrow := time.Now().In(r.loc).AddDate(0, 0, 1).Format(domain.DateLayout)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", tomorrow, string(domain.StatusConfirmed)).
		Find(&apps).Error; err != nil {
		r.log.Error("listing appointments for reminders failed", zap.Error(err))
		return
	}

	for i := range apps {
		r.reminder.BookingReminder(&apps[i])
	}

	r.log.Info("reminders queued",
		zap.String("date", tomorrow),
		zap.Int("count", len(apps)),
	)
}
