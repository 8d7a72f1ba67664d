package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/validators"
)

// AvailabilityHandler manages the artist's recurring weekly hours.
type AvailabilityHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache usecase.DisabledDatesCache
}

func NewAvailabilityHandler(db *gorm.DB, dispatcher *audit.Dispatcher, cache usecase.DisabledDatesCache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, audit: dispatcher, cache: cache}
}

type WeeklyRowRequest struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ReplaceWeeklyRequest struct {
	Rows []WeeklyRowRequest `json:"rows"`
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var rows []models.WeeklyAvailability
	if err := h.db.
		Where("artist_id = ?", artistID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Error al listar disponibilidad.")
		return
	}

	httpresp.List(c, rows)
}

// Replace swaps the whole weekly schedule in one transaction. The
// editor always submits the full set, so delete + recreate keeps the
// rows and the UI trivially in sync.
func (h *AvailabilityHandler) Replace(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var req ReplaceWeeklyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	for _, row := range req.Rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Día de la semana inválido.")
			return
		}
		if !validators.IsClockTime(row.StartTime) || !validators.IsClockTime(row.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
			return
		}
		start, _ := domain.ParseClock(row.StartTime)
		end, _ := domain.ParseClock(row.EndTime)
		if start >= end {
			httperr.BadRequest(c, "invalid_range", "El inicio debe ser anterior al fin.")
			return
		}
	}

	rows := make([]models.WeeklyAvailability, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, models.WeeklyAvailability{
			ArtistID:  artistID,
			Weekday:   row.Weekday,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("artist_id = ?", artistID).
			Delete(&models.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Error al guardar la disponibilidad.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateArtist(c.Request.Context(), artistID)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "availability_replaced",
		Entity:   "weekly_availability",
		Metadata: map[string]any{"rows": len(rows)},
	})

	httpresp.List(c, rows)
}
