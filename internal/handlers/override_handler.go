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

// OverrideHandler manages per-date exceptions: vacations, partial
// blocks and exceptional openings.
type OverrideHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache usecase.DisabledDatesCache
}

func NewOverrideHandler(db *gorm.DB, dispatcher *audit.Dispatcher, cache usecase.DisabledDatesCache) *OverrideHandler {
	return &OverrideHandler{db: db, audit: dispatcher, cache: cache}
}

type OverrideRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsBlocked bool    `json:"is_blocked"`
	Reason    string  `json:"reason"`
}

func (h *OverrideHandler) List(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	q := h.db.Where("artist_id = ?", artistID)

	if from := c.Query("from"); from != "" {
		if !validators.IsDate(from) {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if !validators.IsDate(to) {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		q = q.Where("date <= ?", to)
	}

	var rows []models.DateOverride
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_overrides", "Error al listar excepciones.")
		return
	}

	httpresp.List(c, rows)
}

func (h *OverrideHandler) Create(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	hasStart := req.StartTime != nil && *req.StartTime != ""
	hasEnd := req.EndTime != nil && *req.EndTime != ""

	// An opening without both times has no meaning; reject it here so
	// the resolver never sees one.
	if !req.IsBlocked && (!hasStart || !hasEnd) {
		httperr.BadRequest(c, "invalid_override", "Una apertura excepcional necesita hora de inicio y fin.")
		return
	}
	if hasStart != hasEnd {
		httperr.BadRequest(c, "invalid_override", "Indica ambas horas o ninguna.")
		return
	}

	if hasStart {
		if !validators.IsClockTime(*req.StartTime) || !validators.IsClockTime(*req.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
			return
		}
		start, _ := domain.ParseClock(*req.StartTime)
		end, _ := domain.ParseClock(*req.EndTime)
		if start >= end {
			httperr.BadRequest(c, "invalid_range", "El inicio debe ser anterior al fin.")
			return
		}
	}

	override := models.DateOverride{
		ArtistID:  artistID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsBlocked: req.IsBlocked,
		Reason:    req.Reason,
	}
	if !hasStart {
		override.StartTime = nil
		override.EndTime = nil
	}

	if err := h.db.Create(&override).Error; err != nil {
		httperr.Internal(c, "failed_to_create_override", "Error al crear la excepción.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateArtist(c.Request.Context(), artistID)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "override_created",
		Entity:   "date_override",
		EntityID: &override.ID,
		Metadata: map[string]any{"date": override.Date, "is_blocked": override.IsBlocked},
	})

	httpresp.Created(c, override)
}

func (h *OverrideHandler) Delete(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var override models.DateOverride
	if err := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&override).Error; err != nil {
		httperr.NotFound(c, "override_not_found", "Excepción no encontrada.")
		return
	}

	if err := h.db.Delete(&override).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_override", "Error al eliminar la excepción.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateArtist(c.Request.Context(), artistID)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "override_deleted",
		Entity:   "date_override",
		EntityID: &override.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
