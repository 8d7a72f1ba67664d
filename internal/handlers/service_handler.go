package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// ServiceHandler manages the artist's own service catalogue (tattoo
// session types with their duration, which drives slot length).
type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

type ServiceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=15,max=480"`
	Price           *float64 `json:"price"`
	IsActive        *bool    `json:"is_active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var services []models.ArtistService
	if err := h.db.
		Where("artist_id = ?", artistID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	service := models.ArtistService{
		ArtistID:        artistID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servicio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "service_created",
		Entity:   "artist_service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var service models.ArtistService
	if err := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMinutes = req.DurationMinutes
	service.Price = req.Price
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al guardar el servicio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "service_updated",
		Entity:   "artist_service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, service)
}

// Delete deactivates instead of removing: existing appointments keep
// their service reference.
func (h *ServiceHandler) Delete(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var service models.ArtistService
	if err := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	service.IsActive = false
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servicio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "service_deactivated",
		Entity:   "artist_service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
