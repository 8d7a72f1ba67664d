package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/imaging"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	"github.com/blackline-studio/tattoo-scheduler/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB before re-encoding

// PortfolioHandler manages the artist's gallery pieces. Images are
// re-encoded to WebP and stored in the bucket; the row keeps only the
// public URL.
type PortfolioHandler struct {
	db    *gorm.DB
	store *storage.ImageStore
	audit *audit.Dispatcher
}

func NewPortfolioHandler(db *gorm.DB, store *storage.ImageStore, dispatcher *audit.Dispatcher) *PortfolioHandler {
	return &PortfolioHandler{db: db, store: store, audit: dispatcher}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var works []models.PortfolioWork
	if err := h.db.
		Where("artist_id = ?", artistID).
		Order("order_index ASC, created_at DESC").
		Find(&works).Error; err != nil {
		httperr.Internal(c, "failed_to_list_works", "Error al listar trabajos.")
		return
	}

	httpresp.List(c, works)
}

func (h *PortfolioHandler) Upload(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	if h.store == nil {
		httperr.Internal(c, "storage_not_configured", "El almacenamiento de imágenes no está configurado.")
		return
	}

	title := c.PostForm("title")
	style := c.PostForm("style")
	if style == "" {
		httperr.BadRequest(c, "missing_style", "El estilo es obligatorio.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "La imagen es obligatoria.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen supera el tamaño máximo.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || len(raw) > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen supera el tamaño máximo.")
		return
	}

	encoded, err := imaging.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Formato de imagen no soportado.")
		return
	}

	key := fmt.Sprintf("portfolio/%s/%d-%s.webp", artistID, time.Now().Unix(), uuid.NewString()[:8])

	url, err := h.store.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Error al guardar la imagen.")
		return
	}

	work := models.PortfolioWork{
		ArtistID:    artistID,
		Title:       title,
		Description: c.PostForm("description"),
		ImageURL:    url,
		Style:       style,
		Size:        c.DefaultPostForm("size", "medium"),
	}

	if err := h.db.Create(&work).Error; err != nil {
		// best effort: don't leave an orphan object behind
		_ = h.store.Delete(c.Request.Context(), key)
		httperr.Internal(c, "failed_to_create_work", "Error al crear el trabajo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "portfolio_work_uploaded",
		Entity:   "portfolio_work",
		EntityID: &work.ID,
	})

	httpresp.Created(c, work)
}

type UpdateWorkRequest struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Style              *string `json:"style"`
	Size               *string `json:"size"`
	IsFeatured         *bool   `json:"is_featured"`
	IsVisibleInLanding *bool   `json:"is_visible_in_landing"`
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var work models.PortfolioWork
	if err := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&work).Error; err != nil {
		httperr.NotFound(c, "work_not_found", "Trabajo no encontrado.")
		return
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.Description != nil {
		work.Description = *req.Description
	}
	if req.Style != nil && *req.Style != "" {
		work.Style = *req.Style
	}
	if req.Size != nil && *req.Size != "" {
		work.Size = *req.Size
	}
	if req.IsFeatured != nil {
		work.IsFeatured = *req.IsFeatured
	}
	if req.IsVisibleInLanding != nil {
		work.IsVisibleInLanding = *req.IsVisibleInLanding
	}

	if err := h.db.Save(&work).Error; err != nil {
		httperr.Internal(c, "failed_to_update_work", "Error al guardar el trabajo.")
		return
	}

	httpresp.OK(c, work)
}

type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// Reorder rewrites order_index following the submitted id sequence.
func (h *PortfolioHandler) Reorder(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range req.IDs {
			res := tx.Model(&models.PortfolioWork{}).
				Where("id = ? AND artist_id = ?", id, artistID).
				Update("order_index", i)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_reorder", "Error al reordenar.")
		return
	}

	httpresp.OK(c, gin.H{"reordered": len(req.IDs)})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var work models.PortfolioWork
	if err := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&work).Error; err != nil {
		httperr.NotFound(c, "work_not_found", "Trabajo no encontrado.")
		return
	}

	if err := h.db.Delete(&work).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_work", "Error al eliminar el trabajo.")
		return
	}

	if h.store != nil {
		if key := h.store.KeyFromURL(work.ImageURL); key != "" {
			_ = h.store.Delete(c.Request.Context(), key)
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &artistID,
		Action:   "portfolio_work_deleted",
		Entity:   "portfolio_work",
		EntityID: &work.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}

// Approve is the admin moderation switch for landing visibility.
func (h *PortfolioHandler) Approve(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req struct {
		IsApproved bool `json:"is_approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var work models.PortfolioWork
	if err := h.db.First(&work, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "work_not_found", "Trabajo no encontrado.")
		return
	}

	work.IsApproved = req.IsApproved
	if err := h.db.Save(&work).Error; err != nil {
		httperr.Internal(c, "failed_to_update_work", "Error al guardar el trabajo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "portfolio_work_moderated",
		Entity:   "portfolio_work",
		EntityID: &work.ID,
		Metadata: map[string]any{"is_approved": work.IsApproved},
	})

	httpresp.OK(c, work)
}
