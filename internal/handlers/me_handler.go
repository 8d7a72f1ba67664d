package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	var roles []string
	h.db.Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles)

	c.JSON(http.StatusOK, gin.H{
		"user":  profile,
		"roles": roles,
	})
}

type UpdateMeRequest struct {
	DisplayName  *string `json:"display_name"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	Address      *string `json:"address"`
	AvatarURL    *string `json:"avatar_url"`
	InstagramURL *string `json:"instagram_url"`
	FacebookURL  *string `json:"facebook_url"`
}

// UpdateMe edits the caller's own profile card. Email and password
// changes go through dedicated flows, not here.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Perfil no encontrado.")
		return
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.InstagramURL != nil {
		profile.InstagramURL = *req.InstagramURL
	}
	if req.FacebookURL != nil {
		profile.FacebookURL = *req.FacebookURL
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Error al guardar el perfil.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
