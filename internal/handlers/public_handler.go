package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/blackline-studio/tattoo-scheduler/internal/domain/schedule"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the landing page and the unauthenticated
// booking flow: browse artists, pick a date, pick a slot, request.
type PublicHandler struct {
	db *gorm.DB

	availableSlots *usecase.GetAvailableSlots
	slotCounts     *usecase.GetDailySlotCounts
	disabledDates  *usecase.GetDisabledDates
	createBooking  *usecase.CreateBooking

	loc *time.Location
}

func NewPublicHandler(
	db *gorm.DB,
	availableSlots *usecase.GetAvailableSlots,
	slotCounts *usecase.GetDailySlotCounts,
	disabledDates *usecase.GetDisabledDates,
	createBooking *usecase.CreateBooking,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availableSlots: availableSlots,
		slotCounts:     slotCounts,
		disabledDates:  disabledDates,
		createBooking:  createBooking,
		loc:            loc,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

type PublicArtistDTO struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	InstagramURL string `json:"instagram_url"`
	FacebookURL  string `json:"facebook_url"`
}

////////////////////////////////////////////////////////
// ARTISTS / SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListArtists(c *gin.Context) {
	var profiles []models.Profile
	if err := h.db.
		Joins("JOIN user_roles ON user_roles.user_id = profiles.id AND user_roles.role = ?", models.RoleArtist).
		Where("profiles.is_active = true").
		Order("profiles.display_name ASC").
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_artists", "Error al listar artistas.")
		return
	}

	out := make([]PublicArtistDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, PublicArtistDTO{
			ID:           p.ID,
			DisplayName:  p.DisplayName,
			Bio:          p.Bio,
			AvatarURL:    p.AvatarURL,
			InstagramURL: p.InstagramURL,
			FacebookURL:  p.FacebookURL,
		})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	artistID := c.Param("artistId")

	var services []models.ArtistService
	if err := h.db.
		Where("artist_id = ? AND is_active = true", artistID).
		Order("duration_minutes ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	artistID := c.Param("artistId")
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")

	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y servicio son obligatorios.")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availableSlots.Execute(c.Request.Context(), domain.AvailabilityInput{
		ArtistID:  artistID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// DailySlotCounts powers the month heat map: free-slot totals per day
// for up to ~3 months in one call.
func (h *PublicHandler) DailySlotCounts(c *gin.Context) {
	artistID := c.Param("artistId")
	serviceID := c.Query("service_id")
	fromStr := c.Query("start")
	toStr := c.Query("end")

	if serviceID == "" || fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_params", "Servicio y rango de fechas son obligatorios.")
		return
	}

	from, err1 := parseDate(h.loc, fromStr)
	to, err2 := parseDate(h.loc, toStr)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	if to.Sub(from) > 92*24*time.Hour {
		httperr.BadRequest(c, "range_too_large", "El rango no puede superar los tres meses.")
		return
	}

	counts, err := h.slotCounts.Execute(c.Request.Context(), artistID, serviceID, from, to)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.List(c, counts)
}

func (h *PublicHandler) DisabledDates(c *gin.Context) {
	artistID := c.Param("artistId")

	dates, err := h.disabledDates.Execute(c.Request.Context(), artistID)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disabled_dates": dates,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	artistID := c.Param("artistId")

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), usecase.CreateBookingInput{
		ArtistID:    artistID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         ap.ID,
		"date":       ap.Date,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

////////////////////////////////////////////////////////
// GALLERY
////////////////////////////////////////////////////////

func (h *PublicHandler) Gallery(c *gin.Context) {
	q := h.db.
		Where("is_approved = true AND is_visible_in_landing = true")

	if artistID := c.Query("artist_id"); artistID != "" {
		q = q.Where("artist_id = ?", artistID)
	}
	if style := c.Query("style"); style != "" {
		q = q.Where("style = ?", style)
	}
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = true")
	}

	var works []models.PortfolioWork
	if err := q.
		Order("order_index ASC, created_at DESC").
		Find(&works).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Error al cargar la galería.")
		return
	}

	httpresp.List(c, works)
}
