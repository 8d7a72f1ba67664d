package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blackline-studio/tattoo-scheduler/internal/dto"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

// AppointmentHandler is the artist agenda: bookings created from the
// back office plus the full lifecycle of requests coming from the
// public form.
type AppointmentHandler struct {
	createBooking *usecase.CreateBooking
	confirm       *usecase.ConfirmAppointment
	cancel        *usecase.CancelAppointment
	reschedule    *usecase.RescheduleAppointment
	list          *usecase.ListAppointments
}

func NewAppointmentHandler(
	createBooking *usecase.CreateBooking,
	confirm *usecase.ConfirmAppointment,
	cancel *usecase.CancelAppointment,
	reschedule *usecase.RescheduleAppointment,
	list *usecase.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createBooking: createBooking,
		confirm:       confirm,
		cancel:        cancel,
		reschedule:    reschedule,
		list:          list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	var req CreateAppointmentRequest
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
		RequestedBy: artistID,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	apps, err := h.list.ByDate(c.Request.Context(), artistID, dateStr)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.List(c, dto.ToAppointmentList(apps))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Año y mes son obligatorios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	apps, err := h.list.ByMonth(c.Request.Context(), artistID, year, time.Month(month))
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.ToAppointmentList(apps),
	})
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	ap, err := h.confirm.Execute(c.Request.Context(), id, artistID)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), id, artistID)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	artistID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, artistID, req.Date, req.Time)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
