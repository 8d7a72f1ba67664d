package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

// mapScheduleError translates use-case errors into HTTP responses. A
// time conflict is a 409 so the frontend can offer a retry with fresh
// slots; an unknown availability snapshot is a 503 because answering
// "fully booked" from partial data would silently hide real openings.
func mapScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAvailabilityUnknown):
		httperr.Unavailable(c, "availability_unknown", "No se pudo comprobar la disponibilidad. Inténtalo de nuevo.")

	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Ese horario acaba de ocuparse.")

	case httperr.IsBusiness(err, "artist_not_found"):
		httperr.BadRequest(c, "artist_not_found", "Artista no encontrado.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")

	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")

	case httperr.IsBusiness(err, "invalid_date_range"):
		httperr.BadRequest(c, "invalid_date_range", "Rango de fechas inválido.")

	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "La cita debe reservarse con más antelación.")

	case httperr.IsBusiness(err, "outside_open_hours"):
		httperr.BadRequest(c, "outside_open_hours", "Fuera del horario de atención.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La cita no admite ese cambio de estado.")

	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "not_found", "Recurso no encontrado.")

	default:
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}
