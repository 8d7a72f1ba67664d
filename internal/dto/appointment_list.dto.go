package dto

import "github.com/blackline-studio/tattoo-scheduler/internal/models"

// AppointmentListDTO is the agenda row: enough to paint the calendar
// without exposing the full client record.
type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Notes       string `json:"notes"`
}

func ToAppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			ServiceName: ap.Service.Name,
			Notes:       ap.Notes,
		})
	}
	return out
}
