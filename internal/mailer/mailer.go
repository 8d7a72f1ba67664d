package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// Mailer delivers the booking lifecycle emails. Sending happens on a
// goroutine per message; a failed delivery is logged and never
// propagated to the request that triggered it.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	studioName string
	log        *zap.Logger
}

func New(host string, port int, user, password, from, studioName string, log *zap.Logger) *Mailer {
	return &Mailer{
		dialer:     gomail.NewDialer(host, port, user, password),
		from:       from,
		studioName: studioName,
		log:        log,
	}
}

func (m *Mailer) send(to, subject, body string) {
	if to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.log.Error("mail delivery failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}()
}

func (m *Mailer) BookingRequested(ap *models.Appointment, service *models.ArtistService) {
	m.send(
		ap.ClientEmail,
		fmt.Sprintf("Hemos recibido tu solicitud de cita — %s", m.studioName),
		fmt.Sprintf(
			"Hola %s,\n\nHemos recibido tu solicitud de cita para %s el %s de %s a %s.\n\n"+
				"El estudio la revisará y te confirmaremos en breve.\n\n%s",
			ap.ClientName, service.Name, ap.Date, ap.StartTime, ap.EndTime, m.studioName,
		),
	)
}

func (m *Mailer) BookingConfirmed(ap *models.Appointment) {
	m.send(
		ap.ClientEmail,
		fmt.Sprintf("Tu cita está confirmada — %s", m.studioName),
		fmt.Sprintf(
			"Hola %s,\n\nTu cita del %s de %s a %s ha sido confirmada.\n\n"+
				"Te esperamos.\n\n%s",
			ap.ClientName, ap.Date, ap.StartTime, ap.EndTime, m.studioName,
		),
	)
}

func (m *Mailer) BookingCancelled(ap *models.Appointment) {
	m.send(
		ap.ClientEmail,
		fmt.Sprintf("Tu cita ha sido cancelada — %s", m.studioName),
		fmt.Sprintf(
			"Hola %s,\n\nTu cita del %s de %s a %s ha sido cancelada.\n\n"+
				"Si quieres proponer otra fecha, puedes reservar de nuevo desde la web.\n\n%s",
			ap.ClientName, ap.Date, ap.StartTime, ap.EndTime, m.studioName,
		),
	)
}

// BookingReminder is sent by the nightly job the day before a
// confirmed appointment.
func (m *Mailer) BookingReminder(ap *models.Appointment) {
	m.send(
		ap.ClientEmail,
		fmt.Sprintf("Recordatorio de tu cita de mañana — %s", m.studioName),
		fmt.Sprintf(
			"Hola %s,\n\nTe recordamos tu cita de mañana %s de %s a %s.\n\n"+
				"Si no puedes asistir, avísanos lo antes posible.\n\n%s",
			ap.ClientName, ap.Date, ap.StartTime, ap.EndTime, m.studioName,
		),
	)
}
