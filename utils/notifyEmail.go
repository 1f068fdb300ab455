package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends operational notifications to the configured clinic address.
// It is optional: a nil *Mailer disables every notification.
type Mailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewMailer(host string, port int, user, pass, to string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, to: to}
}

// NotifyCitaCreada emails the clinic address about a newly scheduled cita.
func (m *Mailer) NotifyCitaCreada(paciente, doctor, fecha, hora string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", "Nueva cita programada")

	body := fmt.Sprintf("Se programó una cita para %s con %s el %s a las %s.", paciente, doctor, fecha, hora)
	msg.SetBody("text/plain", body)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<body>
		<h1>Nueva cita programada</h1>
		<p>Paciente: <strong>` + paciente + `</strong></p>
		<p>Doctor: <strong>` + doctor + `</strong></p>
		<p>Fecha: ` + fecha + ` a las ` + hora + `</p>
	</body>
	</html>
	`
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
