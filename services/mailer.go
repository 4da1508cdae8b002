package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"travel-backend/config"
	"travel-backend/models"
)

// Mailer relays contact submissions to the operator inbox. When SMTP
// credentials are not configured it logs the would-be message instead of
// sending, and never reports an error — notification is best-effort.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
	To       string
}

func NewMailer(cfg *config.Config) *Mailer {
	to := cfg.NotifyEmail
	if to == "" {
		to = cfg.ContactEmail
	}
	return &Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
		To:       to,
	}
}

func (m *Mailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != ""
}

// SendContactNotification emails one inbound inquiry. The contact row is
// already persisted by the time this runs; a failure here is the caller's
// to log, never to surface.
func (m *Mailer) SendContactNotification(msg *models.ContactMessage) error {
	if !m.configured() {
		log.Printf("[MOCK EMAIL] contact from:%s <%s> message:%s", msg.Name, msg.Email, msg.Message)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	name := safe(msg.Name)
	email := safe(msg.Email)
	phone := ""
	if msg.Phone != nil {
		phone = safe(*msg.Phone)
	}

	from := fmt.Sprintf("%s <%s>", m.FromName, m.Username)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	subject := fmt.Sprintf("Nueva consulta de %s", name)
	boundary := "----=_CONTACT_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Nombre: %s\nEmail: %s\nTeléfono: %s\n\nMensaje:\n%s\n",
		name, email, phone, msg.Message,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Nueva consulta desde la web</h2>
  <p><strong>Nombre:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Teléfono:</strong> %s</p>
  <p><strong>Mensaje:</strong></p>
  <p>%s</p>
</body>
</html>`,
		name, email, phone, msg.Message,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", m.To))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.Username, []string{m.To}, []byte(sb.String())); err != nil {
		return err
	}

	log.Printf("Contact notification sent to %s", m.To)
	return nil
}
