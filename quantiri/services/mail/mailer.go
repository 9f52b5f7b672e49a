// quantiri/services/mail/mailer.go
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"quantiri/quantiri/config"
	"quantiri/quantiri/utils/logging"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is fire-and-forget from the caller's perspective: a delivery
// failure is logged, not escalated into the verification flow.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, msg.To, msg.Subject, msg.HTML,
	)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, auth, m.from, []string{msg.To}, []byte(body))
}

// LogMailer stands in when no SMTP host is configured (local dev); it
// writes the mail to the app log instead of delivering it.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	logging.AppLogger.Info("mail (not delivered, no SMTP host configured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
