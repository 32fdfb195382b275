package notify

import (
	"heritage_gold/internal/config"
	"heritage_gold/internal/logging"

	"gopkg.in/gomail.v2"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Email sends HTML mail over SMTP. Without an SMTP host it is disabled.
type Email struct {
	dialer mailDialer
	from   string
}

func NewEmail(cfg config.NotifyConfig) *Email {
	e := &Email{from: cfg.SenderEmail}
	if cfg.SMTPHost != "" {
		e.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return e
}

func (e *Email) Enabled() bool {
	return e.dialer != nil
}

func (e *Email) SendHTML(to, subject, html string) error {
	if !e.Enabled() {
		logging.Debug("[notify][email] disabled, message dropped")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	return e.dialer.DialAndSend(m)
}
