package mail

import (
	"context"

	"Atrium/config"

	"gopkg.in/gomail.v2"
)

// Notifier delivers a message to the site owner. Callers treat it as
// best-effort: a failure is logged, never propagated to the visitor.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

type SMTPNotifier struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

func NewNotifier(conf *config.Config) Notifier {
	return &SMTPNotifier{
		dialer:    gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.Username, conf.Mail.Password),
		sender:    conf.Mail.Sender,
		recipient: conf.Mail.Recipient,
	}
}

func (n *SMTPNotifier) Notify(_ context.Context, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.sender)
	m.SetHeader("To", n.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return n.dialer.DialAndSend(m)
}
