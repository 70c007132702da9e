package email

import (
	"gopkg.in/gomail.v2"
)

// Sender is the mail transport boundary. One call, one message.
type Sender interface {
	Send(from, to, subject, htmlBody string) error
}

// SMTPSender delivers messages over SMTP via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

func (s *SMTPSender) Send(from, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

var _ Sender = (*SMTPSender)(nil)
