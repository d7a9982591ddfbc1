package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/calebms7/shepherd-backend/internal/workflow"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Send delivers an email-channel message over SMTP. The returned id is
// synthetic; plain SMTP has no delivery receipt.
func (s *EmailSender) Send(ctx context.Context, msg workflow.Message) (string, error) {
	if msg.Channel != workflow.ChannelEmail {
		return "", fmt.Errorf("email sender cannot deliver %q messages", msg.Channel)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	return "smtp:" + msg.To, nil
}
