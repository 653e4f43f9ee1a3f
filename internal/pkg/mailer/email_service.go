package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	host        string
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		host:        host,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendWelcome(toEmail string) error {
	// SMTP is optional in development; without a host the mail is skipped.
	if s.host == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to SmartNotes")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to SmartNotes!</h2>
			<p>Your account %s is ready. Log in and create your first note.</p>
			<p>If you didn't register, please ignore this email.</p>
		</div>
	`, toEmail)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
