package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type smtpEmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPEmailService returns an EmailService backed by plain SMTP.
func NewSMTPEmailService(host string, port int, username, password, from string) EmailService {
	return &smtpEmailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *smtpEmailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to CleanSweep! Log your first cleanup to start earning points.\n\nBest regards,\nThe CleanSweep Team", name)
	return s.send(email, "Welcome to CleanSweep", body)
}

func (s *smtpEmailService) SendLeaderboardDigest(ctx context.Context, email, orgName, body string) error {
	return s.send(email, fmt.Sprintf("Weekly leaderboard digest - %s", orgName), body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}
