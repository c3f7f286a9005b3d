package service

import (
	"context"
	"fmt"

	"cleansweep-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	apiKey string
	from   string
}

// NewSendGridEmailService returns an EmailService backed by the SendGrid API.
func NewSendGridEmailService(apiKey, from string) EmailService {
	return &sendgridEmailService{
		apiKey: apiKey,
		from:   from,
	}
}

func (s *sendgridEmailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to CleanSweep! Log your first cleanup to start earning points.\n\nBest regards,\nThe CleanSweep Team", name)
	return s.send(ctx, email, name, "Welcome to CleanSweep", body)
}

func (s *sendgridEmailService) SendLeaderboardDigest(ctx context.Context, email, orgName, body string) error {
	return s.send(ctx, email, orgName, fmt.Sprintf("Weekly leaderboard digest - %s", orgName), body)
}

func (s *sendgridEmailService) send(ctx context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail("CleanSweep", s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)

	logger.ExternalServiceCall("sendgrid", "Send", "to", to)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", to)
	return nil
}
