package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendAdmissionNotice(ctx context.Context, email, name, membershipNo string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour membership has been approved and your payment confirmed.\nYour membership number is %s.\n\nWelcome aboard!",
		name, membershipNo,
	)
	return s.send(email, name, "Membership confirmed", body)
}

func (s *emailService) SendDailyDigest(ctx context.Context, to string, summary *domain.Summary) error {
	body := fmt.Sprintf(
		"Daily totals:\n\nDonations (verified): %d\nMembership fees: %d\nExpenses: %d\nRemaining balance: %d\nMembers: %d\n",
		summary.Donations, summary.Membership, summary.Expenses, summary.Remaining, summary.MembersCount,
	)
	return s.send(to, "", "Daily bookkeeping digest", body)
}
