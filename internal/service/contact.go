package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService forwards contact form submissions by email. When no API
// key is configured it logs the submission instead of failing, the same
// degrade policy the AI endpoints follow.
type ContactService struct {
	client *resend.Client
	from   string
	to     string
	logger *logrus.Logger
}

func NewContactService(apiKey string, from string, to string, logger *logrus.Logger) *ContactService {
	s := &ContactService{from: from, to: to, logger: logger}
	if strings.TrimSpace(apiKey) != "" && strings.TrimSpace(from) != "" && strings.TrimSpace(to) != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return ErrInvalidInput
	}

	if s.client == nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"name":  input.Name,
				"email": input.Email,
			}).Info("contact submission received, email sending not configured")
		}
		return nil
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "New contact form submission"
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Message)
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: input.Email,
		Subject: subject,
		Text:    body,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		return err
	}
	return nil
}
