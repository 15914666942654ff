package email

import (
	"context"
	"errors"

	"github.com/mailgun/mailgun-go/v4"
)

var (
	ErrEmptyEmail     = errors.New("empty email not allowed")
	ErrNoRecipients   = errors.New("email has no recipients")
	ErrMissingOptions = errors.New("mailgun domain and api key are required")
)

type EmailSvcOpts struct {
	Domain string `json:"domain"`
	ApiKey string `json:"apiKey"`
}

// Email is a plain text message.
type Email struct {
	Subject string
	Text    string
	From    string
	To      []string
}

type EmailService struct {
	client *mailgun.MailgunImpl
}

func NewEmailService(ops *EmailSvcOpts) (*EmailService, error) {
	if ops == nil || ops.Domain == "" || ops.ApiKey == "" {
		return nil, ErrMissingOptions
	}
	return &EmailService{
		client: mailgun.NewMailgun(ops.Domain, ops.ApiKey),
	}, nil
}

func NewEmail(text, subject, from string, to []string) *Email {
	return &Email{
		Text:    text,
		Subject: subject,
		From:    from,
		To:      to,
	}
}

// Validate reports whether the email can be handed to the transport.
func (e *Email) Validate() error {
	if e == nil || e.Text == "" {
		return ErrEmptyEmail
	}
	if len(e.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}

func (s *EmailService) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	m := s.client.NewMessage(email.From, email.Subject, email.Text, email.To...)

	_, _, err := s.client.Send(ctx, m)
	return err
}
