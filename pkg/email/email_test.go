package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/japb1998/atelier/pkg/email"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		e    *email.Email
		err  error
	}{
		{"nil", nil, email.ErrEmptyEmail},
		{"no body", email.NewEmail("", "subject", "from@atelier.fr", []string{"a@b.fr"}), email.ErrEmptyEmail},
		{"no recipients", email.NewEmail("hello", "subject", "from@atelier.fr", nil), email.ErrNoRecipients},
		{"text", email.NewEmail("hello", "subject", "from@atelier.fr", []string{"a@b.fr"}), nil},
	}

	for _, c := range cases {
		if err := c.e.Validate(); !errors.Is(err, c.err) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.err)
		}
	}
}

func TestNewEmailServiceRequiresOptions(t *testing.T) {
	if _, err := email.NewEmailService(&email.EmailSvcOpts{Domain: "mg.atelier.fr"}); !errors.Is(err, email.ErrMissingOptions) {
		t.Fatalf("expected ErrMissingOptions, got %v", err)
	}
	if _, err := email.NewEmailService(&email.EmailSvcOpts{Domain: "mg.atelier.fr", ApiKey: "key"}); err != nil {
		t.Fatal(err)
	}
}

func TestSendRejectsInvalidEmailBeforeTransport(t *testing.T) {
	svc, err := email.NewEmailService(&email.EmailSvcOpts{Domain: "mg.atelier.fr", ApiKey: "key"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Send(context.Background(), email.NewEmail("", "subject", "from@atelier.fr", []string{"a@b.fr"})); !errors.Is(err, email.ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
}
