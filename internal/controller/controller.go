package controller

import (
	"context"
	"fmt"

	"github.com/japb1998/atelier/internal/config"
	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/service"
	"github.com/japb1998/atelier/pkg/awssess"
	"github.com/japb1998/atelier/pkg/credentials"
	"github.com/japb1998/atelier/pkg/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer        trace.Tracer
	clientService *service.ClientService
	invoiceMailer *service.InvoiceMailer
)

// Setup installs the services used by the handlers. mailer may be nil when
// email delivery is not configured.
func Setup(cs *service.ClientService, mailer *service.InvoiceMailer) {
	clientService = cs
	invoiceMailer = mailer
	tracer = otel.Tracer("github.com/japb1998/atelier/internal/controller")
}

// Init builds the store, the client service and, when configured, the invoice
// mailer from cfg.
func Init(ctx context.Context, cfg config.Config) error {
	clientStore := database.NewClientRepoFromConfig(cfg)

	var mailer *service.InvoiceMailer
	if cfg.MailConfigured() {
		ops, err := mailOptions(ctx, cfg)
		if err != nil {
			return err
		}
		sender, err := email.NewEmailService(ops)
		if err != nil {
			return fmt.Errorf("failed to setup email service: %w", err)
		}
		mailer = service.NewInvoiceMailer(clientStore, sender, cfg.MailFrom)
	} else {
		mailLogger.Warn("mailgun not configured, invoice emails are disabled")
	}

	Setup(service.NewClientSvc(clientStore), mailer)
	clientLogger.Info("Controllers Initialized")
	return nil
}

// mailOptions prefers the secret stored in secrets manager over plain env vars.
func mailOptions(ctx context.Context, cfg config.Config) (*email.EmailSvcOpts, error) {
	if cfg.MailgunSecretId == "" {
		return &email.EmailSvcOpts{Domain: cfg.MailgunDomain, ApiKey: cfg.MailgunApiKey}, nil
	}

	var ops email.EmailSvcOpts
	cm := credentials.NewCredentialsManager(awssess.MustGetSession())
	if err := cm.GetJSON(ctx, cfg.MailgunSecretId, &ops); err != nil {
		return nil, fmt.Errorf("failed to get mailgun credentials: %w", err)
	}
	return &ops, nil
}
