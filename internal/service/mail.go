package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/japb1998/atelier/internal/model"
	"github.com/japb1998/atelier/pkg/email"
)

var (
	ErrMissingEmail   = errors.New("client has no email address")
	ErrDeliveryFailed = errors.New("invoice email could not be delivered")
)

const sendTimeout = 30 * time.Second

type InvoiceFinder interface {
	GetInvoice(ctx context.Context, clientId, invoiceId int) (model.ClientItem, model.InvoiceItem, error)
}

type Sender interface {
	Send(ctx context.Context, e *email.Email) error
}

// InvoiceMailer sends a plain text summary of one invoice to its client. A
// failed delivery is reported and never retried.
type InvoiceMailer struct {
	store  InvoiceFinder
	sender Sender
	from   string
	logger *slog.Logger
}

func NewInvoiceMailer(store InvoiceFinder, sender Sender, from string) *InvoiceMailer {
	return &InvoiceMailer{
		store:  store,
		sender: sender,
		from:   from,
		logger: mailLogger,
	}
}

func (m *InvoiceMailer) SendInvoice(ctx context.Context, clientId, invoiceId int) error {
	client, invoice, err := m.store.GetInvoice(ctx, clientId, invoiceId)

	if err != nil {
		return storeErr(err)
	}

	if strings.TrimSpace(client.Email) == "" {
		return ErrMissingEmail
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	subject := fmt.Sprintf("Facture n°%s", invoice.Number)
	message := email.NewEmail(InvoiceSummary(client, invoice), subject, m.from, []string{client.Email})

	if err := m.sender.Send(ctx, message); err != nil {
		m.logger.Error("failed to send invoice", slog.Int("clientId", clientId), slog.Int("invoiceId", invoiceId), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	m.logger.Info("Invoice sent", slog.Int("clientId", clientId), slog.Int("invoiceId", invoiceId), slog.String("to", client.Email))
	return nil
}

// InvoiceSummary is the text body of an invoice email.
func InvoiceSummary(client model.ClientItem, invoice model.InvoiceItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bonjour %s,\n\n", client.Name)
	fmt.Fprintf(&b, "Facture n°%s du %s\n\n", invoice.Number, invoice.Date)

	for _, l := range invoice.Lines {
		fmt.Fprintf(&b, "- %s : %s x %s € = %s €\n", l.Designation, formatNumber(l.Quantity), formatNumber(l.UnitPrice), formatNumber(l.Total))
	}
	if len(invoice.Lines) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total : %s €\n\n", formatNumber(invoice.Amount))
	b.WriteString("Merci de votre confiance,\nAtelier Réparation\n")

	return b.String()
}

// formatNumber prints 2 as "2" and 12.5 as "12.50".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}
