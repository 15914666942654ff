package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/model"
	"github.com/japb1998/atelier/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*email.Email
	err  error
}

func (r *recordingSender) Send(ctx context.Context, e *email.Email) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected a deadline on the send context")
	}
	r.sent = append(r.sent, e)
	return nil
}

func newMailerRepo(t *testing.T) *database.ClientRepository {
	t.Helper()
	repo := database.NewClientRepo(
		database.NewFileDocument(filepath.Join(t.TempDir(), "clients.json")),
		database.WithClock(func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) }),
	)
	ctx := context.Background()

	_, err := repo.CreateClient(ctx, *model.NewClientItem(0, "Alice", "alice@mail.fr", "", "", "", "", "", ""))
	require.NoError(t, err)
	_, err = repo.CreateClient(ctx, *model.NewClientItem(0, "Bob", "", "", "", "", "", "", ""))
	require.NoError(t, err)

	_, err = repo.AddInvoice(ctx, "alice", "F-12", []model.LineItem{{Designation: "Screen", Quantity: 2, UnitPrice: 50}})
	require.NoError(t, err)
	_, err = repo.AddInvoice(ctx, "bob", "F-13", nil)
	require.NoError(t, err)

	return repo
}

func TestSendInvoice(t *testing.T) {
	sender := &recordingSender{}
	m := NewInvoiceMailer(newMailerRepo(t), sender, "atelier@mail.fr")

	require.NoError(t, m.SendInvoice(context.Background(), 1, 1))
	require.Len(t, sender.sent, 1)

	e := sender.sent[0]
	assert.Equal(t, []string{"alice@mail.fr"}, e.To)
	assert.Equal(t, "atelier@mail.fr", e.From)
	assert.Equal(t, "Facture n°F-12", e.Subject)
	assert.Contains(t, e.Text, "Facture n°F-12 du 19 octobre 2026")
	assert.Contains(t, e.Text, "- Screen : 2 x 50 € = 100 €")
	assert.Contains(t, e.Text, "Total : 100 €")
}

func TestSendInvoiceErrors(t *testing.T) {
	repo := newMailerRepo(t)
	ctx := context.Background()

	m := NewInvoiceMailer(repo, &recordingSender{}, "atelier@mail.fr")
	assert.ErrorIs(t, m.SendInvoice(ctx, 9, 1), ErrClientNotFound)
	assert.ErrorIs(t, m.SendInvoice(ctx, 1, 9), ErrInvoiceNotFound)
	assert.ErrorIs(t, m.SendInvoice(ctx, 2, 1), ErrMissingEmail)

	failing := &recordingSender{err: errors.New("mailgun: 401 unauthorized")}
	m = NewInvoiceMailer(repo, failing, "atelier@mail.fr")
	err := m.SendInvoice(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.True(t, strings.Contains(err.Error(), "401"))
}

func TestInvoiceSummaryDecimals(t *testing.T) {
	inv := model.NewInvoiceItem("F-1", []model.LineItem{{Designation: "Pâte", Quantity: 1.5, UnitPrice: 8.2}}, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	s := InvoiceSummary(model.ClientItem{Name: "Chloé"}, inv)

	assert.Contains(t, s, "Bonjour Chloé,")
	assert.Contains(t, s, "- Pâte : 1.50 x 8.20 € = 12.30 €")
	assert.Contains(t, s, "Total : 12.30 €")
}
