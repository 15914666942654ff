package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientSvc(t *testing.T) *ClientService {
	t.Helper()
	return NewClientSvc(database.NewClientRepo(database.NewFileDocument(filepath.Join(t.TempDir(), "clients.json"))))
}

func TestClientServiceLifecycle(t *testing.T) {
	svc := newClientSvc(t)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, dto.CreateClient{Name: "Alice", Email: "Alice@Mail.fr", Phone: "06 11 22 33 44"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Id)
	assert.Equal(t, "alice@mail.fr", created.Email)
	assert.NotNil(t, created.Invoices)

	phone := "07 00 00 00 00"
	updated, err := svc.UpdateClient(ctx, 1, dto.PatchClient{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "0700000000", updated.Phone)
	assert.Equal(t, "alice@mail.fr", updated.Email)

	inv, err := svc.AddInvoice(ctx, dto.CreateInvoice{
		Client: "ALICE",
		Number: "F-1",
		Lines:  []dto.CreateLineItemDto{{Designation: "Screen", Quantity: 2, UnitPrice: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, inv.Amount)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, 100.0, inv.Lines[0].Total)

	repair, err := svc.AddRepairTicket(ctx, dto.CreateRepairTicket{Client: "alice", Device: "iPad", Problem: "Wifi", Date: "2026-09-30"})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-30", repair.Date)

	got, err := svc.GetClientById(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got.Invoices, 1)
	assert.Len(t, got.Repairs, 1)

	require.NoError(t, svc.DeleteClient(ctx, 1))
	list, err := svc.GetClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClientServiceNotFound(t *testing.T) {
	svc := newClientSvc(t)
	ctx := context.Background()

	_, err := svc.GetClientById(ctx, 1)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.UpdateClient(ctx, 1, dto.PatchClient{})
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, svc.DeleteClient(ctx, 1), ErrClientNotFound)

	_, err = svc.AddInvoice(ctx, dto.CreateInvoice{Client: "Nobody", Number: "1"})
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Contains(t, err.Error(), "Nobody")

	_, err = svc.AddRepairTicket(ctx, dto.CreateRepairTicket{Client: "Nobody", Device: "x", Problem: "y"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
