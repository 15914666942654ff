package database

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/japb1998/atelier/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "client")})
	clientLogger  = slog.New(clientHandler)
)

// PatchClientItem holds the scalar fields to overwrite. Nil fields are left as they are.
type PatchClientItem struct {
	Name       *string `json:"nom"`
	Email      *string `json:"email"`
	Phone      *string `json:"telephone"`
	Address    *string `json:"adresse"`
	Address2   *string `json:"adresse2"`
	PostalCode *string `json:"cp"`
	City       *string `json:"ville"`
	Country    *string `json:"pays"`
}

type RepoOption func(*ClientRepository)

// WithClock replaces time.Now for date stamping.
func WithClock(now func() time.Time) RepoOption {
	return func(c *ClientRepository) {
		c.now = now
	}
}

// WithStableIds keeps client ids after a deletion. New clients take their id
// from a stored counter that only grows, so an id is never handed out twice.
func WithStableIds(stable bool) RepoOption {
	return func(c *ClientRepository) {
		c.stableIds = stable
	}
}

// ClientRepository runs every operation as load, mutate, save against its
// Document. The mutex only serializes callers sharing this repository.
type ClientRepository struct {
	doc       Document
	mx        sync.Mutex
	now       func() time.Time
	stableIds bool
}

func NewClientRepo(doc Document, opts ...RepoOption) *ClientRepository {
	c := &ClientRepository{
		doc: doc,
		now: time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *ClientRepository) load(ctx context.Context) (Snapshot, error) {
	snap, err := c.doc.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	maxId := 0
	for i := range snap.Clients {
		snap.Clients[i].Normalize()
		if snap.Clients[i].Id > maxId {
			maxId = snap.Clients[i].Id
		}
	}

	switch {
	case !c.stableIds:
		snap.NextClientId = 0
	case snap.NextClientId <= maxId:
		// documents written before the counter existed
		snap.NextClientId = maxId + 1
	}
	return snap, nil
}

// read loads the document and hands it to fn without saving.
func (c *ClientRepository) read(ctx context.Context, op string, fn func([]model.ClientItem) error) error {
	ctx, span := getTracer().Start(ctx, op)
	defer span.End()

	c.mx.Lock()
	defer c.mx.Unlock()

	snap, err := c.load(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return fn(snap.Clients)
}

// mutate loads the document, applies fn and saves the snapshot. When fn fails
// nothing is written.
func (c *ClientRepository) mutate(ctx context.Context, op string, fn func(*Snapshot) error) error {
	ctx, span := getTracer().Start(ctx, op)
	defer span.End()

	c.mx.Lock()
	defer c.mx.Unlock()

	snap, err := c.load(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := fn(&snap); err != nil {
		span.RecordError(err)
		return err
	}

	if err := c.doc.Save(ctx, snap); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("clients", len(snap.Clients)))
	return nil
}

func indexById(clients []model.ClientItem, id int) int {
	for i := range clients {
		if clients[i].Id == id {
			return i
		}
	}
	return -1
}

// indexByName is a case-insensitive exact match, the first match wins.
func indexByName(clients []model.ClientItem, name string) int {
	name = strings.TrimSpace(name)
	for i := range clients {
		if strings.EqualFold(strings.TrimSpace(clients[i].Name), name) {
			return i
		}
	}
	return -1
}

func (c *ClientRepository) nextId(snap *Snapshot) int {
	if !c.stableIds {
		return len(snap.Clients) + 1
	}
	id := snap.NextClientId
	snap.NextClientId++
	return id
}

// CreateClient assigns the id and appends the client. Any id on client is ignored.
func (c *ClientRepository) CreateClient(ctx context.Context, client model.ClientItem) (model.ClientItem, error) {
	err := c.mutate(ctx, "create-client", func(snap *Snapshot) error {
		client.Id = c.nextId(snap)
		client.Normalize()
		clientLogger.Debug("Creating client.", slog.Int("id", client.Id))
		snap.Clients = append(snap.Clients, client)
		return nil
	})

	if err != nil {
		return model.ClientItem{}, err
	}
	return client, nil
}

func (c *ClientRepository) GetClients(ctx context.Context) ([]model.ClientItem, error) {
	var out []model.ClientItem

	err := c.read(ctx, "get-clients", func(clients []model.ClientItem) error {
		out = clients
		return nil
	})

	return out, err
}

func (c *ClientRepository) GetClientById(ctx context.Context, id int) (model.ClientItem, error) {
	var out model.ClientItem

	err := c.read(ctx, "get-client", func(clients []model.ClientItem) error {
		i := indexById(clients, id)
		if i < 0 {
			return ErrClientNotFound
		}
		out = clients[i]
		return nil
	})

	return out, err
}

func (c *ClientRepository) UpdateClient(ctx context.Context, id int, patch PatchClientItem) (model.ClientItem, error) {
	var out model.ClientItem

	err := c.mutate(ctx, "update-client", func(snap *Snapshot) error {
		i := indexById(snap.Clients, id)
		if i < 0 {
			return ErrClientNotFound
		}
		applyPatch(&snap.Clients[i], patch)
		out = snap.Clients[i]
		return nil
	})

	return out, err
}

func applyPatch(client *model.ClientItem, patch PatchClientItem) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&client.Name, patch.Name)
	set(&client.Email, patch.Email)
	set(&client.Phone, patch.Phone)
	set(&client.Address, patch.Address)
	set(&client.Address2, patch.Address2)
	set(&client.PostalCode, patch.PostalCode)
	set(&client.City, patch.City)
	set(&client.Country, patch.Country)
}

// DeleteClient removes the client. Unless stable ids are enabled, the
// remaining clients are renumbered 1..n in their current order, which changes
// the id of every client after the deleted one.
func (c *ClientRepository) DeleteClient(ctx context.Context, id int) error {
	return c.mutate(ctx, "delete-client", func(snap *Snapshot) error {
		if indexById(snap.Clients, id) < 0 {
			return ErrClientNotFound
		}

		remaining := make([]model.ClientItem, 0, len(snap.Clients)-1)
		for _, cl := range snap.Clients {
			if cl.Id != id {
				remaining = append(remaining, cl)
			}
		}

		if !c.stableIds {
			for i := range remaining {
				remaining[i].Id = i + 1
			}
		}
		clientLogger.Info("Deleted client.", slog.Int("id", id), slog.Int("remaining", len(remaining)))
		snap.Clients = remaining
		return nil
	})
}

// AddInvoice attaches a new invoice to the client whose name matches clientName.
func (c *ClientRepository) AddInvoice(ctx context.Context, clientName, number string, lines []model.LineItem) (model.InvoiceItem, error) {
	var out model.InvoiceItem

	err := c.mutate(ctx, "add-invoice", func(snap *Snapshot) error {
		i := indexByName(snap.Clients, clientName)
		if i < 0 {
			return ErrClientNotFound
		}
		out = snap.Clients[i].AppendInvoice(model.NewInvoiceItem(number, lines, c.now()))
		return nil
	})

	return out, err
}

// AddRepairTicket attaches a repair ticket to the client whose name matches clientName.
func (c *ClientRepository) AddRepairTicket(ctx context.Context, clientName, device, problem, status, date string) (model.RepairTicket, error) {
	var out model.RepairTicket

	err := c.mutate(ctx, "add-repair", func(snap *Snapshot) error {
		i := indexByName(snap.Clients, clientName)
		if i < 0 {
			return ErrClientNotFound
		}
		out = snap.Clients[i].AppendRepair(model.NewRepairTicket(device, problem, status, date, c.now()))
		return nil
	})

	return out, err
}

// GetInvoice returns the client and one of its invoices.
func (c *ClientRepository) GetInvoice(ctx context.Context, clientId, invoiceId int) (model.ClientItem, model.InvoiceItem, error) {
	var (
		client  model.ClientItem
		invoice model.InvoiceItem
	)

	err := c.read(ctx, "get-invoice", func(clients []model.ClientItem) error {
		i := indexById(clients, clientId)
		if i < 0 {
			return ErrClientNotFound
		}
		inv := clients[i].InvoiceById(invoiceId)
		if inv == nil {
			return ErrInvoiceNotFound
		}
		client, invoice = clients[i], *inv
		return nil
	})

	return client, invoice, err
}
