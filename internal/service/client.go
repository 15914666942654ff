package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/dto"
	"github.com/japb1998/atelier/internal/mapper"
	"github.com/japb1998/atelier/internal/model"
)

// errors
var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

type ClientRepository interface {
	GetClients(ctx context.Context) ([]model.ClientItem, error)
	GetClientById(ctx context.Context, id int) (model.ClientItem, error)
	CreateClient(ctx context.Context, client model.ClientItem) (model.ClientItem, error)
	UpdateClient(ctx context.Context, id int, patch database.PatchClientItem) (model.ClientItem, error)
	DeleteClient(ctx context.Context, id int) error
	AddInvoice(ctx context.Context, clientName, number string, lines []model.LineItem) (model.InvoiceItem, error)
	AddRepairTicket(ctx context.Context, clientName, device, problem, status, date string) (model.RepairTicket, error)
	GetInvoice(ctx context.Context, clientId, invoiceId int) (model.ClientItem, model.InvoiceItem, error)
}

type ClientService struct {
	Store ClientRepository
}

func NewClientSvc(s ClientRepository) *ClientService {

	return &ClientService{
		Store: s,
	}
}

// storeErr turns repository lookups into service errors. Anything else is
// returned as is and ends up as an internal error.
func storeErr(err error) error {
	switch {
	case errors.Is(err, database.ErrClientNotFound):
		return ErrClientNotFound
	case errors.Is(err, database.ErrInvoiceNotFound):
		return ErrInvoiceNotFound
	}
	return err
}

func (c *ClientService) GetClients(ctx context.Context) ([]dto.ClientDto, error) {
	clientList, err := c.Store.GetClients(ctx)

	if err != nil {
		clientLogger.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, err
	}

	return mapper.MapClientSliceToDto(clientList), nil
}

func (c *ClientService) GetClientById(ctx context.Context, id int) (dto.ClientDto, error) {
	item, err := c.Store.GetClientById(ctx, id)

	if err != nil {
		return dto.ClientDto{}, storeErr(err)
	}

	return mapper.ClientItemToDto(item), nil
}

func (c *ClientService) CreateClient(ctx context.Context, client dto.CreateClient) (dto.ClientDto, error) {
	item, err := c.Store.CreateClient(ctx, mapper.CreateClientToItem(client))

	if err != nil {
		clientLogger.Error("failed to create client", slog.String("error", err.Error()))
		return dto.ClientDto{}, err
	}

	clientLogger.Info("Created client.", slog.Int("id", item.Id))
	return mapper.ClientItemToDto(item), nil
}

func (c *ClientService) UpdateClient(ctx context.Context, id int, client dto.PatchClient) (dto.ClientDto, error) {
	patch := mapper.PatchClientToItem(client)
	clientLogger.Info("Updating client.", slog.Int("id", id))

	item, err := c.Store.UpdateClient(ctx, id, patch)

	if err != nil {
		return dto.ClientDto{}, storeErr(err)
	}

	return mapper.ClientItemToDto(item), nil
}

// DeleteClient removes a client. Ids of the following clients may change, see database.ClientRepository.
func (c *ClientService) DeleteClient(ctx context.Context, id int) error {
	if err := c.Store.DeleteClient(ctx, id); err != nil {
		return storeErr(err)
	}

	return nil
}

func (c *ClientService) AddInvoice(ctx context.Context, invoice dto.CreateInvoice) (dto.InvoiceDto, error) {
	item, err := c.Store.AddInvoice(ctx, invoice.Client, invoice.Number, mapper.CreateLinesToModel(invoice.Lines))

	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return dto.InvoiceDto{}, fmt.Errorf("%w: %q", ErrClientNotFound, invoice.Client)
		}
		clientLogger.Error("failed to add invoice", slog.String("error", err.Error()))
		return dto.InvoiceDto{}, err
	}

	return mapper.InvoiceItemToDto(item), nil
}

func (c *ClientService) AddRepairTicket(ctx context.Context, repair dto.CreateRepairTicket) (dto.RepairTicketDto, error) {
	item, err := c.Store.AddRepairTicket(ctx, repair.Client, repair.Device, repair.Problem, repair.Status, repair.Date)

	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return dto.RepairTicketDto{}, fmt.Errorf("%w: %q", ErrClientNotFound, repair.Client)
		}
		clientLogger.Error("failed to add repair ticket", slog.String("error", err.Error()))
		return dto.RepairTicketDto{}, err
	}

	return mapper.RepairTicketToDto(item), nil
}
