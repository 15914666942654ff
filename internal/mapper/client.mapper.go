package mapper

import (
	"regexp"
	"strings"

	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/dto"
	"github.com/japb1998/atelier/internal/model"
)

var phoneDigits = regexp.MustCompile(`[0-9]+`)

// CreateClientToItem builds a new client record. The id is assigned by the repository.
func CreateClientToItem(c dto.CreateClient) model.ClientItem {
	return *model.NewClientItem(
		0,
		strings.TrimSpace(c.Name),
		strings.ToLower(strings.TrimSpace(c.Email)),
		normalizePhone(c.Phone),
		c.Address,
		c.Address2,
		c.PostalCode,
		c.City,
		c.Country,
	)
}

func PatchClientToItem(p dto.PatchClient) database.PatchClientItem {
	patch := database.PatchClientItem{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Address:    p.Address,
		Address2:   p.Address2,
		PostalCode: p.PostalCode,
		City:       p.City,
		Country:    p.Country,
	}
	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		patch.Name = &n
	}
	if p.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*p.Email))
		patch.Email = &e
	}
	if p.Phone != nil {
		ph := normalizePhone(*p.Phone)
		patch.Phone = &ph
	}
	return patch
}

func ClientItemToDto(c model.ClientItem) dto.ClientDto {
	invoices := make([]dto.InvoiceDto, 0, len(c.Invoices))
	for _, i := range c.Invoices {
		invoices = append(invoices, InvoiceItemToDto(i))
	}
	repairs := make([]dto.RepairTicketDto, 0, len(c.Repairs))
	for _, r := range c.Repairs {
		repairs = append(repairs, RepairTicketToDto(r))
	}

	return dto.ClientDto{
		Id:         c.Id,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Address2:   c.Address2,
		PostalCode: c.PostalCode,
		City:       c.City,
		Country:    c.Country,
		Invoices:   invoices,
		Repairs:    repairs,
	}
}

func MapClientSliceToDto(cs []model.ClientItem) []dto.ClientDto {
	slc := make([]dto.ClientDto, 0, len(cs))

	for _, c := range cs {
		slc = append(slc, ClientItemToDto(c))
	}

	return slc
}

func InvoiceItemToDto(i model.InvoiceItem) dto.InvoiceDto {
	var lines []dto.LineItemDto
	for _, l := range i.Lines {
		lines = append(lines, dto.LineItemDto{
			Designation: l.Designation,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return dto.InvoiceDto{
		Id:     i.Id,
		Number: i.Number,
		Date:   i.Date,
		Lines:  lines,
		Amount: i.Amount,
	}
}

// CreateLinesToModel copies the requested lines. Totals are computed by the model.
func CreateLinesToModel(ls []dto.CreateLineItemDto) []model.LineItem {
	slc := make([]model.LineItem, 0, len(ls))

	for _, l := range ls {
		slc = append(slc, model.LineItem{
			Designation: strings.TrimSpace(l.Designation),
			Quantity:    float64(l.Quantity),
			UnitPrice:   float64(l.UnitPrice),
		})
	}

	return slc
}

func RepairTicketToDto(r model.RepairTicket) dto.RepairTicketDto {
	return dto.RepairTicketDto{
		Id:      r.Id,
		Device:  r.Device,
		Problem: r.Problem,
		Status:  r.Status,
		Date:    r.Date,
	}
}

// normalizePhone drops spaces, dots and dashes, keeping a leading +.
func normalizePhone(n string) string {
	n = strings.TrimSpace(n)
	if n == "" {
		return ""
	}

	p := strings.Join(phoneDigits.FindAllString(n, -1), "")
	if strings.HasPrefix(n, "+") {
		return "+" + p
	}
	return p
}
