package model

// ClientItem is the record persisted in the client document. The json keys
// are the ones the shop has always used on disk.
type ClientItem struct {
	Id         int            `json:"id"`
	Name       string         `json:"nom"`
	Email      string         `json:"email"`
	Phone      string         `json:"telephone"`
	Address    string         `json:"adresse"`
	Address2   string         `json:"adresse2,omitempty"`
	PostalCode string         `json:"cp,omitempty"`
	City       string         `json:"ville,omitempty"`
	Country    string         `json:"pays,omitempty"`
	Invoices   []InvoiceItem  `json:"factures"`
	Repairs    []RepairTicket `json:"reparations"`
	// next ids handed out to invoices and repairs of this client. never reused.
	NextInvoiceId int `json:"nextFactureId,omitempty"`
	NextRepairId  int `json:"nextReparationId,omitempty"`
}

func NewClientItem(id int, name, email, phone, address, address2, postalCode, city, country string) *ClientItem {
	return &ClientItem{
		Id:            id,
		Name:          name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		Address2:      address2,
		PostalCode:    postalCode,
		City:          city,
		Country:       country,
		Invoices:      make([]InvoiceItem, 0),
		Repairs:       make([]RepairTicket, 0),
		NextInvoiceId: 1,
		NextRepairId:  1,
	}
}

// Normalize fixes up records written before the id counters existed, or with
// null collections, so that the invariants hold for every loaded client.
func (c *ClientItem) Normalize() {
	if c.Invoices == nil {
		c.Invoices = make([]InvoiceItem, 0)
	}
	if c.Repairs == nil {
		c.Repairs = make([]RepairTicket, 0)
	}

	maxInvoice := len(c.Invoices)
	for _, i := range c.Invoices {
		if i.Id > maxInvoice {
			maxInvoice = i.Id
		}
	}
	if c.NextInvoiceId <= maxInvoice {
		c.NextInvoiceId = maxInvoice + 1
	}

	maxRepair := len(c.Repairs)
	for _, r := range c.Repairs {
		if r.Id > maxRepair {
			maxRepair = r.Id
		}
	}
	if c.NextRepairId <= maxRepair {
		c.NextRepairId = maxRepair + 1
	}
}

// AppendInvoice assigns the next invoice id and appends the invoice.
func (c *ClientItem) AppendInvoice(i InvoiceItem) InvoiceItem {
	c.Normalize()
	i.Id = c.NextInvoiceId
	c.NextInvoiceId++
	c.Invoices = append(c.Invoices, i)
	return i
}

// AppendRepair assigns the next repair id and appends the ticket.
func (c *ClientItem) AppendRepair(r RepairTicket) RepairTicket {
	c.Normalize()
	r.Id = c.NextRepairId
	c.NextRepairId++
	c.Repairs = append(c.Repairs, r)
	return r
}

// InvoiceById returns the invoice with the given id, nil when absent.
func (c *ClientItem) InvoiceById(id int) *InvoiceItem {
	for i := range c.Invoices {
		if c.Invoices[i].Id == id {
			return &c.Invoices[i]
		}
	}
	return nil
}
