package dto

type ClientDto struct {
	Id         int               `json:"id"`
	Name       string            `json:"nom"`
	Email      string            `json:"email"`
	Phone      string            `json:"telephone"`
	Address    string            `json:"adresse"`
	Address2   string            `json:"adresse2,omitempty"`
	PostalCode string            `json:"cp,omitempty"`
	City       string            `json:"ville,omitempty"`
	Country    string            `json:"pays,omitempty"`
	Invoices   []InvoiceDto      `json:"factures"`
	Repairs    []RepairTicketDto `json:"reparations"`
}

type CreateClient struct {
	Name       string `json:"nom" form:"nom" binding:"required,notblank"`
	Email      string `json:"email" form:"email" binding:"omitempty,email"`
	Phone      string `json:"telephone" form:"telephone"`
	Address    string `json:"adresse" form:"adresse"`
	Address2   string `json:"adresse2" form:"adresse2"`
	PostalCode string `json:"cp" form:"cp"`
	City       string `json:"ville" form:"ville"`
	Country    string `json:"pays" form:"pays"`
}

// PatchClient only overwrites the fields present in the request.
type PatchClient struct {
	Name       *string `json:"nom" form:"nom" binding:"omitempty,notblank"`
	Email      *string `json:"email" form:"email" binding:"omitempty,email"`
	Phone      *string `json:"telephone" form:"telephone"`
	Address    *string `json:"adresse" form:"adresse"`
	Address2   *string `json:"adresse2" form:"adresse2"`
	PostalCode *string `json:"cp" form:"cp"`
	City       *string `json:"ville" form:"ville"`
	Country    *string `json:"pays" form:"pays"`
}

type ClientListDto struct {
	Records []ClientDto `json:"records"`
	Count   int         `json:"count"`
}
