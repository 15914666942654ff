package dto

import (
	"bytes"
	"encoding/json"

	"github.com/japb1998/atelier/internal/model"
)

type InvoiceDto struct {
	Id     int           `json:"id"`
	Number string        `json:"numero"`
	Date   string        `json:"date"`
	Lines  []LineItemDto `json:"lignes,omitempty"`
	Amount float64       `json:"montant"`
}

type LineItemDto struct {
	Designation string  `json:"designation"`
	Quantity    float64 `json:"quantite"`
	UnitPrice   float64 `json:"prix"`
	Total       float64 `json:"total"`
}

type CreateInvoice struct {
	Client string              `json:"client" binding:"required,notblank"`
	Number string              `json:"numero" binding:"required,notblank"`
	Lines  []CreateLineItemDto `json:"lignes"`
}

type CreateLineItemDto struct {
	Designation string `json:"designation"`
	Quantity    Amount `json:"quantite"`
	UnitPrice   Amount `json:"prix"`
}

// Amount accepts a JSON number or a string as typed in a form. Anything that
// does not parse, null included, is 0.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			*a = 0
			return nil
		}
	} else {
		s = string(b)
	}

	*a = Amount(model.ParseNumber(s))
	return nil
}
