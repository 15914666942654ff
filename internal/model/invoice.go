package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// InvoiceItem is a facture. Older documents only carry the amount, without lines.
type InvoiceItem struct {
	Id     int        `json:"id"`
	Number string     `json:"numero"`
	Date   string     `json:"date"`
	Lines  []LineItem `json:"lignes,omitempty"`
	Amount float64    `json:"montant"`
}

type LineItem struct {
	Designation string  `json:"designation"`
	Quantity    float64 `json:"quantite"`
	UnitPrice   float64 `json:"prix"`
	Total       float64 `json:"total"`
}

func NewLineItem(designation string, quantity, unitPrice float64) LineItem {
	return LineItem{
		Designation: designation,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       roundCents(quantity * unitPrice),
	}
}

// NewInvoiceItem computes every line total and the invoice amount and stamps
// the issue date. The id is assigned when the invoice is attached to a client.
func NewInvoiceItem(number string, lines []LineItem, issuedAt time.Time) InvoiceItem {
	var computed []LineItem
	var amount float64

	for _, l := range lines {
		line := NewLineItem(l.Designation, l.Quantity, l.UnitPrice)
		amount += line.Total
		computed = append(computed, line)
	}

	return InvoiceItem{
		Number: number,
		Date:   FormatLongDate(issuedAt),
		Lines:  computed,
		Amount: roundCents(amount),
	}
}

// ParseNumber reads a quantity or price as typed by a user. Blank or invalid
// input is 0. A comma is accepted as the decimal separator.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func roundCents(f float64) float64 {
	return math.Round(f*100) / 100
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatLongDate renders t the way the shop prints dates, e.g. "19 octobre 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}
