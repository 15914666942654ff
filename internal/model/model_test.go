package model

import (
	"testing"
	"time"
)

func TestNewInvoiceItemTotals(t *testing.T) {
	issued := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	inv := NewInvoiceItem("F-001", []LineItem{
		{Designation: "Screen", Quantity: 2, UnitPrice: 50},
		{Designation: "Battery", Quantity: 1, UnitPrice: 29.99},
	}, issued)

	if inv.Lines[0].Total != 100 {
		t.Fatalf("expected first line total 100, got %v", inv.Lines[0].Total)
	}
	if inv.Amount != 129.99 {
		t.Fatalf("expected amount 129.99, got %v", inv.Amount)
	}
	if inv.Date != "19 octobre 2026" {
		t.Fatalf("unexpected date %q", inv.Date)
	}
}

func TestNewInvoiceItemWithoutLines(t *testing.T) {
	inv := NewInvoiceItem("F-002", nil, time.Now())

	if inv.Lines != nil || inv.Amount != 0 {
		t.Fatalf("expected empty invoice, got %+v", inv)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"":      0,
		"  ":    0,
		"abc":   0,
		"NaN":   0,
		"Inf":   0,
		"2":     2,
		" 3.5 ": 3.5,
		"12,5":  12.5,
	}

	for in, want := range cases {
		if got := ParseNumber(in); got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	if s := FormatLongDate(d); s != "1 août 2025" {
		t.Fatalf("got %q", s)
	}
}

func TestNormalizeSeedsCounters(t *testing.T) {
	c := ClientItem{
		Id:       1,
		Invoices: []InvoiceItem{{Id: 1}, {Id: 4}},
	}
	c.Normalize()

	if c.Repairs == nil {
		t.Fatal("expected repairs to be initialized")
	}
	if c.NextInvoiceId != 5 {
		t.Fatalf("expected next invoice id 5, got %d", c.NextInvoiceId)
	}
	if c.NextRepairId != 1 {
		t.Fatalf("expected next repair id 1, got %d", c.NextRepairId)
	}

	added := c.AppendInvoice(InvoiceItem{Number: "X"})
	if added.Id != 5 || c.NextInvoiceId != 6 {
		t.Fatalf("unexpected id assignment %d / %d", added.Id, c.NextInvoiceId)
	}
}

func TestNewRepairTicketDate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	if r := NewRepairTicket("Phone", "Broken", "En cours", " ", now); r.Date != "2026-10-19" {
		t.Fatalf("expected default date, got %q", r.Date)
	}
	if r := NewRepairTicket("Phone", "Broken", "En cours", "le 3 mars", now); r.Date != "le 3 mars" {
		t.Fatalf("expected verbatim date, got %q", r.Date)
	}
}
