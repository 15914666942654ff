package model

import (
	"strings"
	"time"
)

const RepairDateLayout = "2006-01-02"

// RepairTicket is a réparation: one device brought in with a problem.
type RepairTicket struct {
	Id      int    `json:"id"`
	Device  string `json:"appareil"`
	Problem string `json:"probleme"`
	Status  string `json:"statut"`
	Date    string `json:"date"`
}

// NewRepairTicket keeps a caller supplied date verbatim and falls back to now when it is blank.
func NewRepairTicket(device, problem, status, date string, now time.Time) RepairTicket {
	if strings.TrimSpace(date) == "" {
		date = now.Format(RepairDateLayout)
	}
	return RepairTicket{
		Device:  device,
		Problem: problem,
		Status:  status,
		Date:    date,
	}
}
