package dto

type RepairTicketDto struct {
	Id      int    `json:"id"`
	Device  string `json:"appareil"`
	Problem string `json:"probleme"`
	Status  string `json:"statut"`
	Date    string `json:"date"`
}

type CreateRepairTicket struct {
	Client  string `json:"client" form:"client" binding:"required,notblank"`
	Device  string `json:"appareil" form:"appareil" binding:"required,notblank"`
	Problem string `json:"probleme" form:"probleme" binding:"required,notblank"`
	Status  string `json:"statut" form:"statut"`
	Date    string `json:"date" form:"date"`
}
