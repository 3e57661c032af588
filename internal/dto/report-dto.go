package dto

type WhatsAppReportDTO struct {
	Mensagem string `json:"mensagem"`
	Link     string `json:"link"`
}
