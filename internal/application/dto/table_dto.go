package dto

// CreateTableRequest entrada para registrar una mesa.
type CreateTableRequest struct {
	Number int    `json:"number"`
	QRCode string `json:"qrCode"`
}

// TableResponse salida de una mesa.
type TableResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	QRCode string `json:"qrCode"`
}
