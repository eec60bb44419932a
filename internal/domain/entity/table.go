package entity

// Table representa una mesa física del restaurante con su código QR de acceso.
type Table struct {
	ID     string
	Number int // único
	QRCode string
}
