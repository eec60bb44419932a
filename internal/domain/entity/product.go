package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del catálogo del restaurante.
// Available controla si aparece en el menú público.
type Product struct {
	ID          string
	Name        string // único en el catálogo
	Description string
	Price       decimal.Decimal // nunca negativo
	Available   bool
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
