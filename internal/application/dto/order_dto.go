package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del pedido enviada por el cliente.
type OrderItemRequest struct {
	ProductID string          `json:"producto_id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Cantidad  int64           `json:"cantidad"`
}

// CreateOrderRequest entrada para crear un pedido. El campo cliente del
// body se ignora: siempre se estampa el id del usuario autenticado.
type CreateOrderRequest struct {
	Mesa      int                `json:"mesa"`
	Productos []OrderItemRequest `json:"productos"`
}

// UpdateEstadoRequest entrada para cambiar el estado de un pedido (solo admin).
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// OrderItemResponse una línea del pedido en respuestas.
type OrderItemResponse struct {
	ProductID string          `json:"producto_id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Cantidad  int64           `json:"cantidad"`
}

// OrderUserResponse proyección del dueño del pedido en listados.
type OrderUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Cliente   string              `json:"cliente"`
	Mesa      int                 `json:"mesa"`
	Productos []OrderItemResponse `json:"productos"`
	Total     decimal.Decimal     `json:"total"`
	Estado    string              `json:"estado"`
	Fecha     time.Time           `json:"fecha"`
	Usuario   *OrderUserResponse  `json:"usuario,omitempty"`
}
