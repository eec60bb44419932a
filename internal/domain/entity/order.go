package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order. Solo un admin puede mover un pedido de estado.
const (
	EstadoEnEspera  = "en espera"
	EstadoRealizado = "pedido realizado"
)

// OrderItem es una línea del pedido: referencia al producto, precio unitario
// al momento del pedido y cantidad. Se persiste dentro del JSONB de Order.
type OrderItem struct {
	ProductID string          `json:"producto_id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Cantidad  int64           `json:"cantidad"`
}

// Order representa un pedido hecho por un cliente. Total es la suma de
// precio × cantidad de sus líneas (0 si no hay líneas). Inmutable salvo
// el estado, que solo cambia por acción de un admin.
type Order struct {
	ID        string
	Cliente   string // FK a users; siempre el id del usuario autenticado
	Mesa      int
	Productos []OrderItem
	Total     decimal.Decimal
	Estado    string // en espera, pedido realizado
	Fecha     time.Time

	// Usuario dueño del pedido, presente en listados por estado.
	Usuario *User
}
