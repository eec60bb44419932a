package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopProductResult producto con su cantidad acumulada en pedidos.
type TopProductResult struct {
	Name          string
	TotalQuantity int64
}

// TopClientResult cliente con su cantidad de pedidos.
type TopClientResult struct {
	ID          string
	Name        string
	TotalOrders int64
}

// StatsRepository consultas de solo lectura sobre los pedidos.
type StatsRepository interface {
	// CountOrders devuelve el total de pedidos y la suma de sus totales.
	CountOrders(ctx context.Context) (count int64, sales decimal.Decimal, err error)
	// TopProducts devuelve los `limit` productos con mayor cantidad acumulada
	// en las líneas de pedido.
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	// TopClients devuelve los `limit` usuarios con más pedidos, con su nombre.
	TopClients(ctx context.Context, limit int) ([]TopClientResult, error)
}
