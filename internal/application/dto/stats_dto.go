package dto

import "github.com/shopspring/decimal"

// TopProduct producto con su cantidad acumulada en pedidos.
type TopProduct struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantity"`
}

// TopClient cliente con su cantidad de pedidos.
type TopClient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TotalOrders int64  `json:"totalOrders"`
}

// StatsResponse agregados de pedidos para el panel de administración.
type StatsResponse struct {
	TotalOrders int64           `json:"totalOrders"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TopProducts []TopProduct    `json:"topProducts"`
	TopClients  []TopClient     `json:"topClients"`
}
