package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura sobre los pedidos para el panel admin.
// El ranking de productos expande el JSONB de líneas con jsonb_array_elements;
// el de clientes es un JOIN plano contra users.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountOrders devuelve el total de pedidos y la suma de sus totales.
// COALESCE cubre el caso sin pedidos (suma NULL).
func (r *StatsRepo) CountOrders(ctx context.Context) (int64, decimal.Decimal, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total), 0)
	FROM orders`

	var (
		count int64
		sales decimal.Decimal
	)
	if err := r.q.QueryRow(ctx, query).Scan(&count, &sales); err != nil {
		return 0, decimal.Zero, fmt.Errorf("stats.CountOrders: %w", err)
	}
	return count, sales, nil
}

// TopProducts devuelve los `limit` productos con mayor cantidad acumulada,
// agrupando las líneas JSONB de todos los pedidos por nombre de producto.
func (r *StatsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT item->>'nombre'                       AS name,
	       SUM((item->>'cantidad')::BIGINT)      AS total_quantity
	FROM orders o,
	     jsonb_array_elements(o.productos) AS item
	GROUP BY item->>'nombre'
	ORDER BY total_quantity DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.Name, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("stats.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopClients devuelve los `limit` usuarios con más pedidos, con su nombre
// resuelto en la misma consulta.
func (r *StatsRepo) TopClients(ctx context.Context, limit int) ([]repository.TopClientResult, error) {
	const query = `
	SELECT u.id, u.name, COUNT(o.id) AS total_orders
	FROM orders o
	JOIN users u ON u.id = o.cliente
	GROUP BY u.id, u.name
	ORDER BY total_orders DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopClients: %w", err)
	}
	defer rows.Close()

	var results []repository.TopClientResult
	for rows.Next() {
		var row repository.TopClientResult
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalOrders); err != nil {
			return nil, fmt.Errorf("stats.TopClients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
