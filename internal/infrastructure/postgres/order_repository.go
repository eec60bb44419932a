package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas del pedido viven en la columna JSONB `productos`.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Productos)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, cliente, mesa, productos, total, estado, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.Cliente, order.Mesa, items, order.Total, order.Estado, order.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID, o (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, cliente, mesa, productos, total, estado, fecha
		FROM orders WHERE id = $1`
	var (
		o     entity.Order
		items []byte
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Cliente, &o.Mesa, &items, &o.Total, &o.Estado, &o.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Productos); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}

// ListByEstado lista los pedidos en ese estado con su usuario dueño,
// más recientes primero.
func (r *OrderRepo) ListByEstado(estado string) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.cliente, o.mesa, o.productos, o.total, o.estado, o.fecha,
		       u.id, u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.cliente
		WHERE o.estado = $1
		ORDER BY o.fecha DESC`
	rows, err := r.q.Query(context.Background(), query, estado)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var (
			o     entity.Order
			u     entity.User
			items []byte
		)
		if err := rows.Scan(
			&o.ID, &o.Cliente, &o.Mesa, &items, &o.Total, &o.Estado, &o.Fecha,
			&u.ID, &u.Name, &u.Email,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Productos); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		o.Usuario = &u
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado y devuelve la fila actualizada, o (nil, nil)
// si el id no existe.
func (r *OrderRepo) UpdateEstado(id, estado string) (*entity.Order, error) {
	query := `
		UPDATE orders SET estado = $2
		WHERE id = $1
		RETURNING id, cliente, mesa, productos, total, estado, fecha`
	var (
		o     entity.Order
		items []byte
	)
	err := r.q.QueryRow(context.Background(), query, id, estado).Scan(
		&o.ID, &o.Cliente, &o.Mesa, &items, &o.Total, &o.Estado, &o.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order estado: %w", err)
	}
	if err := json.Unmarshal(items, &o.Productos); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}
