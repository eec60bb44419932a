package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// ListByEstado devuelve los pedidos en ese estado, cada uno con su Usuario cargado.
	ListByEstado(estado string) ([]*entity.Order, error)
	// UpdateEstado cambia el estado y devuelve la fila actualizada, o (nil, nil) si no existe.
	UpdateEstado(id, estado string) (*entity.Order, error)
}
