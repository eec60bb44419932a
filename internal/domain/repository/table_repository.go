package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// TableRepository define el puerto de persistencia para Table (DIP).
type TableRepository interface {
	Create(table *entity.Table) error
	List() ([]*entity.Table, error)
}
