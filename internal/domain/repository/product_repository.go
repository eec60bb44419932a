package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// ListAvailable devuelve solo los productos visibles en el menú público.
	ListAvailable() ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete devuelve cuántas filas eliminó (0 si el id no existe).
	Delete(id string) (int64, error)
}
