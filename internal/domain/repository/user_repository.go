package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	CountByRol(rol string) (int64, error)
	ListByRol(rol string) ([]*entity.User, error)
	Update(user *entity.User) error
	// Delete devuelve cuántas filas eliminó (0 si el id no existe).
	Delete(id string) (int64, error)
}
