package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// UserUseCase casos de uso sobre usuarios ya autenticados: perfil, listados
// por rol, actualización y baja.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve la proyección mínima del usuario, o (nil, nil) si no existe.
func (uc *UserUseCase) Profile(id string) (*dto.ProfileResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.ProfileResponse{Name: user.Name, Email: user.Email}, nil
}

// ListByRol lista los usuarios con ese rol, sin password.
func (uc *UserUseCase) ListByRol(rol string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByRol(rol)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// UpdateProfile aplica los campos presentes (name, email y, si viene
// newPassword, re-hashea la clave). Devuelve (nil, nil) si el usuario ya no existe.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Name: user.Name, Email: user.Email}, nil
}

// Delete elimina un usuario por id. El admin que ejecuta no puede eliminarse
// a sí mismo (ErrForbidden); un id inexistente devuelve ErrNotFound.
func (uc *UserUseCase) Delete(actorID, targetID string) error {
	if targetID == actorID {
		return domain.ErrForbidden
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	deleted, err := uc.repo.Delete(targetID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
