package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// UserHandler maneja perfil, listados por rol y baja de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile godoc
// @Summary   Perfil del usuario autenticado
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /api/users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		log.Error().Err(err).Msg("obtener perfil")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al obtener el perfil"))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("usuario no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Clients lista los usuarios con rol client. Solo admin.
func (h *UserHandler) Clients(c *fiber.Ctx) error {
	return h.listByRol(c, entity.RolClient)
}

// Admins lista los usuarios con rol admin. Solo admin.
func (h *UserHandler) Admins(c *fiber.Ctx) error {
	return h.listByRol(c, entity.RolAdmin)
}

func (h *UserHandler) listByRol(c *fiber.Ctx, rol string) error {
	items, err := h.uc.ListByRol(rol)
	if err != nil {
		log.Error().Err(err).Str("rol", rol).Msg("listar usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al listar usuarios"))
	}
	return c.JSON(dto.OK(items))
}

// Update actualiza el perfil del usuario autenticado. Solo se aceptan los
// campos name, email y newPassword; cualquier otro (por ejemplo rol) se descarta.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	body, err := FilterAllowed(c.Body(), "name", "email", "newPassword")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	var in dto.UpdateProfileRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if violations := auth.ValidateUpdate(in.Name, in.Email, in.NewPassword); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err(violations))
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("el correo electrónico ya está registrado"))
		}
		log.Error().Err(err).Msg("actualizar perfil")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al actualizar el perfil"))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("usuario no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina un usuario por id. Solo admin, y nunca sobre sí mismo.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if err := h.uc.Delete(GetUserID(c), targetID); err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("no puedes eliminar tu propia cuenta"))
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("usuario no encontrado"))
		default:
			log.Error().Err(err).Str("target_id", targetID).Msg("eliminar usuario")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al eliminar el usuario"))
		}
	}
	return c.JSON(dto.OK("usuario eliminado"))
}
