package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

// TableHandler maneja las mesas del restaurante y su código QR.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler de mesas.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create registra una mesa. El número es único.
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("el número de mesa debe ser positivo"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("ya existe una mesa con ese número"))
		default:
			log.Error().Err(err).Msg("crear mesa")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al crear la mesa"))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List lista las mesas ordenadas por número.
func (h *TableHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar mesas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al listar mesas"))
	}
	return c.JSON(dto.OK(items))
}
