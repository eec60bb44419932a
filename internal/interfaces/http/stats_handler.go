package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// StatsHandler expone el resumen de negocio para el panel del admin.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler de estadísticas.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Estadísticas del restaurante
// @Description  Total de pedidos, total vendido, productos más pedidos y mejores clientes.
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("calcular estadísticas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al calcular estadísticas"))
	}
	return c.JSON(dto.OK(out))
}
