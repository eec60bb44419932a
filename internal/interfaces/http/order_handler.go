package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

// OrderHandler maneja creación, seguimiento y comprobantes de pedidos.
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	receipt *usecase.ReceiptUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *usecase.OrderUseCase, receipt *usecase.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Crear pedido
// @Description  El cliente del pedido siempre es el usuario del token; el total se calcula en el servidor.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateOrderRequest  true  "mesa, productos"
// @Success      201   {object}  dto.Response
// @Router       /api/orders/create [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		log.Error().Err(err).Msg("crear pedido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al crear el pedido"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListByEstado lista los pedidos en un estado. El estado viaja en la URL, así
// que "en espera" llega percent-encoded y hay que desescaparlo.
func (h *OrderHandler) ListByEstado(c *fiber.Ctx) error {
	estado, err := url.PathUnescape(c.Params("status"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("estado inválido"))
	}
	items, errList := h.uc.ListByEstado(estado)
	if errList != nil {
		log.Error().Err(errList).Str("estado", estado).Msg("listar pedidos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al listar pedidos"))
	}
	return c.JSON(dto.OK(items))
}

// UpdateEstado cambia el estado de un pedido. Solo admin.
func (h *OrderHandler) UpdateEstado(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.UpdateEstado(id, in.Estado)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err(fmt.Sprintf("estado no válido: %q", in.Estado)))
		}
		log.Error().Err(err).Str("order_id", id).Msg("actualizar estado del pedido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al actualizar el pedido"))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("pedido no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Receipt descarga el comprobante en PDF de un pedido. Solo el dueño del
// pedido o un admin.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.receipt.Generate(c.UserContext(), id, GetUserID(c), GetRol(c))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("pedido no encontrado"))
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("acceso denegado: el pedido no es tuyo"))
		default:
			log.Error().Err(err).Str("order_id", id).Msg("generar comprobante")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al generar el comprobante"))
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
