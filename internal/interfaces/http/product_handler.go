package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

// ProductHandler maneja el catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Menu godoc
// @Summary      Menú público
// @Description  Lista solo los productos disponibles. No requiere token.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/products/menu [get]
func (h *ProductHandler) Menu(c *fiber.Ctx) error {
	items, err := h.uc.Menu()
	if err != nil {
		log.Error().Err(err).Msg("listar menú")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al listar el menú"))
	}
	return c.JSON(dto.OK(items))
}

// List lista todos los productos, disponibles o no. Solo admin.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al listar productos"))
	}
	return c.JSON(dto.OK(items))
}

// Get obtiene un producto por id. Público, sirve para la carta con QR.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("obtener producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al obtener el producto"))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("producto no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary   Crear producto
// @Tags      products
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      dto.CreateProductRequest  true  "name, description, price, image"
// @Success   201   {object}  dto.Response
// @Failure   400   {object}  dto.Response
// @Router    /api/products/create [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("el precio no puede ser negativo"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("ya existe un producto con ese nombre"))
		default:
			log.Error().Err(err).Msg("crear producto")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al crear el producto"))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update actualiza los campos presentes de un producto. Solo admin.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("el precio no puede ser negativo"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("ya existe un producto con ese nombre"))
		default:
			log.Error().Err(err).Str("product_id", id).Msg("actualizar producto")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al actualizar el producto"))
		}
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("producto no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina un producto por id. Solo admin.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("producto no encontrado"))
		}
		log.Error().Err(err).Str("product_id", id).Msg("eliminar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error al eliminar el producto"))
	}
	return c.JSON(dto.OK("producto eliminado"))
}
