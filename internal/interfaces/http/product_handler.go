package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-server/internal/application/dto"
	"github.com/jhoicas/inventario-server/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List lista productos. Sin filtros devuelve todo en orden de inserción;
// ?category=, ?name= filtran por subcadena y ?quantity= por valor exacto.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	switch {
	case c.Query("category") != "":
		out, err := h.uc.ListByCategory(ctx, c.Query("category"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	case c.Query("name") != "":
		out, err := h.uc.ListByName(ctx, c.Query("name"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	case c.Query("quantity") != "":
		qty, err := strconv.Atoi(c.Query("quantity"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser un entero"})
		}
		out, err := h.uc.ListByQuantity(ctx, qty)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	default:
		out, err := h.uc.List(ctx)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
}

// Create crea un producto. Audita con el actor del token.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, GetUsername(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los campos de un producto existente.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in, GetUsername(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto por id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, GetUsername(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID extrae el id numérico del path; ok=false si no es un entero
// positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// invalidID responde la falla uniforme para un id malformado.
func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}
