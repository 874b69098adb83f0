package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-api/internal/application/dto"
	appstock "github.com/jhoicas/stock-api/internal/application/stock"
	"github.com/jhoicas/stock-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del inventario en memoria.
type StockHandler struct {
	uc *appstock.StoreUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appstock.StoreUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar ítem al inventario
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "Nombre, precio, descripción y variantes"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(c.UserContext(), appstock.DraftFromRequest(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appstock.ToItemResponse(item))
}

// List godoc
// @Summary      Listar ítems (filtro opcional por nombre)
// @Tags         stock
// @Produce      json
// @Param        search  query  string  false  "Subcadena del nombre, sin distinguir mayúsculas"
// @Success      200     {object}  dto.StockItemListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToListResponse(items))
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToItemResponse(item))
}

// Update godoc
// @Summary      Editar ítem (reemplaza nombre, precio, descripción y variantes)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateStockItemRequest  true  "Campos editables"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.EditItem(c.UserContext(), c.Params("id"), appstock.FieldsFromRequest(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToItemResponse(item))
}

// Adjust godoc
// @Summary      Ajustar cantidad de una variante
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID del ítem"
// @Param        index  path  int     true  "Índice de la variante"
// @Param        body   body  dto.AdjustStockRequest  true  "Ajuste con signo, ej: \"5\" o \"-3\""
// @Success      200    {object}  dto.StockItemResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/variants/{index}/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "index debe ser un entero"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AdjustVariantQuantityInput(c.UserContext(), c.Params("id"), index, string(in.Adjustment))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToItemResponse(item))
}

// Summary godoc
// @Summary      Resumen del inventario (total ítems, valor, stock bajo, unidades)
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToSummaryResponse(summary))
}

// LowStock godoc
// @Summary      Ítems con alguna variante por debajo de 10 unidades
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockItemListResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appstock.ToListResponse(items))
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantityInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateVariant):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_VARIANT", Message: err.Error()})
	case errors.Is(err, domain.ErrNegativeStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrVariantIndexOutOfRange):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "VARIANT_NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
