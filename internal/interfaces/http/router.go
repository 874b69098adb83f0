package http

import (
	"github.com/gofiber/fiber/v2"
	appstock "github.com/jhoicas/stock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC *appstock.StoreUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	// Rutas fijas antes de /:id
	stock.Get("/summary", stockHandler.Summary)
	stock.Get("/low", stockHandler.LowStock)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Post("/:id/variants/:index/adjust", stockHandler.Adjust)
}
