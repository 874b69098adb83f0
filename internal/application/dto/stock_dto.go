package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StockVariantRequest variante enviada por el formulario (size y color opcionales).
type StockVariantRequest struct {
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
	Quantity int    `json:"quantity"`
}

// CreateStockItemRequest body para POST /api/stock.
type CreateStockItemRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal       `json:"price"`
	Description string                `json:"description"`
	Variants    []StockVariantRequest `json:"variants" validate:"required,min=1"`
}

// UpdateStockItemRequest body para PUT /api/stock/:id. Reemplaza todos los campos editables.
type UpdateStockItemRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal       `json:"price"`
	Description string                `json:"description"`
	Variants    []StockVariantRequest `json:"variants" validate:"required,min=1"`
}

// AdjustStockRequest body para POST /api/stock/:id/variants/:index/adjust.
// Adjustment llega tal como lo digitó el usuario ("5", "-3" o 5); se parsea en el caso de uso.
type AdjustStockRequest struct {
	Adjustment QuantityInput `json:"adjustment"`
}

// QuantityInput texto crudo de una cantidad; acepta string JSON o número JSON.
type QuantityInput string

// UnmarshalJSON conserva el literal numérico tal cual para que el parseo ocurra en el dominio.
func (q *QuantityInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = QuantityInput(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = QuantityInput(n.String())
	return nil
}

// StockVariantResponse salida de una variante.
type StockVariantResponse struct {
	Index    int    `json:"index"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	LowStock bool   `json:"low_stock"`
}

// StockItemResponse salida de un ítem.
type StockItemResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Price         decimal.Decimal        `json:"price"`
	Description   string                 `json:"description"`
	Variants      []StockVariantResponse `json:"variants"`
	TotalQuantity int                    `json:"total_quantity"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// StockItemListResponse listado en orden de inserción.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// StockSummaryResponse respuesta de GET /api/stock/summary (panel de resumen).
type StockSummaryResponse struct {
	TotalItems        int             `json:"total_items"`
	TotalValue        decimal.Decimal `json:"total_value"` // Σ price × Σ quantity
	LowStockItems     int             `json:"low_stock_items"`
	TotalUnits        int             `json:"total_units"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}
