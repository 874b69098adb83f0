package stock

import (
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	domstock "github.com/jhoicas/stock-api/internal/domain/stock"
)

// DraftFromRequest adapta el request HTTP al borrador de dominio.
func DraftFromRequest(in dto.CreateStockItemRequest) entity.ItemDraft {
	return entity.ItemDraft{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Variants:    variantDrafts(in.Variants),
	}
}

// FieldsFromRequest adapta el request de edición.
func FieldsFromRequest(in dto.UpdateStockItemRequest) entity.ItemFields {
	return entity.ItemFields{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Variants:    variantDrafts(in.Variants),
	}
}

func variantDrafts(in []dto.StockVariantRequest) []entity.VariantDraft {
	out := make([]entity.VariantDraft, 0, len(in))
	for _, v := range in {
		out = append(out, entity.VariantDraft{Size: v.Size, Color: v.Color, Quantity: v.Quantity})
	}
	return out
}

// ToItemResponse construye la salida de un ítem.
func ToItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}
	variants := make([]dto.StockVariantResponse, 0, len(item.Variants))
	for i, v := range item.Variants {
		variants = append(variants, dto.StockVariantResponse{
			Index:    i,
			Size:     v.Size,
			Color:    v.Color,
			Label:    v.Label(),
			Quantity: v.Quantity,
			LowStock: v.Quantity < domstock.LowStockThreshold,
		})
	}
	return &dto.StockItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price,
		Description:   item.Description,
		Variants:      variants,
		TotalQuantity: item.TotalQuantity(),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToListResponse construye el listado conservando el orden.
func ToListResponse(items []*entity.StockItem) *dto.StockItemListResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *ToItemResponse(it))
	}
	return &dto.StockItemListResponse{Items: out, Total: len(out)}
}

// ToSummaryResponse construye la respuesta del panel de resumen.
func ToSummaryResponse(s domstock.Summary) *dto.StockSummaryResponse {
	return &dto.StockSummaryResponse{
		TotalItems:        s.TotalItems,
		TotalValue:        s.TotalValue.Round(2),
		LowStockItems:     s.LowStockItems,
		TotalUnits:        s.TotalUnits,
		LowStockThreshold: domstock.LowStockThreshold,
	}
}
