package stock

import (
	"strings"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral fijo: una variante con cantidad < 10 es stock bajo.
const LowStockThreshold = 10

// Summary los cuatro números del panel de resumen.
type Summary struct {
	TotalItems    int
	TotalValue    decimal.Decimal
	LowStockItems int
	TotalUnits    int
}

// TotalItemCount número de ítems.
func TotalItemCount(items []*entity.StockItem) int {
	return len(items)
}

// TotalValue Σ price × Σ quantity. El precio del ítem aplica a todas sus variantes.
func TotalValue(items []*entity.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty := decimal.Zero
		for _, v := range item.Variants {
			qty = qty.Add(decimal.NewFromInt(int64(v.Quantity)))
		}
		total = total.Add(item.Price.Mul(qty))
	}
	return total
}

// TotalUnits suma de unidades de todas las variantes de todos los ítems.
func TotalUnits(items []*entity.StockItem) int {
	total := 0
	for _, item := range items {
		total += item.TotalQuantity()
	}
	return total
}

// IsLowStock true si alguna variante está por debajo de LowStockThreshold.
func IsLowStock(item *entity.StockItem) bool {
	for _, v := range item.Variants {
		if v.Quantity < LowStockThreshold {
			return true
		}
	}
	return false
}

// LowStockCount cuenta ítems con al menos una variante en stock bajo.
func LowStockCount(items []*entity.StockItem) int {
	return len(LowStockItems(items))
}

// LowStockItems ítems en stock bajo, en el orden original.
func LowStockItems(items []*entity.StockItem) []*entity.StockItem {
	out := make([]*entity.StockItem, 0)
	for _, item := range items {
		if IsLowStock(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search filtra por subcadena del nombre sin distinguir mayúsculas; término vacío devuelve todo.
// El término no se recorta: " " solo encuentra nombres con espacios.
func Search(items []*entity.StockItem, term string) []*entity.StockItem {
	needle := searchKey(term)
	out := make([]*entity.StockItem, 0, len(items))
	for _, item := range items {
		if needle == "" || strings.Contains(searchKey(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Summarize recalcula el resumen completo; no hay caché.
func Summarize(items []*entity.StockItem) Summary {
	return Summary{
		TotalItems:    TotalItemCount(items),
		TotalValue:    TotalValue(items),
		LowStockItems: LowStockCount(items),
		TotalUnits:    TotalUnits(items),
	}
}
