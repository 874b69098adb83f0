package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Adjust aplica delta a la cantidad de una variante con actualización inmutable.
// items no se modifica: se devuelve una colección nueva con el ítem reemplazado, más el ítem actualizado.
// NuevaCantidad = CantidadActual + delta; si es < 0 se rechaza y nada cambia.
func Adjust(items []*entity.StockItem, itemID string, variantIndex, delta int, now time.Time) ([]*entity.StockItem, *entity.StockItem, error) {
	pos := -1
	for i, item := range items {
		if item.ID == itemID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, nil, fmt.Errorf("ítem %s: %w", itemID, domain.ErrItemNotFound)
	}
	current := items[pos]
	if variantIndex < 0 || variantIndex >= len(current.Variants) {
		return nil, nil, fmt.Errorf("variante %d de %d: %w", variantIndex, len(current.Variants), domain.ErrVariantIndexOutOfRange)
	}
	currentQty := current.Variants[variantIndex].Quantity
	if delta > MaxQuantity-currentQty {
		return nil, nil, fmt.Errorf("%s: %d%+d supera el máximo %d: %w", current.Name, currentQty, delta, MaxQuantity, domain.ErrInvalidQuantityInput)
	}
	newQty := currentQty + delta
	if newQty < 0 {
		return nil, nil, fmt.Errorf("%s: %d%+d: %w", current.Name, current.Variants[variantIndex].Quantity, delta, domain.ErrNegativeStock)
	}

	updated := current.Clone()
	updated.Variants[variantIndex].Quantity = newQty
	updated.UpdatedAt = now

	out := make([]*entity.StockItem, len(items))
	copy(out, items)
	out[pos] = updated
	return out, updated, nil
}

// ParseQuantity interpreta la cantidad digitada por el usuario. Debe ser un entero
// (se acepta "5", "-3", "+2" o "4.0"); cualquier otra cosa es ErrInvalidQuantityInput.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	if s == "" {
		return 0, domain.ErrInvalidQuantityInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, domain.ErrInvalidQuantityInput)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%q no es entero: %w", raw, domain.ErrInvalidQuantityInput)
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return 0, fmt.Errorf("%q fuera de rango: %w", raw, domain.ErrInvalidQuantityInput)
	}
	return int(d.IntPart()), nil
}

// MaxQuantity tope de unidades por variante y de un ajuste individual.
// Mantiene las sumas de cantidades lejos del desbordamiento de int.
const MaxQuantity = 1_000_000_000
