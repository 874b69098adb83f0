package stock

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// IsDuplicate indica si la combinación (name, size, color) ya existe en items.
// Nombre, talla y color se comparan con CanonicalKey; un campo ausente solo coincide con otro ausente.
func IsDuplicate(name string, candidate entity.VariantDraft, items []*entity.StockItem) bool {
	for _, item := range items {
		if item == nil || !sameKey(item.Name, name) {
			continue
		}
		for _, v := range item.Variants {
			if sameKey(v.Size, candidate.Size) && sameKey(v.Color, candidate.Color) {
				return true
			}
		}
	}
	return false
}

// CheckDraft rechaza el borrador completo si alguna de sus variantes ya existe.
// Todo o nada: no hay inserción parcial de las variantes no duplicadas.
func CheckDraft(draft entity.ItemDraft, items []*entity.StockItem) error {
	for _, v := range draft.Variants {
		if IsDuplicate(draft.Name, v, items) {
			label := entity.StockVariant{Size: v.Size, Color: v.Color}.Label()
			return fmt.Errorf("%s (%s): %w", strings.TrimSpace(draft.Name), label, domain.ErrDuplicateVariant)
		}
	}
	return nil
}

// ValidateDraft valida los campos obligatorios del formulario de alta.
func ValidateDraft(draft entity.ItemDraft) error {
	return validate(draft.Name, draft.Price.IsNegative(), draft.Variants)
}

// ValidateFields aplica las mismas reglas a una edición.
func ValidateFields(fields entity.ItemFields) error {
	return validate(fields.Name, fields.Price.IsNegative(), fields.Variants)
}

func validate(name string, negativePrice bool, variants []entity.VariantDraft) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name requerido: %w", domain.ErrInvalidInput)
	}
	if negativePrice {
		return fmt.Errorf("price negativo: %w", domain.ErrInvalidInput)
	}
	if len(variants) == 0 {
		return fmt.Errorf("se requiere al menos una variante: %w", domain.ErrInvalidInput)
	}
	for i, v := range variants {
		if v.Quantity < 0 {
			return fmt.Errorf("variante %d con cantidad negativa: %w", i, domain.ErrInvalidInput)
		}
		if v.Quantity > MaxQuantity {
			return fmt.Errorf("variante %d supera el máximo de %d unidades: %w", i, MaxQuantity, domain.ErrInvalidInput)
		}
	}
	return nil
}
