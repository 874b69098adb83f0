package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockVariant representa una configuración almacenada de un ítem (talla/color).
// Size y Color vacíos equivalen a "ausente"; si ambos faltan es la variante por defecto.
type StockVariant struct {
	Size     string
	Color    string
	Quantity int // nunca negativo
}

// Label devuelve una etiqueta legible de la variante, ej: "M / Rojo" o "default".
func (v StockVariant) Label() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(v.Size); s != "" {
		parts = append(parts, s)
	}
	if c := strings.TrimSpace(v.Color); c != "" {
		parts = append(parts, c)
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " / ")
}

// StockItem representa una línea de producto en el inventario en memoria.
// ID y CreatedAt se asignan al crear y no cambian; Price aplica a todas las variantes.
type StockItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Description string
	Variants    []StockVariant // al menos una
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalQuantity suma las cantidades de todas las variantes.
func (i *StockItem) TotalQuantity() int {
	total := 0
	for _, v := range i.Variants {
		total += v.Quantity
	}
	return total
}

// Clone devuelve una copia profunda; las variantes no comparten backing array.
func (i *StockItem) Clone() *StockItem {
	if i == nil {
		return nil
	}
	out := *i
	out.Variants = make([]StockVariant, len(i.Variants))
	copy(out.Variants, i.Variants)
	return &out
}

// VariantDraft variante propuesta antes de validar.
type VariantDraft struct {
	Size     string
	Color    string
	Quantity int
}

// ItemDraft ítem propuesto por el formulario de alta (sin ID ni fechas).
type ItemDraft struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Variants    []VariantDraft
}

// ItemFields reemplazo completo de los campos editables de un ítem.
type ItemFields struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Variants    []VariantDraft
}

// ToVariants convierte borradores a variantes almacenables.
func ToVariants(drafts []VariantDraft) []StockVariant {
	out := make([]StockVariant, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, StockVariant{Size: d.Size, Color: d.Color, Quantity: d.Quantity})
	}
	return out
}
