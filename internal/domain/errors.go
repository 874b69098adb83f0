package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicateVariant       = errors.New("la variante ya existe para este ítem")
	ErrInvalidQuantityInput   = errors.New("la cantidad no es un número válido")
	ErrNegativeStock          = errors.New("el stock no puede ser negativo")
	ErrItemNotFound           = errors.New("ítem no encontrado")
	ErrVariantIndexOutOfRange = errors.New("índice de variante fuera de rango")
)
