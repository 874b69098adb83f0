// Package stock contiene los servicios de dominio puros del inventario en memoria:
// detección de variantes duplicadas, ajustes de cantidad y agregados del panel.
package stock

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalKey normaliza un texto para comparaciones insensibles a mayúsculas.
// NFC + trim + minúsculas; sin reglas dependientes del locale para que el resultado sea determinista.
func CanonicalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

func sameKey(a, b string) bool {
	return CanonicalKey(a) == CanonicalKey(b)
}

// searchKey como CanonicalKey pero sin recortar espacios.
func searchKey(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
